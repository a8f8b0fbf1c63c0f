package jsonpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrPathNotFound is returned when a path does not resolve to a value
	ErrPathNotFound = errors.New("path not found")

	// ErrNotInteger is returned when a value cannot be read as an integer
	ErrNotInteger = errors.New("value is not an integer")
)

// Valid reports whether json is a single well-formed JSON value.
func Valid(json string) bool {
	return gjson.Valid(json)
}

// Lookup resolves a JSONPath expression against a JSON string.
// The returned error wraps ErrPathNotFound when nothing is at path.
func Lookup(json string, path string) (gjson.Result, error) {
	if json == "" {
		return gjson.Result{}, fmt.Errorf("empty JSON string")
	}
	if path == "" {
		return gjson.Result{}, fmt.Errorf("empty JSONPath expression")
	}

	// JSONPath: $.users[0].name
	// gjson:    users.0.name
	result := gjson.Get(json, convertToGjsonPath(path))
	if !result.Exists() {
		return gjson.Result{}, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	return result, nil
}

// Raw returns the JSON text of the value at path, unchanged.
func Raw(json string, path string) (string, error) {
	result, err := Lookup(json, path)
	if err != nil {
		return "", err
	}
	return result.Raw, nil
}

// Int reads the value at path as an integer.
//
// Numbers are truncated toward zero and strings holding a base-10 integer
// (surrounding whitespace allowed) are parsed. Any other type wraps
// ErrNotInteger.
func Int(json string, path string) (int64, error) {
	result, err := Lookup(json, path)
	if err != nil {
		return 0, err
	}

	switch result.Type {
	case gjson.Number:
		if !strings.ContainsAny(result.Raw, ".eE") {
			return result.Int(), nil
		}
		f := result.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) || math.Abs(f) > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %s = %s", ErrNotInteger, path, result.Raw)
		}
		return int64(math.Trunc(f)), nil
	case gjson.String:
		n, err := strconv.ParseInt(strings.TrimSpace(result.Str), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s = %q", ErrNotInteger, path, result.Str)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s = %s", ErrNotInteger, path, result.Raw)
	}
}

// convertToGjsonPath converts a JSONPath expression to a gjson path format
func convertToGjsonPath(path string) string {
	path = strings.TrimPrefix(path, "$")
	path = strings.TrimPrefix(path, ".")

	if path == "" {
		return "@this"
	}

	// Bracket notation with quotes: ['name'] or ["name"]
	for _, quote := range []string{"'", "\""} {
		path = strings.ReplaceAll(path, "["+quote, ".")
		path = strings.ReplaceAll(path, quote+"]", "")
	}

	// Array indexes: [n] -> .n
	path = strings.ReplaceAll(path, "[", ".")
	path = strings.ReplaceAll(path, "]", "")

	return strings.TrimPrefix(path, ".")
}
