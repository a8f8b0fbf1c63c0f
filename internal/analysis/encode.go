package analysis

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the report with metrics and percentile labels in
// report order:
//
//	{"completions": 2, "percentiles": {"queue_time": {"P50": 0.1, ...}, ...},
//	 "samples": {"queue_time": 2, ...}, "overall_stats": {...}}
//
// A percentile that overflowed to an infinity, or became NaN, is written
// as null.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"completions":`)
	buf.WriteString(strconv.Itoa(r.Completions))

	buf.WriteString(`,"percentiles":{`)
	for i, m := range r.Metrics {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONKey(&buf, m.Name)
		buf.WriteByte('{')
		for j, p := range r.Percentiles {
			if j > 0 {
				buf.WriteByte(',')
			}
			writeJSONKey(&buf, Label(p))
			if !finite(m.Values[j]) {
				buf.WriteString("null")
				continue
			}
			value, err := json.Marshal(m.Values[j])
			if err != nil {
				return nil, err
			}
			buf.Write(value)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	buf.WriteString(`,"samples":{`)
	for i, m := range r.Metrics {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONKey(&buf, m.Name)
		buf.WriteString(strconv.Itoa(m.Samples))
	}
	buf.WriteByte('}')

	if r.OverallStats != nil {
		stats, err := json.Marshal(r.OverallStats)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"overall_stats":`)
		buf.Write(stats)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func writeJSONKey(buf *bytes.Buffer, key string) {
	quoted, _ := json.Marshal(key)
	buf.Write(quoted)
	buf.WriteByte(':')
}

// MarshalYAML mirrors MarshalJSON, keeping report order.
func (r *Report) MarshalYAML() (interface{}, error) {
	root := yamlMapping()
	yamlAppend(root, "completions", yamlScalar("!!int", strconv.Itoa(r.Completions)))

	percentiles := yamlMapping()
	samples := yamlMapping()
	for _, m := range r.Metrics {
		values := yamlMapping()
		for j, p := range r.Percentiles {
			value := yamlScalar("!!null", "null")
			if finite(m.Values[j]) {
				value = yamlScalar("!!float", formatCell(m.Values[j]))
			}
			yamlAppend(values, Label(p), value)
		}
		yamlAppend(percentiles, m.Name, values)
		yamlAppend(samples, m.Name, yamlScalar("!!int", strconv.Itoa(m.Samples)))
	}
	yamlAppend(root, "percentiles", percentiles)
	yamlAppend(root, "samples", samples)

	if r.OverallStats != nil {
		stats := &yaml.Node{}
		if err := stats.Encode(r.OverallStats); err != nil {
			return nil, err
		}
		yamlAppend(root, "overall_stats", stats)
	}

	return root, nil
}

func yamlMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func yamlScalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func yamlAppend(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, yamlScalar("!!str", key), value)
}
