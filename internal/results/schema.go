package results

import "github.com/wesleyorama2/tokenbench/pkg/jsonschema"

// documentShape only pins down the containers the analyzer walks.
// Scalars are left to the JSON decoder.
const documentShape = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"completions": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"properties": {
					"api_time_info": { "type": ["object", "null"] },
					"api_usage": { "type": ["object", "null"] }
				}
			}
		},
		"overall_stats": { "type": ["object", "null"] }
	}
}`

var documentSchema = jsonschema.MustCompile("results.schema.json", documentShape)
