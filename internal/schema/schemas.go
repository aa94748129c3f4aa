package schema

// wordEntrySchema accepts both entry layouts: a bare word or a
// word/translation object.
const wordEntrySchema = `{
	"oneOf": [
		{"type": "string", "minLength": 1},
		{
			"type": "object",
			"required": ["word", "translation"],
			"properties": {
				"word": {"type": "string", "minLength": 1},
				"translation": {"type": "string"}
			}
		}
	]
}`

var repositorySchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["words"],
	"properties": {
		"words": {"type": "array", "items": ` + wordEntrySchema + `}
	}
}`

// archiveRecordSchema also accepts records from before snapshots carried an
// id and a timestamp.
var archiveRecordSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["words"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"archived_at": {"type": "string", "format": "date-time"},
		"words": {"type": "array", "items": ` + wordEntrySchema + `}
	}
}`
