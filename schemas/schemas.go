// Package schemas embeds the JSON Schemas shipped with filmtop.
package schemas

import _ "embed"

// ConfigSchemaJSON is the JSON Schema for .filmtop.yaml.
//
//go:embed config.schema.json
var ConfigSchemaJSON string
