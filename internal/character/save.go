package character

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema describes the persisted session document. Loading validates
// against it wholesale: a document that fails is rejected with a single
// error and no partial state is taken from it.
const documentSchema = `{
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"player": {"type": "string"},
		"mainPath": {"type": "string"},
		"faction": {"type": "string"},
		"organizations": {"type": "array", "items": {"type": "string"}},
		"purchased": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"path": {"type": "string"},
					"name": {"type": "string"},
					"tier": {"type": "integer", "minimum": 0},
					"free": {"type": "boolean"}
				},
				"required": ["path", "name", "tier"]
			}
		},
		"events": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string"},
					"date": {"type": "string"},
					"type": {"type": "string"},
					"npc": {"type": "boolean"},
					"merchantOT": {"type": "boolean"},
					"bonusSP": {"type": "integer"},
					"skillPoints": {"type": "integer"}
				},
				"required": ["type"]
			}
		},
		"milestones": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"properties": {
					"milestone2": {"type": "boolean"},
					"milestone3": {"type": "boolean"}
				}
			}
		},
		"enhancements": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"sourcePath": {"type": "string"},
					"sourceName": {"type": "string"},
					"targetPath": {"type": "string"},
					"targetName": {"type": "string"},
					"effect": {"type": "string"}
				},
				"required": ["sourcePath", "sourceName", "targetPath", "targetName"]
			}
		}
	},
	"required": ["purchased", "events"]
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compiledDocumentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(documentSchema), &parsed); err != nil {
			schemaErr = fmt.Errorf("parse document schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://character.json"
		if err := c.AddResource(url, parsed); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// Save writes the session document as indented JSON.
func (c *Character) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode character: %w", err)
	}
	return nil
}

// SaveFile writes the session document to path.
func (c *Character) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save file: %w", err)
	}
	defer f.Close()
	return c.Save(f)
}

// Load reads and validates a session document. A document that is not
// well-formed or has an unexpected shape is rejected wholesale; callers keep
// their prior in-memory state on error.
func Load(r io.Reader) (*Character, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw JSON bytes and decodes the character.
func Parse(raw []byte) (*Character, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid save file: %w", err)
	}

	schema, err := compiledDocumentSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("invalid save file: %w", err)
	}

	var c Character
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("invalid save file: %w", err)
	}
	return &c, nil
}

// LoadFile reads a session document from path.
func LoadFile(path string) (*Character, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open save file: %w", err)
	}
	defer f.Close()
	return Load(f)
}
