package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks the config against the embedded JSON schema.
// Every section and field of the config has to be known to the schema, and the
// fields the schema bounds have to stay within limits.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root, ok := schema.Definitions["Config"]
	if !ok || root.Properties == nil {
		return fmt.Errorf("schema has no Config definition")
	}

	sections := make([]string, 0, len(configMap))
	for name := range configMap {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	for _, name := range sections {
		prop, ok := root.Properties.Get(name)
		if !ok {
			return fmt.Errorf("section %q is not in schema", name)
		}
		def := resolve(&schema, prop)
		if def == nil || def.Properties == nil {
			return fmt.Errorf("section %q has no schema definition", name)
		}
		if err := verifyFields(name, configMap[name], def); err != nil {
			return err
		}
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func verifyFields(section string, fields map[string]any, def *jsonschema.Schema) error {
	for name, val := range fields {
		prop, ok := def.Properties.Get(name)
		if !ok {
			return fmt.Errorf("%s.%s is not in schema", section, name)
		}
		num, isNum := val.(float64)
		if !isNum {
			continue
		}
		if prop.Minimum != "" {
			if limit, err := prop.Minimum.Float64(); err == nil && num < limit {
				return fmt.Errorf("%s.%s is below minimum %v", section, name, limit)
			}
		}
		if prop.ExclusiveMinimum != "" {
			if limit, err := prop.ExclusiveMinimum.Float64(); err == nil && num <= limit {
				return fmt.Errorf("%s.%s must be above %v", section, name, limit)
			}
		}
		if prop.Maximum != "" {
			if limit, err := prop.Maximum.Float64(); err == nil && num > limit {
				return fmt.Errorf("%s.%s is above maximum %v", section, name, limit)
			}
		}
	}
	return nil
}

// resolve follows a local $ref to its definition
func resolve(root, s *jsonschema.Schema) *jsonschema.Schema {
	if s.Ref == "" {
		return s
	}
	const prefix = "#/$defs/"
	if len(s.Ref) <= len(prefix) {
		return nil
	}
	return root.Definitions[s.Ref[len(prefix):]]
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
