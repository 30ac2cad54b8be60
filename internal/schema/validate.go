// Package schema provides JSON schema validation for tisgen settings and
// generated configuration files.
package schema

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/AndreyAkinshin/tisgen/schema"
)

// Kind selects which embedded schema a document is checked against.
type Kind string

const (
	Settings Kind = "settings.schema.json"
	Common   Kind = "common.schema.json"
	Machdep  Kind = "machdep.schema.json"
	Matrix   Kind = "tis.schema.json"
)

// Kinds lists every embedded schema.
var Kinds = []Kind{Settings, Common, Machdep, Matrix}

var (
	compiled    map[Kind]*jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for _, kind := range Kinds {
			data, err := schemafs.FS.ReadFile(string(kind))
			if err != nil {
				compileErr = fmt.Errorf("read %s: %w", kind, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal %s: %w", kind, err)
				return
			}
			if err := compiler.AddResource(string(kind), doc); err != nil {
				compileErr = fmt.Errorf("add %s resource: %w", kind, err)
				return
			}
		}

		schemas := make(map[Kind]*jsonschema.Schema, len(Kinds))
		for _, kind := range Kinds {
			sch, err := compiler.Compile(string(kind))
			if err != nil {
				compileErr = fmt.Errorf("compile %s: %w", kind, err)
				return
			}
			schemas[kind] = sch
		}
		compiled = schemas
	})

	return compileErr
}

// Validate checks JSON data against the schema of the given kind.
func Validate(kind Kind, data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}
	sch, ok := compiled[kind]
	if !ok {
		return fmt.Errorf("unknown schema %q", kind)
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("%s validation failed: %w", kind, err)
	}

	return nil
}

// ValidateSettings validates settings data, already converted to JSON.
func ValidateSettings(data []byte) error {
	return Validate(Settings, data)
}
