package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://github.com/twiced-technology-gmbh/taskninja/schema/tasks.json"

//go:embed schema.json
var schemaSource string

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString(schemaURL, schemaSource)
})

// SchemaError lists every violation found in a task file.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "task file does not match schema: " + strings.Join(e.Problems, "; ")
}

// validateDocument checks raw task file bytes against the embedded schema.
func validateDocument(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compiling task file schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("parsing task file: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError) //nolint:errorlint // Validate returns the concrete type
		if !ok {
			return err
		}
		se := &SchemaError{}
		collectProblems(se, ve)
		return se
	}
	return nil
}

func collectProblems(se *SchemaError, ve *jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		se.Problems = append(se.Problems, loc+": "+ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectProblems(se, cause)
	}
}
