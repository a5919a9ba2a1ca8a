package assessment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/assessgen/internal/reference"
)

const requestSchemaURL = "schema://assessment-request.json"

var (
	requestSchemaOnce sync.Once
	requestSchema     *jsonschema.Schema
	requestSchemaErr  error
)

// requestSchemaDefinition describes a request document. Blank fields are
// allowed here and rejected by Request.Validate.
func requestSchemaDefinition() map[string]any {
	grades := make([]any, 0, len(reference.AllGrades()))
	for _, g := range reference.AllGrades() {
		grades = append(grades, string(g))
	}
	text := map[string]any{"type": "string"}
	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"grade", "narrative", "goals", "standards", "lessons"},
		"properties": map[string]any{
			"grade":     map[string]any{"type": "string", "enum": grades},
			"narrative": text,
			"goals":     text,
			"standards": text,
			"lessons":   text,
		},
	}
}

func compiledRequestSchema() (*jsonschema.Schema, error) {
	requestSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(requestSchemaURL, requestSchemaDefinition()); err != nil {
			requestSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		requestSchema, requestSchemaErr = c.Compile(requestSchemaURL)
	})
	return requestSchema, requestSchemaErr
}

// ValidateDocument checks a decoded request document (a JSON or YAML value)
// against the request schema.
func ValidateDocument(doc any) error {
	schema, err := compiledRequestSchema()
	if err != nil {
		return fmt.Errorf("compile request schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

// DecodeJSON validates and decodes a JSON request document.
func DecodeJSON(data []byte) (Request, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return Request{}, fmt.Errorf("parse request: %w", err)
	}
	if err := ValidateDocument(doc); err != nil {
		return Request{}, err
	}
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}

// DecodeYAML validates and decodes a YAML request document.
func DecodeYAML(data []byte) (Request, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Request{}, fmt.Errorf("parse request: %w", err)
	}
	if err := ValidateDocument(doc); err != nil {
		return Request{}, err
	}
	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}

// LoadRequestFile reads a request from a .json, .yaml or .yml file.
func LoadRequestFile(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("read request file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return Request{}, fmt.Errorf("unsupported request file type %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}
