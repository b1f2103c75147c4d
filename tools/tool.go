package tools

import (
	"encoding/json"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"
)

// ToolDefinition couples a tool's wire contract (name, description, JSON
// input schema) with its local handler.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema anthropic.ToolInputSchemaParam
	Function    func(input json.RawMessage) (string, error)
}

// GenerateSchema derives the JSON input schema for T. Fields without
// omitempty are required; enum and default values come from jsonschema
// struct tags.
func GenerateSchema[T any]() anthropic.ToolInputSchemaParam {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return anthropic.ToolInputSchemaParam{
		Properties: schema.Properties,
		Required:   schema.Required,
	}
}

// ValidationError reports tool input that does not satisfy the declared
// parameter contract. It is produced before the handler computes anything.
type ValidationError struct {
	Tool    string
	Missing []string // required parameters absent from the input
	Cause   error    // malformed JSON or wrong-typed fields
}

func (e *ValidationError) Error() string {
	switch {
	case len(e.Missing) == 1:
		return "paramètre requis manquant : " + e.Missing[0]
	case len(e.Missing) > 1:
		return "paramètres requis manquants : " + strings.Join(e.Missing, ", ")
	case e.Cause != nil:
		return "entrée invalide : " + e.Cause.Error()
	}
	return "entrée invalide"
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// decodeInput parses raw tool input into T, reporting malformed JSON or
// wrong-typed fields as a ValidationError.
func decodeInput[T any](tool string, input json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(input, &v); err != nil {
		return v, &ValidationError{Tool: tool, Cause: err}
	}
	return v, nil
}

// marshalResult serializes a tool result payload for the model.
func marshalResult(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
