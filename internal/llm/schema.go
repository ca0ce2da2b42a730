package llm

import (
	"encoding/json"
)

// Type is a JSON schema value type.
type Type string

const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// Schema is the provider-neutral description of a structured reply.
// Providers translate it to their native form.
type Schema struct {
	Name        string
	Type        Type
	Description string
	Properties  map[string]*Schema
	// Order lists property names in the order they should be generated.
	Order    []string
	Items    *Schema
	Required []string
	Enum     []string
}

// Object builds an object schema. Properties keep the order given.
func Object(description string, props ...Property) *Schema {
	s := &Schema{
		Type:        TypeObject,
		Description: description,
		Properties:  make(map[string]*Schema, len(props)),
	}
	for _, p := range props {
		s.Properties[p.Name] = p.Schema
		s.Order = append(s.Order, p.Name)
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}

// Property is a named member of an object schema.
type Property struct {
	Name     string
	Schema   *Schema
	Required bool
}

func Required(name string, s *Schema) Property { return Property{Name: name, Schema: s, Required: true} }
func Optional(name string, s *Schema) Property { return Property{Name: name, Schema: s} }

func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

func Number(description string) *Schema {
	return &Schema{Type: TypeNumber, Description: description}
}

func Array(description string, items *Schema) *Schema {
	return &Schema{Type: TypeArray, Description: description, Items: items}
}

// JSONSchema renders s as a JSON Schema document.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		out["enum"] = s.Enum
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	return out
}

// Instruction renders the schema as text for providers that cannot
// enforce it natively.
func (s *Schema) Instruction() string {
	b, err := json.MarshalIndent(s.JSONSchema(), "", "  ")
	if err != nil {
		return ""
	}
	return "Respond with a single JSON object, without markdown fences or commentary, that conforms to this JSON Schema:\n" + string(b)
}

// systemWithSchema appends the schema instruction to system when the
// request asks for JSON.
func systemWithSchema(req *CompletionRequest) string {
	if req.Format != FormatJSON {
		return req.System
	}
	instr := "Respond with a single valid JSON object and nothing else."
	if req.Schema != nil {
		instr = req.Schema.Instruction()
	}
	if req.System == "" {
		return instr
	}
	return req.System + "\n\n" + instr
}
