package types

import "strings"

// Category represents provider categories
type Category string

const (
	CategoryFilesystem Category = "filesystem"
	CategorySystem     Category = "system"
)

// Service represents a provider definition
type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Tools       []Tool   `json:"tools"`
}

// Tool represents one verb served by a provider
type Tool struct {
	Verb        string      `json:"verb"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
}

// Parameter represents one operand of a verb. Names starting with "--"
// are rendered as flags in usage text.
type Parameter struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// IsFlag reports whether the parameter is a --flag
func (p Parameter) IsFlag() bool {
	return strings.HasPrefix(p.Name, "--")
}

// Required returns the number of mandatory operands
func (t Tool) Required() int {
	n := 0
	for _, p := range t.Parameters {
		if p.Required {
			n++
		}
	}
	return n
}

// MaxArgs returns the number of operands the verb accepts
func (t Tool) MaxArgs() int {
	return len(t.Parameters)
}

// Usage renders the verb with its operands, e.g. "rn <oldName> <newName>"
func (t Tool) Usage() string {
	var b strings.Builder
	b.WriteString(t.Verb)
	for _, p := range t.Parameters {
		b.WriteByte(' ')
		switch {
		case p.IsFlag() && !p.Required:
			b.WriteString("[" + p.Name + "]")
		case p.IsFlag():
			b.WriteString(p.Name)
		case p.Required:
			b.WriteString("<" + p.Name + ">")
		default:
			b.WriteString("[" + p.Name + "]")
		}
	}
	return b.String()
}
