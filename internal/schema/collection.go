package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by a Catalog when a collection does not exist.
	ErrNotFound = errors.New("collection not found")
	// ErrInvalidDeclaration is returned for malformed collection declarations.
	ErrInvalidDeclaration = errors.New("invalid collection declaration")
)

// Rule is an access rule expression. A nil rule locks the operation to the
// trusted system identity.
type Rule = *string

// Collection is the declared shape of a record collection.
type Collection struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	System     bool     `json:"system"`
	Fields     []Field  `json:"schema"`
	Indexes    []string `json:"indexes"`
	ListRule   Rule     `json:"listRule"`
	ViewRule   Rule     `json:"viewRule"`
	CreateRule Rule     `json:"createRule"`
	UpdateRule Rule     `json:"updateRule"`
	DeleteRule Rule     `json:"deleteRule"`
	Options    Options  `json:"options"`
}

// Field returns the field called name.
func (c *Collection) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (c *Collection) fieldIndex(name string) int {
	for i, f := range c.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy that shares nothing mutable with c.
func (c *Collection) Clone() *Collection {
	out := *c
	out.Fields = make([]Field, len(c.Fields))
	for i, f := range c.Fields {
		out.Fields[i] = f.clone()
	}
	out.Indexes = append([]string(nil), c.Indexes...)
	out.ListRule = cloneRule(c.ListRule)
	out.ViewRule = cloneRule(c.ViewRule)
	out.CreateRule = cloneRule(c.CreateRule)
	out.UpdateRule = cloneRule(c.UpdateRule)
	out.DeleteRule = cloneRule(c.DeleteRule)
	if c.Options != nil {
		out.Options = mergeOptions(c.Options, nil)
	}
	return &out
}

func cloneRule(r Rule) Rule {
	if r == nil {
		return nil
	}
	v := *r
	return &v
}

func rulesEqual(a, b Rule) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Validate checks a declaration before anything is written.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: collection name is empty", ErrInvalidDeclaration)
	}
	seen := make(map[string]bool, len(c.Fields))
	for i, f := range c.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: %s: field %d has no name", ErrInvalidDeclaration, c.Name, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s: duplicate field %q", ErrInvalidDeclaration, c.Name, f.Name)
		}
		seen[f.Name] = true

		if !f.Type.Valid() {
			return fmt.Errorf("%w: %s.%s: unknown type %q", ErrInvalidDeclaration, c.Name, f.Name, f.Type)
		}
		if f.Type == FieldRelation && f.RelationTarget() == "" {
			return fmt.Errorf("%w: %s.%s: relation without collectionId", ErrInvalidDeclaration, c.Name, f.Name)
		}
		if f.Type == FieldSelect {
			if values, _ := f.Options["values"].([]string); len(values) == 0 {
				if anyValues, _ := f.Options["values"].([]any); len(anyValues) == 0 {
					return fmt.Errorf("%w: %s.%s: select without values", ErrInvalidDeclaration, c.Name, f.Name)
				}
			}
		}
	}
	return nil
}
