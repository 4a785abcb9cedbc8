package schema

import (
	"bytes"
	"encoding/json"
)

// FieldType is the storage type of a collection field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldBool     FieldType = "bool"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldRelation FieldType = "relation"
	FieldJSON     FieldType = "json"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldNumber, FieldBool, FieldDate, FieldSelect, FieldRelation, FieldJSON:
		return true
	}
	return false
}

// Options holds type specific field settings such as bounds or select values.
type Options map[string]any

// Field is one declared column of a collection.
type Field struct {
	System      bool      `json:"system"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Presentable bool      `json:"presentable"`
	Unique      bool      `json:"unique"`
	Options     Options   `json:"options"`
}

// RelationTarget returns the collection id a relation field points at.
func (f Field) RelationTarget() string {
	target, _ := f.Options["collectionId"].(string)
	return target
}

// CascadeDelete reports whether deleting the related record deletes this one.
func (f Field) CascadeDelete() bool {
	cascade, _ := f.Options["cascadeDelete"].(bool)
	return cascade
}

// mergeOptions shallow-merges update over base: keys of base survive, keys of
// update win. Neither argument is modified.
func mergeOptions(base, update Options) Options {
	merged := make(Options, len(base)+len(update))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range update {
		merged[k] = v
	}
	return merged
}

// normalizeOptions converts option values to their JSON decoded form so that
// declared and stored options compare equal.
func normalizeOptions(o Options) (Options, error) {
	if o == nil {
		return Options{}, nil
	}
	raw, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	out := Options{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func optionsEqual(a, b Options) bool {
	rawA, errA := json.Marshal(a)
	rawB, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(rawA, rawB)
}

func (f Field) clone() Field {
	out := f
	if f.Options != nil {
		out.Options = mergeOptions(f.Options, nil)
	}
	return out
}
