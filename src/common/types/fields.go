package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMissingField   = errors.New("missing required field")
	ErrDuplicateField = errors.New("field present under both names")
	ErrNullPayload    = errors.New("payload is null")
	errNotCode        = errors.New("expected string or number")
)

// DecodeError reports an upstream payload that does not match a model.
type DecodeError struct {
	Model string
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decoding %s: %v", e.Model, e.Err)
	}
	return fmt.Sprintf("decoding %s.%s: %v", e.Model, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// field is one row of a model's mapping table: the canonical key, the
// upstream spelling it may arrive under instead, and whether it must be set.
type field struct {
	name     string
	alias    string
	required bool
}

type decoder struct {
	model  string
	fields map[string]json.RawMessage
	err    error
}

// newDecoder resolves the object's keys against the mapping table. A null
// value counts as absent.
func newDecoder(model string, data []byte, table []field) (*decoder, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Model: model, Err: err}
	}

	fields := make(map[string]json.RawMessage, len(table))
	for _, f := range table {
		value, ok := lookup(raw, f.name)
		if f.alias != "" {
			if aliased, found := lookup(raw, f.alias); found {
				if ok {
					return nil, &DecodeError{Model: model, Field: f.name, Err: ErrDuplicateField}
				}
				value, ok = aliased, true
			}
		}

		if !ok {
			if f.required {
				return nil, &DecodeError{Model: model, Field: f.name, Err: ErrMissingField}
			}
			continue
		}
		fields[f.name] = value
	}

	return &decoder{model: model, fields: fields}, nil
}

func lookup(raw map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	value, ok := raw[key]
	if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return nil, false
	}
	return value, true
}

// decode stores the named field into dst. Absent optional fields leave dst
// untouched. Only the first failure is kept.
func (d *decoder) decode(name string, dst any) {
	if d.err != nil {
		return
	}
	value, ok := d.fields[name]
	if !ok {
		return
	}
	if err := json.Unmarshal(value, dst); err != nil {
		d.err = &DecodeError{Model: d.model, Field: name, Err: err}
	}
}

// decodeCode accepts a JSON string or number and keeps its textual form.
func (d *decoder) decodeCode(name string, dst *string) {
	if d.err != nil {
		return
	}
	value, ok := d.fields[name]
	if !ok {
		return
	}

	value = bytes.TrimSpace(value)
	var err error
	switch {
	case len(value) > 0 && value[0] == '"':
		err = json.Unmarshal(value, dst)
	case len(value) > 0 && (value[0] == '-' || (value[0] >= '0' && value[0] <= '9')):
		var n json.Number
		if err = json.Unmarshal(value, &n); err == nil {
			*dst = n.String()
		}
	default:
		err = errNotCode
	}

	if err != nil {
		d.err = &DecodeError{Model: d.model, Field: name, Err: err}
	}
}
