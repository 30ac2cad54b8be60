// Package jsondoc provides an ordered JSON object type that allows repeated keys
// and the pretty printer used for every generated configuration file.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Indent is the indentation used for generated files.
const Indent = "    "

// Field is a single key/value pair of a Document.
type Field struct {
	Key   string
	Value any
}

// Document is a JSON object that keeps insertion order and may contain the
// same key more than once. The analyzer configuration format relies on
// repeated "include" keys, which a Go map cannot represent.
type Document []Field

// New builds a Document from alternating key/value arguments.
// It panics on an odd argument count or a non-string key.
func New(kv ...any) Document {
	if len(kv)%2 != 0 {
		panic("jsondoc.New: odd number of arguments")
	}
	doc := make(Document, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("jsondoc.New: key at position %d is %T, not string", i, kv[i]))
		}
		doc = append(doc, Field{Key: key, Value: kv[i+1]})
	}
	return doc
}

// Add appends a field, even if the key is already present.
func (d Document) Add(key string, value any) Document {
	return append(d, Field{Key: key, Value: value})
}

// Set replaces the value of the first field named key, or appends the field.
func (d Document) Set(key string, value any) Document {
	for i := range d {
		if d[i].Key == key {
			d[i].Value = value
			return d
		}
	}
	return d.Add(key, value)
}

// Merge appends every field of other, preserving its order.
func (d Document) Merge(other Document) Document {
	return append(d, other...)
}

// Get returns the value of the first field named key.
func (d Document) Get(key string) (any, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// GetAll returns the values of every field named key, in order.
func (d Document) GetAll(key string) []any {
	var values []any
	for _, f := range d {
		if f.Key == key {
			values = append(values, f.Value)
		}
	}
	return values
}

// Keys returns the keys in order, including repeats.
func (d Document) Keys() []string {
	keys := make([]string, len(d))
	for i, f := range d {
		keys[i] = f.Key
	}
	return keys
}

// Len returns the number of fields.
func (d Document) Len() int {
	return len(d)
}

// MarshalJSON writes the fields as a compact JSON object. A nil Document
// encodes as {} so that empty objects stay objects.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encode(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := encode(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encode marshals v without HTML escaping and without the trailing newline
// json.Encoder adds.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Marshal renders v as pretty-printed JSON with 4-space indentation and no
// trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Encode writes the pretty-printed form of v to w.
func Encode(w io.Writer, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile serializes v and overwrites path with the result. The file is
// always closed; a close error is reported when the write itself succeeded.
func WriteFile(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, v); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
