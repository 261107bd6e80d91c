package field

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// FromJSON flattens a JSON document into a set with one field per scalar
// value, in document order. IDs are dotted paths ("user.email",
// "tags.0"); null becomes an empty value. Empty objects and arrays
// contribute no fields.
func FromJSON(data []byte, labels Labels) (*Set, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() && !doc.IsArray() {
		return nil, ErrInvalidDocument
	}

	var fields []Field
	flatten(doc, "", labels, &fields)
	return &Set{fields: fields}, nil
}

func flatten(node gjson.Result, path string, labels Labels, out *[]Field) {
	if node.IsObject() || node.IsArray() {
		index := 0
		node.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if node.IsArray() {
				name = strconv.Itoa(index)
				index++
			}
			flatten(value, join(path, name), labels, out)
			return true
		})
		return
	}

	value := node.String()
	if node.Type == gjson.Null {
		value = ""
	}
	*out = append(*out, Field{ID: path, Label: labels.For(path), Value: value})
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
