package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnparsable indicates an embedded metadata block could not be decoded.
var ErrUnparsable = errors.New("metadata unparsable")

// Serialize renders the record as compact JSON with every literal "<" replaced
// by "&lt;". That is the only escaping the host document requires: the JSON
// lives inside a text node, so an unescaped "<" would open a phantom tag.
func Serialize(rec Record) (string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	return strings.ReplaceAll(string(data), "<", "&lt;"), nil
}

// Deserialize is the exact inverse of Serialize: it restores "&lt;" to "<"
// and decodes the JSON. Deserialize(Serialize(r)) == r for every record r.
func Deserialize(text string) (Record, error) {
	raw := strings.ReplaceAll(text, "&lt;", "<")
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	return rec, nil
}
