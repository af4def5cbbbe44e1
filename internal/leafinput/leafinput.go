// Package leafinput reads leaf lists from JSON documents.
package leafinput

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/celestiaorg/lmt"
)

// ErrInvalidDocument is returned when a document holds no usable leaf array.
var ErrInvalidDocument = errors.New("invalid leaf document")

// DefaultPath is where Parse looks for leaves unless told otherwise. A
// document that is itself an array is accepted under it as well.
const DefaultPath = "leaves"

// Parse extracts the leaves found at path in a JSON document. The array may
// hold strings or numbers; numbers are kept in their literal form so large
// field elements do not lose precision. An empty path or "@this" selects a
// top-level array.
func Parse(doc []byte, path string) ([]lmt.Hash, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.Wrap(ErrInvalidDocument, "not valid JSON")
	}
	var result gjson.Result
	if path == "" {
		result = gjson.ParseBytes(doc)
	} else {
		result = gjson.GetBytes(doc, path)
		if !result.Exists() && path == DefaultPath {
			if top := gjson.ParseBytes(doc); top.IsArray() {
				result = top
			}
		}
	}
	if !result.Exists() {
		return nil, errors.Wrapf(ErrInvalidDocument, "nothing at path %q", path)
	}
	if !result.IsArray() {
		return nil, errors.Wrapf(ErrInvalidDocument, "value at path %q is not an array", path)
	}

	items := result.Array()
	leaves := make([]lmt.Hash, 0, len(items))
	for i, item := range items {
		switch item.Type {
		case gjson.String:
			leaves = append(leaves, lmt.Hash(item.Str))
		case gjson.Number:
			leaves = append(leaves, lmt.Hash(item.Raw))
		default:
			return nil, errors.Wrapf(ErrInvalidDocument, "leaf %s at path %q is a %s", strconv.Itoa(i), path, item.Type)
		}
	}
	return leaves, nil
}

// ParseFile reads the file at name and calls Parse on its content.
func ParseFile(name, path string) ([]lmt.Hash, error) {
	doc, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading leaves from %s", name)
	}
	return Parse(doc, path)
}
