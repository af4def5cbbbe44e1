package leafinput

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/lmt"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
		want []lmt.Hash
	}{
		{"object", `{"leaves": ["1234", "2345"]}`, "leaves", []lmt.Hash{"1234", "2345"}},
		{"nested", `{"tree": {"leaves": ["0x01"]}}`, "tree.leaves", []lmt.Hash{"0x01"}},
		{"top level array", `["a", "b", "c"]`, "", []lmt.Hash{"a", "b", "c"}},
		{"top level array with @this", `["a"]`, "@this", []lmt.Hash{"a"}},
		{"top level array under the default path", `["a", "b"]`, DefaultPath, []lmt.Hash{"a", "b"}},
		{"numbers keep their literal", `{"leaves": [1234, 21888242871839275222246405745257275088548364400416034343698204186575808495616]}`, "leaves",
			[]lmt.Hash{"1234", "21888242871839275222246405745257275088548364400416034343698204186575808495616"}},
		{"empty array", `{"leaves": []}`, "leaves", []lmt.Hash{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.doc), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{"not json", `{"leaves": [`, "leaves"},
		{"missing path", `{"other": []}`, "leaves"},
		{"top level array under a custom path", `["a"]`, "tree.leaves"},
		{"not an array", `{"leaves": "a"}`, "leaves"},
		{"object leaf", `{"leaves": ["a", {"b": 1}]}`, "leaves"},
		{"null leaf", `{"leaves": [null]}`, "leaves"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), tt.path)
			assert.True(t, errors.Is(err, ErrInvalidDocument), "got: %v", err)
		})
	}
}

func TestParseFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "leaves.json")
	require.NoError(t, os.WriteFile(name, []byte(`{"leaves": ["1", "2", "3"]}`), 0o600))

	got, err := ParseFile(name, "leaves")
	require.NoError(t, err)
	assert.Equal(t, []lmt.Hash{"1", "2", "3"}, got)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.json"), "leaves")
	assert.Error(t, err)
}
