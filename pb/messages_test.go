package pb

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The expected bytes follow the field numbers and wire types of lmt.proto.
func TestWireFormat(t *testing.T) {
	tests := []struct {
		name string
		msg  proto.Message
		want []byte
	}{
		{
			"proof",
			&Proof{Index: 1, Total: 3, Nodes: []string{"a", "bc"}},
			[]byte{0x08, 0x01, 0x10, 0x03, 0x1a, 0x01, 'a', 0x1a, 0x02, 'b', 'c'},
		},
		{
			"leaf set",
			&LeafSet{Leaves: []string{"x"}, Root: "r", Hasher: "mimc"},
			[]byte{0x0a, 0x01, 'x', 0x12, 0x01, 'r', 0x1a, 0x04, 'm', 'i', 'm', 'c'},
		},
		{"empty proof", &Proof{}, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := proto.Marshal(tt.msg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
