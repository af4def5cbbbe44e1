package hashers

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/celestiaorg/lmt"
)

// ErrMalformedInput is returned when a hash is not in the encoding a
// combiner expects.
var ErrMalformedInput = errors.New("malformed combiner input")

const hexPrefix = "0x"

// trimHexPrefix strips at most one 0x or 0X prefix.
func trimHexPrefix(s string) (string, bool) {
	if len(s) >= 2 && (s[:2] == hexPrefix || s[:2] == "0X") {
		return s[2:], true
	}
	return s, false
}

// decodeHex decodes an optionally 0x-prefixed hex hash. A size of zero
// accepts any length.
func decodeHex(h lmt.Hash, size int) ([]byte, error) {
	s, _ := trimHexPrefix(string(h))
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "%q is not hex: %v", string(h), err)
	}
	if size > 0 && len(b) != size {
		return nil, errors.Wrapf(ErrMalformedInput, "%q: got %d bytes, want %d", string(h), len(b), size)
	}
	return b, nil
}

func encodeHex(b []byte) lmt.Hash {
	return lmt.Hash(hexPrefix + hex.EncodeToString(b))
}
