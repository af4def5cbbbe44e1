package hashers

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/gohashtree"

	"github.com/celestiaorg/lmt"
)

const sha256DigestSize = 32

type sha256Combiner struct{}

// SHA256 returns a combiner computing SHA-256(left || right) over two 32 byte
// hex digests.
func SHA256() lmt.Combiner {
	return sha256Combiner{}
}

func (sha256Combiner) Combine(left, right lmt.Hash) (lmt.Hash, error) {
	l, err := decodeHex(left, sha256DigestSize)
	if err != nil {
		return "", err
	}
	r, err := decodeHex(right, sha256DigestSize)
	if err != nil {
		return "", err
	}
	chunks := make([]byte, 0, 2*sha256DigestSize)
	chunks = append(chunks, l...)
	chunks = append(chunks, r...)
	digest := make([]byte, sha256DigestSize)
	if err := gohashtree.HashByteSlice(digest, chunks); err != nil {
		return "", errors.Wrap(err, "sha256 pair hash")
	}
	return encodeHex(digest), nil
}
