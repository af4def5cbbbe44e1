package hashers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/lmt"
)

func digest(s string) lmt.Hash {
	sum := sha256.Sum256([]byte(s))
	return encodeHex(sum[:])
}

func TestSHA256_Combine(t *testing.T) {
	left, right := digest("left"), digest("right")
	l, _ := hex.DecodeString(strings.TrimPrefix(string(left), "0x"))
	r, _ := hex.DecodeString(strings.TrimPrefix(string(right), "0x"))
	want := sha256.Sum256(append(l, r...))

	got, err := SHA256().Combine(left, right)
	require.NoError(t, err)
	assert.Equal(t, encodeHex(want[:]), got)

	// output is valid input again
	_, err = SHA256().Combine(got, got)
	require.NoError(t, err)

	// the 0x prefix is optional
	unprefixed, err := SHA256().Combine(lmt.Hash(strings.TrimPrefix(string(left), "0x")), right)
	require.NoError(t, err)
	assert.Equal(t, got, unprefixed)
}

func TestSHA256_Malformed(t *testing.T) {
	tests := []struct {
		name        string
		left, right lmt.Hash
	}{
		{"not hex", "0xzz", digest("r")},
		{"too short", "0x0102", digest("r")},
		{"right too long", digest("l"), digest("r") + "00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SHA256().Combine(tt.left, tt.right)
			assert.True(t, errors.Is(err, ErrMalformedInput), "got: %v", err)
		})
	}
}

func TestKeccak256_Combine(t *testing.T) {
	got, err := Keccak256().Combine("0x", "")
	require.NoError(t, err)
	assert.Equal(t, lmt.Hash("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"), got)

	a, err := Keccak256().Combine("0x01", "0x02")
	require.NoError(t, err)
	b, err := Keccak256().Combine("0x0102", "0x")
	require.NoError(t, err)
	assert.Equal(t, a, b, "keccak256 hashes the plain concatenation")

	_, err = Keccak256().Combine("0x1", "0x02")
	assert.True(t, errors.Is(err, ErrMalformedInput))

	// only one prefix is stripped
	_, err = Keccak256().Combine("0x0X01", "0x")
	assert.True(t, errors.Is(err, ErrMalformedInput), "got: %v", err)
	_, err = Keccak256().Combine("0X01", "0x")
	require.NoError(t, err)
}

func TestMiMC_Combine(t *testing.T) {
	decimal, err := MiMC().Combine("1234", "2345")
	require.NoError(t, err)
	hexInput, err := MiMC().Combine("0x4d2", "0x929")
	require.NoError(t, err)
	assert.Equal(t, decimal, hexInput)

	swapped, err := MiMC().Combine("2345", "1234")
	require.NoError(t, err)
	assert.NotEqual(t, decimal, swapped)

	// the output is a canonical field element and can be combined again
	_, err = parseElement(decimal)
	require.NoError(t, err)
	_, err = MiMC().Combine(decimal, swapped)
	require.NoError(t, err)
}

func TestMiMC_Malformed(t *testing.T) {
	modulus := fr.Modulus()
	tests := []struct {
		name  string
		input lmt.Hash
	}{
		{"empty", ""},
		{"not a number", "12ab"},
		{"negative", "-1"},
		{"modulus", lmt.Hash(modulus.String())},
		{"bad hex", "0xg1"},
		{"double prefix", "0x0X01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MiMC().Combine(tt.input, "1")
			assert.True(t, errors.Is(err, ErrMalformedInput), "got: %v", err)
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, c)
	}
	assert.Equal(t, []string{NameConcat, NameKeccak256, NameMiMC, NameSHA256}, Names())

	_, err := ByName("pedersen")
	assert.True(t, errors.Is(err, ErrUnknownHasher))
}

func TestConcat(t *testing.T) {
	got, err := Concat("-").Combine("1234", "2345")
	require.NoError(t, err)
	assert.Equal(t, lmt.Hash("1234-2345"), got)
}
