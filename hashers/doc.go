/*
Package hashers contains Combiner implementations for lmt.MerkleTree and
decorators around them.

Encodings: SHA256 and Keccak256 take hex digests and MiMC takes BN254 scalar
field elements written in decimal or 0x-hex. All three return 0x-prefixed
lower-case hex, which is also a valid input for the same combiner, so parent
hashes can be combined again.

MiMC is a ZK-friendly stand-in for a Pedersen hash over Grumpkin. Its roots
are not interchangeable with trees built from Pedersen commitments, such as
the ones computed by Noir circuits.
*/
package hashers
