// Package pb contains the protobuf wire messages for proofs and persisted
// leaf sets. The message definitions live in lmt.proto; the Go types in
// messages.go are kept in sync with it by hand.
package pb
