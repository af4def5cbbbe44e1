// Package storage persists the leaves of Merkle trees so they can be rebuilt
// later. Only leaves and the root are stored; inner layers are recomputed on
// load.
package storage
