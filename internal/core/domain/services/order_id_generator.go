package services

import (
	"crypto/sha256"
	"encoding/binary"
	"sync/atomic"
	"time"

	"escrow/internal/core/domain/model/kernel"
)

// OrderIDGenerator produces collision-resistant 256-bit order identifiers.
//
// An identifier is the SHA-256 digest of the creator's address, an internal
// monotonically increasing nonce, and the creation timestamp. The nonce is
// incremented on every call, so repeated calls for the same creator at the
// same instant still yield distinct identifiers. Given identical inputs
// (address, nonce, timestamp) the output is deterministic, which the tests
// rely on. Generation has no error conditions.
type OrderIDGenerator struct {
	nonce atomic.Uint64
}

// NewOrderIDGenerator creates a generator with its nonce at zero.
func NewOrderIDGenerator() *OrderIDGenerator {
	return &OrderIDGenerator{}
}

// Generate derives the next identifier for the given creator and instant,
// consuming one nonce value.
func (g *OrderIDGenerator) Generate(creator kernel.Address, at time.Time) kernel.OrderID {
	nonce := g.nonce.Add(1)
	return deriveOrderID(creator, nonce, at)
}

// deriveOrderID computes sha256(address || nonce || unix timestamp) with
// fixed-width big-endian integer encoding.
func deriveOrderID(creator kernel.Address, nonce uint64, at time.Time) kernel.OrderID {
	h := sha256.New()
	h.Write(creator.Bytes())

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], nonce)
	h.Write(buf[:])

	binary.BigEndian.PutUint64(buf[:], uint64(at.UTC().Unix()))
	h.Write(buf[:])

	// The digest is 32 bytes and never all zero, so construction cannot fail.
	id, err := kernel.OrderIDFromBytes(h.Sum(nil))
	if err != nil {
		panic(err)
	}
	return id
}
