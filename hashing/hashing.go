// Package hashing - Deterministic content hashing for cacheable raster
// computations.
//
// Every input that affects a tile's pixels is folded into a Hasher in a
// fixed order; the resulting Digest is the cache key. Identical requests
// always produce identical digests and differing requests must not collide,
// which murmur3's 128-bit output makes statistically safe.
package hashing

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/twmb/murmur3"
)

// Digest is a 128-bit content hash.
type Digest struct {
	H1, H2 uint64
}

// String renders the digest as 32 hex digits.
func (d Digest) String() string {
	return fmt.Sprintf("%016x%016x", d.H1, d.H2)
}

// Hasher accumulates typed values into a murmur3 128-bit hash.
type Hasher struct {
	h   murmur3.Hash128
	buf [8]byte
}

// New returns an empty hasher.
func New() *Hasher {
	return &Hasher{h: murmur3.New128()}
}

// AppendBytes folds raw bytes into the hash.
func (h *Hasher) AppendBytes(b []byte) {
	h.h.Write(b)
}

// AppendString folds a string into the hash, length-prefixed so adjacent
// strings cannot run together.
func (h *Hasher) AppendString(s string) {
	h.AppendInt(len(s))
	h.h.Write([]byte(s))
}

// AppendInt folds an integer into the hash.
func (h *Hasher) AppendInt(v int) {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(int64(v)))
	h.h.Write(h.buf[:])
}

// AppendFloat32 folds a float32 into the hash by bit pattern.
func (h *Hasher) AppendFloat32(v float32) {
	binary.LittleEndian.PutUint32(h.buf[:4], math.Float32bits(v))
	h.h.Write(h.buf[:4])
}

// AppendFloat64 folds a float64 into the hash by bit pattern.
func (h *Hasher) AppendFloat64(v float64) {
	binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(v))
	h.h.Write(h.buf[:])
}

// AppendDigest folds another digest into the hash.
func (h *Hasher) AppendDigest(d Digest) {
	binary.LittleEndian.PutUint64(h.buf[:], d.H1)
	h.h.Write(h.buf[:])
	binary.LittleEndian.PutUint64(h.buf[:], d.H2)
	h.h.Write(h.buf[:])
}

// Sum returns the digest of everything appended so far.
func (h *Hasher) Sum() Digest {
	h1, h2 := h.h.Sum128()
	return Digest{H1: h1, H2: h2}
}
