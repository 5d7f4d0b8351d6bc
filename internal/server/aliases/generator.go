// Package aliases mints the short unguessable strings that address pending
// file requests.
//
// A Generator is a deterministic stream: two generators built from the same
// seed produce the same sequence. Each call keys ChaCha20 with the seed and
// uses the call counter as the nonce, so the stream has no end; the 64-bit
// counter simply wraps.
package aliases

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// Alphabet omits 0/O, 1/l/I to keep aliases readable when copied by hand.
const Alphabet = "23456789abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

// DefaultLength gives 56^22, roughly 2^127 possible aliases.
const DefaultLength = 22

// acceptBelow is the largest multiple of len(Alphabet) that fits in a byte;
// bytes at or above it are discarded so every symbol is equally likely.
const acceptBelow = 256 - 256%len(Alphabet)

type Generator struct {
	key     [chacha20.KeySize]byte
	counter uint64
	length  int
}

// New returns a Generator producing DefaultLength aliases. Seeds shorter
// than 32 bytes are zero padded; longer seeds are folded with SHA-256.
func New(seed []byte) *Generator {
	return NewWithLength(seed, DefaultLength)
}

// NewWithLength is New with a custom alias length. Lengths below 1 fall
// back to DefaultLength.
func NewWithLength(seed []byte, length int) *Generator {
	if length < 1 {
		length = DefaultLength
	}
	g := &Generator{length: length}
	if len(seed) > chacha20.KeySize {
		g.key = sha256.Sum256(seed)
	} else {
		copy(g.key[:], seed)
	}
	return g
}

// Next returns the next alias in the stream. It never fails.
func (g *Generator) Next() string {
	var nonce [chacha20.NonceSize]byte
	binary.BigEndian.PutUint64(nonce[chacha20.NonceSize-8:], g.counter)
	g.counter++

	// key and nonce sizes are fixed above, so this cannot fail.
	c, err := chacha20.NewUnauthenticatedCipher(g.key[:], nonce[:])
	if err != nil {
		panic(err)
	}

	out := make([]byte, 0, g.length)
	block := make([]byte, 64)
	for len(out) < g.length {
		clear(block)
		c.XORKeyStream(block, block)
		for _, b := range block {
			if int(b) >= acceptBelow {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == g.length {
				break
			}
		}
	}
	return string(out)
}
