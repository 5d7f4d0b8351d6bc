package aliases

import (
	"encoding/binary"
	"time"

	"github.com/dmitrijs2005/gophdrop/internal/common"
)

// SeedSize is the width a generator seed is padded or folded to.
const SeedSize = 32

// NewSeed returns a process-start seed: the wall clock in nanoseconds
// followed by 24 bytes from crypto/rand.
func NewSeed() []byte {
	seed := make([]byte, 8, SeedSize)
	binary.BigEndian.PutUint64(seed, uint64(time.Now().UnixNano()))
	return append(seed, common.GenerateRandByteArray(SeedSize-8)...)
}
