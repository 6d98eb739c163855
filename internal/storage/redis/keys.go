package redis

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Key prefix for all scoring data
const keyPrefix = "tennis"

// resultKey returns the Redis key for a cached result.
// Sequences are caller-supplied and unbounded, so the key carries a digest
// rather than the sequence itself.
func resultKey(sequence string) string {
	sum := blake2b.Sum256([]byte(sequence))
	return fmt.Sprintf("%s:result:%s", keyPrefix, hex.EncodeToString(sum[:]))
}
