package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

// randomSpan bounds the random id component; base-36 encoded it yields up to
// 12 characters.
var randomSpan = new(big.Int).Lsh(big.NewInt(1), 62)

// NewID returns a compact identifier combining the current Unix-millisecond
// timestamp with a random component, both base-36 encoded. Unique within a
// session with overwhelming probability; not cryptographically guaranteed.
func NewID() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)
	randomNum, err := rand.Int(rand.Reader, randomSpan)
	if err != nil {
		// Entropy exhaustion is not realistically reachable; fall back to
		// a second time component rather than returning an error.
		return timestamp + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return timestamp + strconv.FormatInt(randomNum.Int64(), 36)
}
