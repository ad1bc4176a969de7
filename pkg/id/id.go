// Package id generates time-sortable identifiers for trades and orders.
package id

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy io.Reader
)

func init() {
	// Seed the monotonic entropy source from crypto/rand so IDs within the
	// same millisecond stay lexicographically increasing and unpredictable.
	var seed int64
	_ = binary.Read(cryptorand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	entropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a fresh ULID string. ULIDs sort by generation time, which keeps
// trade logs and journal indexes in execution order.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	u, err := ulid.New(ulid.Timestamp(time.Now().UTC()), entropy)
	if err != nil {
		// Only possible if time goes backwards or entropy is exhausted.
		panic(err)
	}
	return u.String()
}
