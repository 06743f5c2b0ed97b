package models

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewID returns an identifier derived from the current time and a random
// component. Collision-safe within a session, not cryptographically unique;
// treat as opaque and compare only for equality.
func NewID() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.IntN(1000000))
}
