package engine

import "time"

// Clock returns the current time.
type Clock func() time.Time

// IDGenerator returns a fresh, unique goal identifier.
type IDGenerator func() string
