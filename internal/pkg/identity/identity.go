package identity

import (
	"time"

	"github.com/google/uuid"
)

// Generator bundles the factories for the server-owned fields attached to a
// record when it is materialized: a fresh identifier and the current instant.
// Both are injectable so tests can substitute deterministic values.
type Generator struct {
	NewID func() uuid.UUID
	Now   func() time.Time
}

// Default returns the production generator: random v4 UUIDs and the wall
// clock in UTC. Instants are truncated to the second, the precision with
// which timestamps round-trip through the wire format.
func Default() Generator {
	return Generator{
		NewID: uuid.New,
		Now: func() time.Time {
			return time.Now().UTC().Truncate(time.Second)
		},
	}
}

// Fixed returns a generator that always yields the given identifier and
// instant. Intended for tests.
func Fixed(id uuid.UUID, at time.Time) Generator {
	return Generator{
		NewID: func() uuid.UUID { return id },
		Now:   func() time.Time { return at },
	}
}
