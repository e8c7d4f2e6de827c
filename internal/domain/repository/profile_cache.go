// Package repository defines the persistence boundaries of the domain.
package repository

import (
	"context"
	"time"

	"talenthub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned by Read when no valid snapshot exists for the key.
// An incomplete snapshot (record without timestamp or vice versa) is an invalid
// cache state and must also surface as a miss.
var ErrCacheMiss = errors.New("profile cache miss")

// ProfileSnapshot pairs the last-known canonical record with the moment it was
// fetched from the upstream Profile API. The pair is stored and read as a unit.
type ProfileSnapshot struct {
	Record    *entity.ProfileRecord `json:"record"`
	FetchedAt time.Time             `json:"fetchedAt"`
}

// Valid reports whether the snapshot is a usable (record, timestamp) pair.
func (s *ProfileSnapshot) Valid() bool {
	return s != nil && s.Record != nil && !s.FetchedAt.IsZero()
}

// Clone returns a deep copy so cached state cannot be mutated through a
// previously returned snapshot.
func (s *ProfileSnapshot) Clone() *ProfileSnapshot {
	if s == nil {
		return nil
	}

	return &ProfileSnapshot{
		Record:    s.Record.Clone(),
		FetchedAt: s.FetchedAt,
	}
}

// Fresh reports whether the snapshot may be served without a network
// round-trip, given the freshness window.
func (s *ProfileSnapshot) Fresh(now time.Time, ttl time.Duration) bool {
	return s.Valid() && now.Sub(s.FetchedAt) < ttl
}

// ProfileCache is the local snapshot store for profile records, keyed by
// profile identity. Implementations must treat any invalid stored state as a
// miss rather than an error.
type ProfileCache interface {
	// Read returns the stored snapshot or ErrCacheMiss.
	Read(ctx context.Context, profileID string) (*ProfileSnapshot, error)
	// Write replaces the stored snapshot.
	Write(ctx context.Context, profileID string, snap *ProfileSnapshot) error
	// Invalidate removes the stored snapshot. Removing an absent entry is not
	// an error.
	Invalidate(ctx context.Context, profileID string) error
}
