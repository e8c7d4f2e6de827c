// Package service defines the domain-level contracts for external
// collaborators.
package service

import (
	"context"

	"talenthub/internal/domain/entity"
)

// ProfileGateway talks to the external Profile API. Fetches return the
// normalized canonical record and refill the snapshot cache; writes send the
// alias fan-out payload and never treat the returned body as authoritative;
// callers are expected to refetch to obtain the confirmed state.
//
// No automatic retries: a failed write surfaces to the caller, who keeps the
// edit state intact so no input is lost.
type ProfileGateway interface {
	FetchProfile(ctx context.Context, profileID, accessToken string) (*entity.ProfileRecord, error)
	WriteProfile(ctx context.Context, profileID, accessToken string, rec *entity.ProfileRecord) error
}
