// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"talenthub/internal/domain/entity"
)

// Principal identifies the authenticated profile owner. The access token is
// passed through to the upstream Profile API on every call.
type Principal struct {
	ProfileID   string
	AccessToken string
}

// ProfileView is the state returned to the delivery layer after every
// operation: the server-confirmed record, its completion percentage, the
// per-section lifecycle states and, for section-scoped operations, the
// in-progress working copy.
type ProfileView struct {
	Record     *entity.ProfileRecord                     `json:"record"`
	Draft      *entity.ProfileRecord                     `json:"draft,omitempty"`
	Completion int                                       `json:"completion"`
	Sections   map[entity.SectionName]entity.SectionState `json:"sections"`
	FetchedAt  time.Time                                 `json:"fetchedAt"`
}

// ProfileUsecase orchestrates the per-section edit/save/cancel lifecycle over
// the alias resolver, snapshot cache and persistence gateway.
type ProfileUsecase interface {
	// LoadProfile serves the cached snapshot when fresh, serves a stale
	// snapshot immediately while refreshing in the background, and falls back
	// to a synchronous fetch on a cache miss.
	LoadProfile(ctx context.Context, principal Principal) (*ProfileView, error)

	// BeginEdit transitions a section from Viewing to Editing and takes a
	// working copy. Re-entering Editing returns the existing draft.
	BeginEdit(ctx context.Context, principal Principal, section entity.SectionName) (*ProfileView, error)

	// UpdateDraft normalizes a raw (possibly alias-named) section payload and
	// merges the section's fields into the working copy.
	UpdateDraft(ctx context.Context, principal Principal, section entity.SectionName, raw map[string]any) (*ProfileView, error)

	// SaveSection writes the full record through the gateway, then refetches
	// the server-confirmed state. On failure the section stays in Editing
	// with the draft intact.
	SaveSection(ctx context.Context, principal Principal, section entity.SectionName) (*ProfileView, error)

	// CancelEdit discards the working copy and re-renders from the last
	// cache/fetch snapshot. Rejected while the same section is Saving; a
	// no-op when no snapshot can be obtained.
	CancelEdit(ctx context.Context, principal Principal, section entity.SectionName) (*ProfileView, error)

	// Refresh handles the foreground-visibility hook: a synchronous refetch,
	// dropped while any section is mid-edit.
	Refresh(ctx context.Context, principal Principal) (*ProfileView, error)
}
