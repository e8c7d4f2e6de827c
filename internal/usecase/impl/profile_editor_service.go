// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"talenthub/config"
	"talenthub/internal/domain/alias"
	"talenthub/internal/domain/entity"
	domainerrors "talenthub/internal/domain/errors"
	"talenthub/internal/domain/repository"
	"talenthub/internal/domain/scoring"
	"talenthub/internal/domain/service"
	"talenthub/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultFreshnessWindow = 5 * time.Minute

	// editorIdleWindow bounds how long an untouched, edit-idle profile entry
	// stays in the editors map before the next access sweeps it out.
	editorIdleWindow = 30 * time.Minute
)

// profileEditorService implements the ProfileUsecase interface. It is the
// only component allowed to mutate the shared profile record; the gateway and
// cache pairing own the snapshot itself.
type profileEditorService struct {
	gateway service.ProfileGateway
	cache   repository.ProfileCache
	cfg     *config.Config
	logger  *slog.Logger
	clock   func() time.Time

	mu      sync.Mutex
	editors map[string]*editorState
}

// editorState tracks one profile's displayed record and per-section edit
// lifecycle. Upstream gateway calls never happen while the state lock is
// held; snapshot cache reads do, they are single key lookups.
type editorState struct {
	mu sync.Mutex

	record    *entity.ProfileRecord
	fetchedAt time.Time

	sections   map[entity.SectionName]entity.SectionState
	drafts     map[entity.SectionName]*entity.ProfileRecord
	saving     entity.SectionName // section currently in Saving, or ""
	refreshing bool

	// lastTouched is guarded by the service mutex, not st.mu.
	lastTouched time.Time
}

// NewProfileEditorService is the constructor for profileEditorService.
func NewProfileEditorService(
	gateway service.ProfileGateway,
	cache repository.ProfileCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileEditorService{
		gateway: gateway,
		cache:   cache,
		cfg:     cfg,
		logger:  logger,
		clock:   time.Now,
		editors: make(map[string]*editorState),
	}
}

func (srv *profileEditorService) freshnessWindow() time.Duration {
	if srv.cfg != nil && srv.cfg.Cache != nil && srv.cfg.Cache.TTL > 0 {
		return srv.cfg.Cache.TTL
	}

	return defaultFreshnessWindow
}

func (srv *profileEditorService) editor(profileID string) *editorState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	now := srv.clock()
	srv.evictIdleLocked(now, profileID)

	st, ok := srv.editors[profileID]
	if !ok {
		st = &editorState{
			sections: make(map[entity.SectionName]entity.SectionState),
			drafts:   make(map[entity.SectionName]*entity.ProfileRecord),
		}
		srv.editors[profileID] = st
	}
	st.lastTouched = now

	return st
}

// evictIdleLocked drops editor entries untouched past the idle window whose
// sections are all Viewing. The snapshot cache still holds their state, so a
// later load rebuilds the entry without an upstream fetch. Callers must hold
// srv.mu.
func (srv *profileEditorService) evictIdleLocked(now time.Time, keep string) {
	for id, st := range srv.editors {
		if id == keep || now.Sub(st.lastTouched) < editorIdleWindow {
			continue
		}
		// An entry busy enough to hold its own lock is not idle.
		if !st.mu.TryLock() {
			continue
		}
		idle := st.editIdleLocked() && !st.refreshing
		st.mu.Unlock()

		if idle {
			delete(srv.editors, id)
		}
	}
}

// editIdleLocked reports whether no section is in Editing or Saving.
// Callers must hold st.mu.
func (st *editorState) editIdleLocked() bool {
	if st.saving != "" {
		return false
	}
	for _, state := range st.sections {
		if state == entity.SectionEditing || state == entity.SectionSaving {
			return false
		}
	}

	return true
}

func (st *editorState) sectionStateLocked(section entity.SectionName) entity.SectionState {
	if state, ok := st.sections[section]; ok {
		return state
	}

	return entity.SectionViewing
}

// viewLocked builds the response view. Callers must hold st.mu.
func (st *editorState) viewLocked(section entity.SectionName) *usecase.ProfileView {
	sections := make(map[entity.SectionName]entity.SectionState, len(entity.Sections()))
	for _, name := range entity.Sections() {
		sections[name] = st.sectionStateLocked(name)
	}

	view := &usecase.ProfileView{
		Record:     st.record.Clone(),
		Completion: scoring.Score(st.record),
		Sections:   sections,
		FetchedAt:  st.fetchedAt,
	}
	if section != "" {
		view.Draft = st.drafts[section].Clone()
	}

	return view
}

// LoadProfile serves the profile with the cache freshness policy: fresh
// snapshots render directly, stale snapshots render immediately and trigger a
// background refetch, misses fetch synchronously.
func (srv *profileEditorService) LoadProfile(ctx context.Context, principal usecase.Principal) (*usecase.ProfileView, error) {
	srv.logger.Debug("Loading profile", "profileID", principal.ProfileID)

	st := srv.editor(principal.ProfileID)
	st.mu.Lock()

	snap, err := srv.cache.Read(ctx, principal.ProfileID)
	if err == nil && snap.Valid() {
		st.record = snap.Record
		st.fetchedAt = snap.FetchedAt

		if snap.Fresh(srv.clock(), srv.freshnessWindow()) {
			defer st.mu.Unlock()

			return st.viewLocked(""), nil
		}

		// Stale but present: render immediately, refresh in the background.
		// The refresh is skipped entirely while the user is mid-edit so
		// unsaved work is never raced.
		if st.editIdleLocked() && !st.refreshing {
			st.refreshing = true
			go srv.refreshInBackground(principal, st)
		}
		defer st.mu.Unlock()

		return st.viewLocked(""), nil
	}
	if err != nil && !errors.Is(err, repository.ErrCacheMiss) {
		srv.logger.Warn("Profile cache read failed", "profileID", principal.ProfileID, "error", err)
	}
	st.mu.Unlock()

	rec, err := srv.gateway.FetchProfile(ctx, principal.ProfileID, principal.AccessToken)

	st.mu.Lock()
	defer st.mu.Unlock()

	if err != nil {
		// Fetch failures are recovered locally: prior data keeps rendering
		// when it exists, otherwise the failure surfaces.
		if st.record != nil {
			srv.logger.Warn("Profile fetch failed, serving last known record", "profileID", principal.ProfileID, "error", err)

			return st.viewLocked(""), nil
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	st.record = rec
	st.fetchedAt = srv.clock()

	return st.viewLocked(""), nil
}

// refreshInBackground refetches the profile after a stale cache read. The
// result silently replaces the displayed record unless the user started
// editing while the fetch was in flight, in which case it is dropped.
func (srv *profileEditorService) refreshInBackground(principal usecase.Principal, st *editorState) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rec, err := srv.gateway.FetchProfile(ctx, principal.ProfileID, principal.AccessToken)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.refreshing = false

	if err != nil {
		srv.logger.Warn("Background profile refresh failed", "profileID", principal.ProfileID, "error", err)

		return
	}
	if !st.editIdleLocked() {
		srv.logger.Debug("Dropping background refresh result, edit in progress", "profileID", principal.ProfileID)

		return
	}

	st.record = rec
	st.fetchedAt = srv.clock()
}

// ensureRecordLocked makes sure a server-confirmed record is present,
// consulting the cache first and fetching synchronously otherwise. st.mu must
// be held on entry and is held on return; it is released around the fetch.
func (srv *profileEditorService) ensureRecordLocked(ctx context.Context, principal usecase.Principal, st *editorState) error {
	if st.record != nil {
		return nil
	}

	snap, err := srv.cache.Read(ctx, principal.ProfileID)
	if err == nil && snap.Valid() {
		st.record = snap.Record
		st.fetchedAt = snap.FetchedAt

		return nil
	}

	st.mu.Unlock()
	rec, err := srv.gateway.FetchProfile(ctx, principal.ProfileID, principal.AccessToken)
	st.mu.Lock()

	if err != nil {
		return errors.Wrap(err, "failed to fetch profile")
	}

	st.record = rec
	st.fetchedAt = srv.clock()

	return nil
}

// BeginEdit transitions the section to Editing and takes a full-record
// working copy so other sections remain independently editable.
func (srv *profileEditorService) BeginEdit(ctx context.Context, principal usecase.Principal, section entity.SectionName) (*usecase.ProfileView, error) {
	if !section.Valid() {
		return nil, errors.Wrap(domainerrors.ErrUnknownSection, string(section))
	}

	st := srv.editor(principal.ProfileID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := srv.ensureRecordLocked(ctx, principal, st); err != nil {
		return nil, err
	}

	switch st.sectionStateLocked(section) {
	case entity.SectionSaving:
		return nil, errors.Wrap(domainerrors.ErrSaveInProgress, "cannot edit while saving")
	case entity.SectionEditing:
		// Re-entering edit mode keeps the existing draft.
		return st.viewLocked(section), nil
	}

	st.drafts[section] = st.record.Clone()
	st.sections[section] = entity.SectionEditing

	return st.viewLocked(section), nil
}

// UpdateDraft merges a raw section payload into the working copy. Only the
// fields owned by the section are touched; email is immutable and owned by no
// section. No field validation happens here: any combination of filled and
// empty values is accepted.
func (srv *profileEditorService) UpdateDraft(ctx context.Context, principal usecase.Principal, section entity.SectionName, raw map[string]any) (*usecase.ProfileView, error) {
	if !section.Valid() {
		return nil, errors.Wrap(domainerrors.ErrUnknownSection, string(section))
	}

	st := srv.editor(principal.ProfileID)
	st.mu.Lock()
	defer st.mu.Unlock()

	switch st.sectionStateLocked(section) {
	case entity.SectionSaving:
		return nil, errors.Wrap(domainerrors.ErrSaveInProgress, "cannot update draft while saving")
	case entity.SectionViewing:
		return nil, errors.Wrap(domainerrors.ErrSectionNotEditing, string(section))
	}

	patch := alias.Normalize(raw)
	alias.MergeSection(st.drafts[section], patch, section)

	return st.viewLocked(section), nil
}

// SaveSection performs the write-then-reread cycle: the full record (not just
// the section) fans out through the gateway, the cache is invalidated by the
// gateway before the call returns, and a synchronous refetch replaces the
// displayed record because the backend may derive or reshape fields.
func (srv *profileEditorService) SaveSection(ctx context.Context, principal usecase.Principal, section entity.SectionName) (*usecase.ProfileView, error) {
	if !section.Valid() {
		return nil, errors.Wrap(domainerrors.ErrUnknownSection, string(section))
	}

	st := srv.editor(principal.ProfileID)
	st.mu.Lock()

	if st.saving != "" {
		st.mu.Unlock()

		return nil, errors.Wrap(domainerrors.ErrSaveInProgress, "another section is saving")
	}
	if st.sectionStateLocked(section) != entity.SectionEditing {
		st.mu.Unlock()

		return nil, errors.Wrap(domainerrors.ErrSectionNotEditing, string(section))
	}

	pending := st.drafts[section].Clone()
	st.saving = section
	st.sections[section] = entity.SectionSaving
	st.mu.Unlock()

	if err := srv.gateway.WriteProfile(ctx, principal.ProfileID, principal.AccessToken, pending); err != nil {
		// The user's in-progress values stay intact so no input is lost.
		st.mu.Lock()
		defer st.mu.Unlock()
		st.saving = ""
		st.sections[section] = entity.SectionEditing

		return nil, errors.Wrap(err, "failed to save profile section")
	}

	confirmed, err := srv.gateway.FetchProfile(ctx, principal.ProfileID, principal.AccessToken)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.saving = ""
	st.sections[section] = entity.SectionViewing
	delete(st.drafts, section)

	if err != nil {
		// The write went through; keep the optimistic copy on screen until
		// the next successful fetch repopulates the invalidated cache.
		srv.logger.Warn("Confirming refetch failed after save", "profileID", principal.ProfileID, "error", err)
		st.record = pending

		return st.viewLocked(""), nil
	}

	st.record = confirmed
	st.fetchedAt = srv.clock()

	return st.viewLocked(""), nil
}

// CancelEdit discards the working copy and re-renders from the last
// cache/fetch snapshot. When neither a snapshot nor a fresh fetch is
// available, cancel is a no-op that leaves the section in Editing.
func (srv *profileEditorService) CancelEdit(ctx context.Context, principal usecase.Principal, section entity.SectionName) (*usecase.ProfileView, error) {
	if !section.Valid() {
		return nil, errors.Wrap(domainerrors.ErrUnknownSection, string(section))
	}

	st := srv.editor(principal.ProfileID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.saving == section {
		return nil, errors.Wrap(domainerrors.ErrCancelDuringSave, string(section))
	}
	if st.sectionStateLocked(section) != entity.SectionEditing {
		return nil, errors.Wrap(domainerrors.ErrSectionNotEditing, string(section))
	}

	snap, err := srv.cache.Read(ctx, principal.ProfileID)
	if err == nil && snap.Valid() {
		st.record = snap.Record
		st.fetchedAt = snap.FetchedAt
	} else {
		st.mu.Unlock()
		rec, fetchErr := srv.gateway.FetchProfile(ctx, principal.ProfileID, principal.AccessToken)
		st.mu.Lock()

		if fetchErr != nil {
			srv.logger.Warn("Cancel could not restore server state, staying in edit mode", "profileID", principal.ProfileID, "error", fetchErr)

			return st.viewLocked(section), nil
		}

		st.record = rec
		st.fetchedAt = srv.clock()
	}

	delete(st.drafts, section)
	st.sections[section] = entity.SectionViewing

	return st.viewLocked(""), nil
}

// Refresh handles the application regaining foreground visibility: a
// synchronous refetch that is dropped in favor of unsaved work whenever any
// section is mid-edit.
func (srv *profileEditorService) Refresh(ctx context.Context, principal usecase.Principal) (*usecase.ProfileView, error) {
	st := srv.editor(principal.ProfileID)
	st.mu.Lock()

	if !st.editIdleLocked() {
		defer st.mu.Unlock()
		srv.logger.Debug("Dropping visibility refresh, edit in progress", "profileID", principal.ProfileID)

		return st.viewLocked(""), nil
	}
	st.mu.Unlock()

	rec, err := srv.gateway.FetchProfile(ctx, principal.ProfileID, principal.AccessToken)

	st.mu.Lock()
	defer st.mu.Unlock()

	if err != nil {
		if st.record != nil {
			srv.logger.Warn("Visibility refresh failed, serving last known record", "profileID", principal.ProfileID, "error", err)

			return st.viewLocked(""), nil
		}

		return nil, errors.Wrap(err, "failed to refresh profile")
	}

	// Idleness is re-checked after the fetch: an edit started while the fetch
	// was in flight wins over the network result.
	if !st.editIdleLocked() {
		srv.logger.Debug("Dropping visibility refresh result, edit in progress", "profileID", principal.ProfileID)

		return st.viewLocked(""), nil
	}

	st.record = rec
	st.fetchedAt = srv.clock()

	return st.viewLocked(""), nil
}
