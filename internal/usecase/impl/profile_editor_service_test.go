package impl

import (
	"context"
	"testing"
	"time"

	"talenthub/internal/domain/entity"
	domainerrors "talenthub/internal/domain/errors"
	"talenthub/internal/domain/repository"
	mockrepository "talenthub/internal/mocks/repository"
	mockservice "talenthub/internal/mocks/service"
	"talenthub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testPrincipal = usecase.Principal{ProfileID: "p1", AccessToken: "tok"}

func TestLoadProfile_FreshCacheServedWithoutFetch(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)

	// 299,999 ms old: still fresh against a 5 minute window.
	c.EXPECT().
		Read(mock.Anything, "p1").
		Return(snapshotAt(namedRecord("Alex"), testNow.Add(-299999*time.Millisecond)), nil).
		Once()

	srv := newTestService(gw, c)

	view, err := srv.LoadProfile(context.Background(), testPrincipal)
	require.NoError(t, err)
	assert.Equal(t, "Alex", view.Record.FirstName)
	assert.Equal(t, entity.SectionViewing, view.Sections[entity.SectionPersonal])
	gw.AssertNotCalled(t, "FetchProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoadProfile_StaleCacheServesImmediatelyAndRefreshes(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)

	// 300,001 ms old: stale, must still render while a refetch runs behind it.
	c.EXPECT().
		Read(mock.Anything, "p1").
		Return(snapshotAt(namedRecord("Stale"), testNow.Add(-300001*time.Millisecond)), nil).
		Once()
	gw.EXPECT().
		FetchProfile(mock.Anything, "p1", "tok").
		Return(namedRecord("Refreshed"), nil).
		Once()

	srv := newTestService(gw, c)

	view, err := srv.LoadProfile(context.Background(), testPrincipal)
	require.NoError(t, err)
	assert.Equal(t, "Stale", view.Record.FirstName)

	// The background fetch eventually replaces the displayed record.
	st := srv.editor("p1")
	assert.Eventually(t, func() bool {
		st.mu.Lock()
		defer st.mu.Unlock()

		return st.record.FirstName == "Refreshed"
	}, time.Second, 5*time.Millisecond)
}

func TestLoadProfile_RefreshResultDroppedWhileEditing(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)

	c.EXPECT().
		Read(mock.Anything, "p1").
		Return(snapshotAt(namedRecord("Stale"), testNow.Add(-10*time.Minute)), nil)

	fetchStarted := make(chan struct{})
	releaseFetch := make(chan struct{})
	gw.EXPECT().
		FetchProfile(mock.Anything, "p1", "tok").
		Run(func(context.Context, string, string) {
			close(fetchStarted)
			<-releaseFetch
		}).
		Return(namedRecord("Refreshed"), nil).
		Once()

	srv := newTestService(gw, c)

	_, err := srv.LoadProfile(context.Background(), testPrincipal)
	require.NoError(t, err)
	<-fetchStarted

	// The user starts editing while the background fetch is in flight.
	_, err = srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	close(releaseFetch)

	// The late result must be dropped, never clobbering the edit session.
	st := srv.editor("p1")
	assert.Never(t, func() bool {
		st.mu.Lock()
		defer st.mu.Unlock()

		return st.record.FirstName == "Refreshed"
	}, 100*time.Millisecond, 10*time.Millisecond)
}

func TestLoadProfile_CacheMissFetchesSynchronously(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)

	c.EXPECT().Read(mock.Anything, "p1").Return(nil, repository.ErrCacheMiss).Once()
	gw.EXPECT().FetchProfile(mock.Anything, "p1", "tok").Return(namedRecord("Fetched"), nil).Once()

	srv := newTestService(gw, c)

	view, err := srv.LoadProfile(context.Background(), testPrincipal)
	require.NoError(t, err)
	assert.Equal(t, "Fetched", view.Record.FirstName)
	assert.Equal(t, testNow, view.FetchedAt)
}

func TestLoadProfile_FetchFailureServesLastKnownRecord(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)

	c.EXPECT().Read(mock.Anything, "p1").Return(nil, repository.ErrCacheMiss)
	gw.EXPECT().FetchProfile(mock.Anything, "p1", "tok").Return(namedRecord("Known"), nil).Once()

	srv := newTestService(gw, c)

	_, err := srv.LoadProfile(context.Background(), testPrincipal)
	require.NoError(t, err)

	gw.EXPECT().FetchProfile(mock.Anything, "p1", "tok").Return(nil, errors.New("upstream down")).Once()

	view, err := srv.LoadProfile(context.Background(), testPrincipal)
	require.NoError(t, err)
	assert.Equal(t, "Known", view.Record.FirstName)
}

func TestLoadProfile_FetchFailureWithNothingToServeFails(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)

	c.EXPECT().Read(mock.Anything, "p1").Return(nil, repository.ErrCacheMiss).Once()
	gw.EXPECT().FetchProfile(mock.Anything, "p1", "tok").Return(nil, errors.New("upstream down")).Once()

	srv := newTestService(gw, c)

	_, err := srv.LoadProfile(context.Background(), testPrincipal)
	assert.Error(t, err)
}

func TestBeginEdit_UnknownSectionRejected(t *testing.T) {
	srv := newTestService(mockservice.NewProfileGateway(t), mockrepository.NewProfileCache(t))

	_, err := srv.BeginEdit(context.Background(), testPrincipal, "not-a-section")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownSection)
}

func TestBeginEdit_TakesIndependentWorkingCopy(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(namedRecord("Alex"), testNow), nil)

	srv := newTestService(gw, c)

	view, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	require.NotNil(t, view.Draft)
	assert.Equal(t, view.Record, view.Draft)
	assert.NotSame(t, view.Record, view.Draft)
	assert.Equal(t, entity.SectionEditing, view.Sections[entity.SectionPersonal])

	// Draft edits never leak into the displayed record.
	raw := map[string]any{"firstName": "Changed", "phone": "0999"}
	view, err = srv.UpdateDraft(context.Background(), testPrincipal, entity.SectionPersonal, raw)
	require.NoError(t, err)
	assert.Equal(t, "Changed", view.Draft.FirstName)
	assert.Equal(t, "Alex", view.Record.FirstName)
}

func TestBeginEdit_ReenteringKeepsDraft(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(namedRecord("Alex"), testNow), nil)

	srv := newTestService(gw, c)

	_, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	_, err = srv.UpdateDraft(context.Background(), testPrincipal, entity.SectionPersonal, map[string]any{"firstName": "Edited"})
	require.NoError(t, err)

	view, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	assert.Equal(t, "Edited", view.Draft.FirstName)
}

func TestUpdateDraft_RequiresEditing(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)

	srv := newTestService(gw, c)

	_, err := srv.UpdateDraft(context.Background(), testPrincipal, entity.SectionPersonal, map[string]any{"firstName": "X"})
	assert.ErrorIs(t, err, domainerrors.ErrSectionNotEditing)
}

func TestUpdateDraft_MergesOnlyOwnedFields(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	rec := namedRecord("Alex")
	rec.Nationality = "IE"
	rec.Email = "alex@example.com"
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(rec, testNow), nil)

	srv := newTestService(gw, c)

	_, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)

	// The payload smuggles fields owned by other sections plus the immutable
	// email; only the personal fields may land in the draft.
	raw := map[string]any{
		"firstName":   "Changed",
		"nationality": "FR",
		"email":       "attacker@example.com",
	}
	view, err := srv.UpdateDraft(context.Background(), testPrincipal, entity.SectionPersonal, raw)
	require.NoError(t, err)
	assert.Equal(t, "Changed", view.Draft.FirstName)
	assert.Equal(t, "IE", view.Draft.Nationality)
	assert.Equal(t, "alex@example.com", view.Draft.Email)
}

func TestUpdateDraft_FullFormSemanticsClearOmittedFields(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	rec := namedRecord("Alex")
	rec.MiddleName = "Quinn"
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(rec, testNow), nil)

	srv := newTestService(gw, c)

	_, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)

	// Each update carries the whole section form; a missing middle name means
	// the user cleared it.
	view, err := srv.UpdateDraft(context.Background(), testPrincipal, entity.SectionPersonal, map[string]any{"firstName": "Alex"})
	require.NoError(t, err)
	assert.Empty(t, view.Draft.MiddleName)
}

func TestSaveSection_WritesFullRecordThenRefetches(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(namedRecord("Alex"), testNow), nil)

	var calls []string
	gw.EXPECT().
		WriteProfile(mock.Anything, "p1", "tok", mock.MatchedBy(func(rec *entity.ProfileRecord) bool {
			return rec.FirstName == "Changed"
		})).
		Run(func(context.Context, string, string, *entity.ProfileRecord) { calls = append(calls, "write") }).
		Return(nil).
		Once()

	confirmed := namedRecord("Changed")
	confirmed.Community = "derived-by-server"
	gw.EXPECT().
		FetchProfile(mock.Anything, "p1", "tok").
		Run(func(context.Context, string, string) { calls = append(calls, "fetch") }).
		Return(confirmed, nil).
		Once()

	srv := newTestService(gw, c)

	_, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	_, err = srv.UpdateDraft(context.Background(), testPrincipal, entity.SectionPersonal, map[string]any{"firstName": "Changed"})
	require.NoError(t, err)

	view, err := srv.SaveSection(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)

	// Write first, reread second: the refetched state is authoritative.
	assert.Equal(t, []string{"write", "fetch"}, calls)
	assert.Equal(t, "Changed", view.Record.FirstName)
	assert.Equal(t, "derived-by-server", view.Record.Community)
	assert.Equal(t, entity.SectionViewing, view.Sections[entity.SectionPersonal])
	assert.Nil(t, view.Draft)
}

func TestSaveSection_RequiresEditing(t *testing.T) {
	srv := newTestService(mockservice.NewProfileGateway(t), mockrepository.NewProfileCache(t))

	_, err := srv.SaveSection(context.Background(), testPrincipal, entity.SectionPersonal)
	assert.ErrorIs(t, err, domainerrors.ErrSectionNotEditing)
}

func TestSaveSection_SingleSavingSlot(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(namedRecord("Alex"), testNow), nil)

	writeStarted := make(chan struct{})
	releaseWrite := make(chan struct{})
	gw.EXPECT().
		WriteProfile(mock.Anything, "p1", "tok", mock.Anything).
		Run(func(context.Context, string, string, *entity.ProfileRecord) {
			close(writeStarted)
			<-releaseWrite
		}).
		Return(nil).
		Once()
	gw.EXPECT().FetchProfile(mock.Anything, "p1", "tok").Return(namedRecord("Alex"), nil).Once()

	srv := newTestService(gw, c)

	_, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	_, err = srv.BeginEdit(context.Background(), testPrincipal, entity.SectionSkills)
	require.NoError(t, err)

	saveDone := make(chan error, 1)
	go func() {
		_, err := srv.SaveSection(context.Background(), testPrincipal, entity.SectionPersonal)
		saveDone <- err
	}()
	<-writeStarted

	// A second save while the first is in flight is rejected outright.
	_, err = srv.SaveSection(context.Background(), testPrincipal, entity.SectionSkills)
	assert.ErrorIs(t, err, domainerrors.ErrSaveInProgress)

	// So is re-entering edit mode on the saving section.
	_, err = srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	assert.ErrorIs(t, err, domainerrors.ErrSaveInProgress)

	close(releaseWrite)
	require.NoError(t, <-saveDone)

	// The slot frees up once the save completes.
	gw.EXPECT().WriteProfile(mock.Anything, "p1", "tok", mock.Anything).Return(nil).Once()
	gw.EXPECT().FetchProfile(mock.Anything, "p1", "tok").Return(namedRecord("Alex"), nil).Once()
	_, err = srv.SaveSection(context.Background(), testPrincipal, entity.SectionSkills)
	assert.NoError(t, err)
}

func TestSaveSection_WriteFailureKeepsDraftAndEditing(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(namedRecord("Alex"), testNow), nil)

	gw.EXPECT().
		WriteProfile(mock.Anything, "p1", "tok", mock.Anything).
		Return(errors.New("upstream down")).
		Once()

	srv := newTestService(gw, c)

	_, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	_, err = srv.UpdateDraft(context.Background(), testPrincipal, entity.SectionPersonal, map[string]any{"firstName": "Changed"})
	require.NoError(t, err)

	_, err = srv.SaveSection(context.Background(), testPrincipal, entity.SectionPersonal)
	require.Error(t, err)

	// No input is lost: the draft survives and the section stays editable.
	view, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	assert.Equal(t, entity.SectionEditing, view.Sections[entity.SectionPersonal])
	assert.Equal(t, "Changed", view.Draft.FirstName)
}

func TestSaveSection_RefetchFailureKeepsOptimisticCopy(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(namedRecord("Alex"), testNow), nil)

	gw.EXPECT().WriteProfile(mock.Anything, "p1", "tok", mock.Anything).Return(nil).Once()
	gw.EXPECT().FetchProfile(mock.Anything, "p1", "tok").Return(nil, errors.New("refetch failed")).Once()

	srv := newTestService(gw, c)

	_, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	_, err = srv.UpdateDraft(context.Background(), testPrincipal, entity.SectionPersonal, map[string]any{"firstName": "Changed"})
	require.NoError(t, err)

	// The write went through, so the save still succeeds and the saved values
	// keep rendering until the next successful fetch.
	view, err := srv.SaveSection(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	assert.Equal(t, "Changed", view.Record.FirstName)
	assert.Equal(t, entity.SectionViewing, view.Sections[entity.SectionPersonal])
}

func TestCancelEdit_RestoresConfirmedState(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(namedRecord("Alex"), testNow), nil)

	srv := newTestService(gw, c)

	_, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	_, err = srv.UpdateDraft(context.Background(), testPrincipal, entity.SectionPersonal, map[string]any{"firstName": "Changed"})
	require.NoError(t, err)

	view, err := srv.CancelEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	assert.Equal(t, "Alex", view.Record.FirstName)
	assert.Equal(t, entity.SectionViewing, view.Sections[entity.SectionPersonal])
	assert.Nil(t, view.Draft)
}

func TestCancelEdit_RejectedWhileSameSectionSaving(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(namedRecord("Alex"), testNow), nil)

	writeStarted := make(chan struct{})
	releaseWrite := make(chan struct{})
	gw.EXPECT().
		WriteProfile(mock.Anything, "p1", "tok", mock.Anything).
		Run(func(context.Context, string, string, *entity.ProfileRecord) {
			close(writeStarted)
			<-releaseWrite
		}).
		Return(nil).
		Once()
	gw.EXPECT().FetchProfile(mock.Anything, "p1", "tok").Return(namedRecord("Alex"), nil).Once()

	srv := newTestService(gw, c)

	_, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)

	saveDone := make(chan error, 1)
	go func() {
		_, err := srv.SaveSection(context.Background(), testPrincipal, entity.SectionPersonal)
		saveDone <- err
	}()
	<-writeStarted

	_, err = srv.CancelEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	assert.ErrorIs(t, err, domainerrors.ErrCancelDuringSave)

	close(releaseWrite)
	require.NoError(t, <-saveDone)
}

func TestCancelEdit_NotEditingRejected(t *testing.T) {
	srv := newTestService(mockservice.NewProfileGateway(t), mockrepository.NewProfileCache(t))

	_, err := srv.CancelEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	assert.ErrorIs(t, err, domainerrors.ErrSectionNotEditing)
}

func TestCancelEdit_NoConfirmedStateStaysEditing(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)

	// The record arrives through the first fetch; afterwards both the cache
	// and the upstream are unavailable.
	c.EXPECT().Read(mock.Anything, "p1").Return(nil, repository.ErrCacheMiss)
	gw.EXPECT().FetchProfile(mock.Anything, "p1", "tok").Return(namedRecord("Alex"), nil).Once()

	srv := newTestService(gw, c)

	_, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	_, err = srv.UpdateDraft(context.Background(), testPrincipal, entity.SectionPersonal, map[string]any{"firstName": "Changed"})
	require.NoError(t, err)

	gw.EXPECT().FetchProfile(mock.Anything, "p1", "tok").Return(nil, errors.New("upstream down")).Once()

	view, err := srv.CancelEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	assert.Equal(t, entity.SectionEditing, view.Sections[entity.SectionPersonal])
	assert.Equal(t, "Changed", view.Draft.FirstName)
}

func TestRefresh_FetchesAndReplacesRecord(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)

	gw.EXPECT().FetchProfile(mock.Anything, "p1", "tok").Return(namedRecord("Fresh"), nil).Once()

	srv := newTestService(gw, c)

	view, err := srv.Refresh(context.Background(), testPrincipal)
	require.NoError(t, err)
	assert.Equal(t, "Fresh", view.Record.FirstName)
}

func TestRefresh_ResultDroppedWhenEditStartsMidFlight(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(namedRecord("Alex"), testNow), nil)

	fetchStarted := make(chan struct{})
	releaseFetch := make(chan struct{})
	gw.EXPECT().
		FetchProfile(mock.Anything, "p1", "tok").
		Run(func(context.Context, string, string) {
			close(fetchStarted)
			<-releaseFetch
		}).
		Return(namedRecord("Refreshed"), nil).
		Once()

	srv := newTestService(gw, c)

	_, err := srv.LoadProfile(context.Background(), testPrincipal)
	require.NoError(t, err)

	refreshDone := make(chan error, 1)
	go func() {
		_, err := srv.Refresh(context.Background(), testPrincipal)
		refreshDone <- err
	}()
	<-fetchStarted

	// The user starts editing while the refresh fetch is in flight.
	_, err = srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	close(releaseFetch)
	require.NoError(t, <-refreshDone)

	// The late result is dropped: the edit session keeps its base record.
	st := srv.editor("p1")
	st.mu.Lock()
	defer st.mu.Unlock()
	assert.Equal(t, "Alex", st.record.FirstName)
	assert.Equal(t, entity.SectionEditing, st.sections[entity.SectionPersonal])
}

func TestRefresh_DroppedWhileEditing(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(namedRecord("Alex"), testNow), nil)

	srv := newTestService(gw, c)

	_, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)

	view, err := srv.Refresh(context.Background(), testPrincipal)
	require.NoError(t, err)
	assert.Equal(t, "Alex", view.Record.FirstName)
	gw.AssertNotCalled(t, "FetchProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditor_IdleEntriesEvicted(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(namedRecord("Alex"), testNow), nil)

	srv := newTestService(gw, c)
	now := testNow
	srv.clock = func() time.Time { return now }

	_, err := srv.LoadProfile(context.Background(), testPrincipal)
	require.NoError(t, err)

	// Untouched past the idle window: the next access sweeps the entry out.
	now = now.Add(editorIdleWindow + time.Minute)
	srv.editor("p2")

	srv.mu.Lock()
	_, kept := srv.editors["p1"]
	srv.mu.Unlock()
	assert.False(t, kept)
}

func TestEditor_EditingEntriesSurviveIdleSweep(t *testing.T) {
	gw := mockservice.NewProfileGateway(t)
	c := mockrepository.NewProfileCache(t)
	c.EXPECT().Read(mock.Anything, "p1").Return(snapshotAt(namedRecord("Alex"), testNow), nil)

	srv := newTestService(gw, c)
	now := testNow
	srv.clock = func() time.Time { return now }

	_, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	_, err = srv.UpdateDraft(context.Background(), testPrincipal, entity.SectionPersonal, map[string]any{"firstName": "Changed"})
	require.NoError(t, err)

	// A mid-edit entry is never evicted, no matter how long it sits.
	now = now.Add(editorIdleWindow + time.Minute)
	srv.editor("p2")

	view, err := srv.BeginEdit(context.Background(), testPrincipal, entity.SectionPersonal)
	require.NoError(t, err)
	assert.Equal(t, "Changed", view.Draft.FirstName)
}
