package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talenthub/internal/domain/entity"
	domainerrors "talenthub/internal/domain/errors"
	"talenthub/internal/domain/repository"
	mockrepository "talenthub/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGateway(baseURL string, cache repository.ProfileCache) *HTTPGateway {
	return &HTTPGateway{
		client:  &http.Client{Timeout: time.Second},
		baseURL: baseURL,
		cache:   cache,
		logger:  newDiscardLogger(),
		clock:   func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) },
	}
}

func TestFetchProfile_NormalizesAliasesAndFillsCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/profiles/p1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"first_name":"Alex","phoneNumber":"0555","skillsList":"Go, SQL"}`)
	}))
	defer srv.Close()

	cacheMock := mockrepository.NewProfileCache(t)
	cacheMock.EXPECT().
		Write(mock.Anything, "p1", mock.MatchedBy(func(snap *repository.ProfileSnapshot) bool {
			return snap.Valid() && snap.Record.Phone == "0555"
		})).
		Return(nil).
		Once()

	g := newTestGateway(srv.URL, cacheMock)

	rec, err := g.FetchProfile(context.Background(), "p1", "tok")
	require.NoError(t, err)
	assert.Equal(t, "Alex", rec.FirstName)
	assert.Equal(t, "0555", rec.Phone)
	assert.Equal(t, []string{"Go", "SQL"}, rec.Skills)
}

func TestFetchProfile_CacheWriteFailureDoesNotFailFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"firstName":"Alex"}`)
	}))
	defer srv.Close()

	cacheMock := mockrepository.NewProfileCache(t)
	cacheMock.EXPECT().
		Write(mock.Anything, "p1", mock.Anything).
		Return(errors.New("cache down")).
		Once()

	g := newTestGateway(srv.URL, cacheMock)

	rec, err := g.FetchProfile(context.Background(), "p1", "tok")
	require.NoError(t, err)
	assert.Equal(t, "Alex", rec.FirstName)
}

func TestFetchProfile_UpstreamErrorSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"profile service unavailable"}`)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, mockrepository.NewProfileCache(t))

	_, err := g.FetchProfile(context.Background(), "p1", "tok")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProfileFetchFailed.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "profile service unavailable", appErr.Details())
}

func TestFetchProfile_MalformedBodyFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `not json`)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, mockrepository.NewProfileCache(t))

	_, err := g.FetchProfile(context.Background(), "p1", "tok")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProfileFetchFailed.ErrorCode(), appErr.ErrorCode())
}

func TestWriteProfile_FansOutAliasesAndInvalidates(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/profiles/p1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	invalidated := false
	cacheMock := mockrepository.NewProfileCache(t)
	cacheMock.EXPECT().
		Invalidate(mock.Anything, "p1").
		Run(func(context.Context, string) { invalidated = true }).
		Return(nil).
		Once()

	g := newTestGateway(srv.URL, cacheMock)

	rec := entity.NewProfileRecord()
	rec.Phone = "0555"

	require.NoError(t, g.WriteProfile(context.Background(), "p1", "tok", rec))

	// Every alias spelling carries the same value on the wire.
	assert.Equal(t, "0555", body["phone"])
	assert.Equal(t, "0555", body["phoneNumber"])
	assert.Equal(t, "0555", body["mobile"])

	// Invalidation happens before WriteProfile returns.
	assert.True(t, invalidated)
}

func TestWriteProfile_UpstreamErrorKeepsCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"validation failed upstream"}`)
	}))
	defer srv.Close()

	// No Invalidate expectation: a failed write must leave the cache alone.
	cacheMock := mockrepository.NewProfileCache(t)

	g := newTestGateway(srv.URL, cacheMock)

	err := g.WriteProfile(context.Background(), "p1", "tok", entity.NewProfileRecord())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProfileWriteFailed.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "validation failed upstream", appErr.Details())
}
