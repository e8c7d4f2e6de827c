package impl

import (
	"io"
	"log/slog"
	"time"

	"talenthub/config"
	"talenthub/internal/domain/entity"
	"talenthub/internal/domain/repository"
	mockrepository "talenthub/internal/mocks/repository"
	mockservice "talenthub/internal/mocks/service"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache = &config.CacheConfig{Backend: "memory", TTL: 5 * time.Minute}

	return cfg
}

// newTestService builds the editor service with a pinned clock.
func newTestService(gw *mockservice.ProfileGateway, c *mockrepository.ProfileCache) *profileEditorService {
	return &profileEditorService{
		gateway: gw,
		cache:   c,
		cfg:     newTestConfig(),
		logger:  newDiscardLogger(),
		clock:   func() time.Time { return testNow },
		editors: make(map[string]*editorState),
	}
}

func namedRecord(firstName string) *entity.ProfileRecord {
	rec := entity.NewProfileRecord()
	rec.FirstName = firstName

	return rec
}

func snapshotAt(rec *entity.ProfileRecord, fetchedAt time.Time) *repository.ProfileSnapshot {
	return &repository.ProfileSnapshot{Record: rec, FetchedAt: fetchedAt}
}
