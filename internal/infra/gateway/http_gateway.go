// Package gateway implements the upstream Profile API client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"talenthub/config"
	"talenthub/internal/domain/alias"
	"talenthub/internal/domain/entity"
	domainerrors "talenthub/internal/domain/errors"
	"talenthub/internal/domain/repository"
	"talenthub/internal/domain/service"

	"github.com/pkg/errors"
)

// HTTPGateway talks to the upstream Profile API over HTTP. Reads pass through
// the alias resolver so the rest of the system only ever sees canonical field
// names; writes fan the canonical record back out to every known alias so no
// upstream consumer observes a partial update.
type HTTPGateway struct {
	client  *http.Client
	baseURL string
	cache   repository.ProfileCache
	logger  *slog.Logger
	clock   func() time.Time
}

// NewHTTPGateway creates the Profile API client. The cache is filled on every
// successful fetch and invalidated after every successful write.
func NewHTTPGateway(cfg *config.ProfileAPIConfig, cache repository.ProfileCache, logger *slog.Logger) service.ProfileGateway {
	return &HTTPGateway{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		cache:   cache,
		logger:  logger,
		clock:   time.Now,
	}
}

// FetchProfile loads the raw upstream payload, normalizes it into the
// canonical record, and refreshes the snapshot cache.
func (g *HTTPGateway) FetchProfile(ctx context.Context, profileID, accessToken string) (*entity.ProfileRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.profileURL(profileID), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build profile fetch request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, domainerrors.ErrProfileFetchFailed.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read profile fetch response")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domainerrors.ErrProfileFetchFailed.WithDetails(upstreamMessage(resp.StatusCode, body))
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, domainerrors.ErrProfileFetchFailed.WithDetails("upstream returned malformed JSON")
	}

	rec := alias.Normalize(raw)

	snap := &repository.ProfileSnapshot{Record: rec, FetchedAt: g.clock()}
	if err := g.cache.Write(ctx, profileID, snap); err != nil {
		// Cache failures never break a successful fetch.
		g.logger.Warn("Profile snapshot cache write failed", "profileID", profileID, "error", err)
	}

	return rec, nil
}

// WriteProfile fans the record out to all alias spellings and sends it
// upstream. The snapshot cache is invalidated before returning so the next
// read cannot observe pre-write state as current.
func (g *HTTPGateway) WriteProfile(ctx context.Context, profileID, accessToken string, rec *entity.ProfileRecord) error {
	payload, err := json.Marshal(alias.Denormalize(rec))
	if err != nil {
		return errors.Wrap(err, "marshal profile write payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, g.profileURL(profileID), bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build profile write request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.client.Do(req)
	if err != nil {
		return domainerrors.ErrProfileWriteFailed.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read profile write response")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domainerrors.ErrProfileWriteFailed.WithDetails(upstreamMessage(resp.StatusCode, body))
	}

	if err := g.cache.Invalidate(ctx, profileID); err != nil {
		g.logger.Warn("Profile snapshot cache invalidate failed", "profileID", profileID, "error", err)
	}

	return nil
}

func (g *HTTPGateway) profileURL(profileID string) string {
	return g.baseURL + "/profiles/" + profileID
}

// upstreamMessage extracts the upstream error message from a failed response
// body, falling back to the HTTP status text.
func upstreamMessage(statusCode int, body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}

	return http.StatusText(statusCode)
}
