// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"talenthub/internal/delivery/http/middleware"
	"talenthub/internal/delivery/http/response"
	"talenthub/internal/domain/entity"
	"talenthub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

func principalFrom(c echo.Context) (usecase.Principal, bool) {
	profileID, ok := c.Get(middleware.ContextProfileID).(string)
	if !ok || profileID == "" {
		return usecase.Principal{}, false
	}
	accessToken, _ := c.Get(middleware.ContextAccessToken).(string)

	return usecase.Principal{ProfileID: profileID, AccessToken: accessToken}, true
}

func sectionParam(c echo.Context) entity.SectionName {
	return entity.SectionName(c.Param("section"))
}

// GetProfile handles the request to render the profile with completion score.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	view, err := h.uc.LoadProfile(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Profile retrieved successfully")
}

// BeginEdit puts a section into edit mode and returns the working copy.
func (h *ProfileHandler) BeginEdit(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	view, err := h.uc.BeginEdit(c.Request().Context(), principal, sectionParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Section is now editable")
}

// UpdateDraft merges the submitted section form into the working copy. The
// body is accepted as-is; field names may use any known alias spelling.
func (h *ProfileHandler) UpdateDraft(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	var raw map[string]any
	if err := c.Bind(&raw); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid section payload")
	}

	view, err := h.uc.UpdateDraft(c.Request().Context(), principal, sectionParam(c), raw)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Draft updated")
}

// SaveSection persists the working copy and returns the server-confirmed state.
func (h *ProfileHandler) SaveSection(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	view, err := h.uc.SaveSection(c.Request().Context(), principal, sectionParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Section saved successfully")
}

// CancelEdit discards the working copy and restores the last confirmed state.
func (h *ProfileHandler) CancelEdit(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	view, err := h.uc.CancelEdit(c.Request().Context(), principal, sectionParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Edit cancelled")
}

// RefreshProfile handles the foreground-visibility refetch hook.
func (h *ProfileHandler) RefreshProfile(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	view, err := h.uc.Refresh(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Profile refreshed")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
