package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/usecase"
	"github.com/gin-gonic/gin"
)

// settingsUsecaser is the subset of SettingsUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type settingsUsecaser interface {
	GetOrCreate(ctx context.Context, ownerID string) (*domain.ReminderSettings, error)
	Update(ctx context.Context, input usecase.UpdateSettingsInput) (*domain.ReminderSettings, error)
}

type SettingsHandler struct {
	uc     settingsUsecaser
	logger *slog.Logger
}

func NewSettingsHandler(uc settingsUsecaser, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{uc: uc, logger: logger.With("component", "settings_handler")}
}

type settingsResponse struct {
	EmailEnabled bool `json:"email_enabled"`
	OneMonth     bool `json:"one_month"`
	TwoWeeks     bool `json:"two_weeks"`
	ThreeDays    bool `json:"three_days"`
	OnExpiryDay  bool `json:"on_expiry_day"`
}

func toSettingsResponse(s *domain.ReminderSettings) settingsResponse {
	return settingsResponse{
		EmailEnabled: s.EmailEnabled,
		OneMonth:     s.OneMonth,
		TwoWeeks:     s.TwoWeeks,
		ThreeDays:    s.ThreeDays,
		OnExpiryDay:  s.OnExpiryDay,
	}
}

// GET /settings/reminders
// First call for an owner creates the default row (everything enabled).
func (h *SettingsHandler) Get(ctx *gin.Context) {
	s, err := h.uc.GetOrCreate(ctx.Request.Context(), ctx.GetString("userID"))
	if err != nil {
		h.logger.Error("get reminder settings", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, toSettingsResponse(s))
}

type updateSettingsRequest struct {
	EmailEnabled *bool `json:"email_enabled" binding:"required"`
	OneMonth     *bool `json:"one_month"     binding:"required"`
	TwoWeeks     *bool `json:"two_weeks"     binding:"required"`
	ThreeDays    *bool `json:"three_days"    binding:"required"`
	OnExpiryDay  *bool `json:"on_expiry_day" binding:"required"`
}

// PUT /settings/reminders
// Pointers so that an explicit false is distinguishable from a missing field.
func (h *SettingsHandler) Update(ctx *gin.Context) {
	var req updateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.uc.Update(ctx.Request.Context(), usecase.UpdateSettingsInput{
		OwnerID:      ctx.GetString("userID"),
		EmailEnabled: *req.EmailEnabled,
		OneMonth:     *req.OneMonth,
		TwoWeeks:     *req.TwoWeeks,
		ThreeDays:    *req.ThreeDays,
		OnExpiryDay:  *req.OnExpiryDay,
	})
	if err != nil {
		h.logger.Error("update reminder settings", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, toSettingsResponse(s))
}
