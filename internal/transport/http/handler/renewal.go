package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/gin-gonic/gin"
)

// renewalUsecaser is the subset of RenewalUsecase the handler needs.
type renewalUsecaser interface {
	Expiring(ctx context.Context, ownerID string, asOf time.Time, lookaheadDays int) ([]domain.ExpiringItem, error)
}

type RenewalHandler struct {
	uc     renewalUsecaser
	logger *slog.Logger
}

func NewRenewalHandler(uc renewalUsecaser, logger *slog.Logger) *RenewalHandler {
	return &RenewalHandler{uc: uc, logger: logger.With("component", "renewal_handler")}
}

type expiringItemResponse struct {
	SourceID    string            `json:"source_id"`
	Kind        domain.SourceKind `json:"kind"`
	DisplayName string            `json:"display_name"`
	ExpiryDate  string            `json:"expiry_date"`
	DaysLeft    int               `json:"days_left"`
	Tier        domain.Tier       `json:"tier"`
}

// GET /renewals?lookahead_days=30
// Returns the caller's expiring items inside the lookahead window, already
// classified. Expired items are included.
func (h *RenewalHandler) List(ctx *gin.Context) {
	lookahead, _ := strconv.Atoi(ctx.Query("lookahead_days"))

	items, err := h.uc.Expiring(ctx.Request.Context(), ctx.GetString("userID"), time.Now().UTC(), lookahead)
	if err != nil {
		h.logger.Error("list renewals", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	out := make([]expiringItemResponse, len(items))
	for i, item := range items {
		out[i] = expiringItemResponse{
			SourceID:    item.SourceID,
			Kind:        item.Kind,
			DisplayName: item.DisplayName,
			ExpiryDate:  item.ExpiryDate.Format(dateLayout),
			DaysLeft:    item.DaysLeft,
			Tier:        item.Tier,
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"renewals": out})
}
