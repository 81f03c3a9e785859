package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/usecase"
	"github.com/gin-gonic/gin"
)

type HostingHandler struct {
	uc     *usecase.HostingUsecase
	logger *slog.Logger
}

func NewHostingHandler(uc *usecase.HostingUsecase, logger *slog.Logger) *HostingHandler {
	return &HostingHandler{uc: uc, logger: logger.With("component", "hosting_handler")}
}

type hostingRequest struct {
	Name         string `json:"name"          binding:"required,max=256"`
	Provider     string `json:"provider"      binding:"max=256"`
	AccountEmail string `json:"account_email" binding:"omitempty,email"`
	URL          string `json:"url"           binding:"omitempty,url,max=2048"`
	RenewalDate  string `json:"renewal_date"  binding:"required,datetime=2006-01-02"`
	Notes        string `json:"notes"         binding:"max=4096"`
}

type hostingResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Provider     string    `json:"provider,omitempty"`
	AccountEmail string    `json:"account_email,omitempty"`
	URL          string    `json:"url,omitempty"`
	RenewalDate  string    `json:"renewal_date"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toHostingResponse(h *domain.HostingAccount) hostingResponse {
	return hostingResponse{
		ID:           h.ID,
		Name:         h.Name,
		Provider:     h.Provider,
		AccountEmail: h.AccountEmail,
		URL:          h.URL,
		RenewalDate:  h.RenewalDate.Format(dateLayout),
		Notes:        h.Notes,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
}

func (h *HostingHandler) input(ctx *gin.Context, req hostingRequest) usecase.HostingAccountInput {
	renewal, _ := time.Parse(dateLayout, req.RenewalDate)
	return usecase.HostingAccountInput{
		OwnerID:      ctx.GetString("userID"),
		Name:         req.Name,
		Provider:     req.Provider,
		AccountEmail: req.AccountEmail,
		URL:          req.URL,
		RenewalDate:  renewal,
		Notes:        req.Notes,
	}
}

func (h *HostingHandler) Create(ctx *gin.Context) {
	var req hostingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acc, err := h.uc.Create(ctx.Request.Context(), h.input(ctx, req))
	if err != nil {
		h.logger.Error("create hosting account", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusCreated, toHostingResponse(acc))
}

func (h *HostingHandler) List(ctx *gin.Context) {
	accounts, err := h.uc.List(ctx.Request.Context(), ctx.GetString("userID"))
	if err != nil {
		h.logger.Error("list hosting accounts", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]hostingResponse, len(accounts))
	for i, acc := range accounts {
		items[i] = toHostingResponse(acc)
	}
	ctx.JSON(http.StatusOK, gin.H{"hosting_accounts": items})
}

func (h *HostingHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	acc, err := h.uc.GetByID(ctx.Request.Context(), id, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrHostingAccountNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errHostingNotFound})
			return
		}
		h.logger.Error("get hosting account", "hosting_account_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, toHostingResponse(acc))
}

func (h *HostingHandler) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req hostingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acc, err := h.uc.Update(ctx.Request.Context(), id, h.input(ctx, req))
	if err != nil {
		if errors.Is(err, domain.ErrHostingAccountNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errHostingNotFound})
			return
		}
		h.logger.Error("update hosting account", "hosting_account_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, toHostingResponse(acc))
}

func (h *HostingHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	err := h.uc.Delete(ctx.Request.Context(), id, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrHostingAccountNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errHostingNotFound})
			return
		}
		h.logger.Error("delete hosting account", "hosting_account_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.Status(http.StatusNoContent)
}
