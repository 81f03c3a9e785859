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

type DeveloperAccountHandler struct {
	uc     *usecase.DeveloperAccountUsecase
	logger *slog.Logger
}

func NewDeveloperAccountHandler(uc *usecase.DeveloperAccountUsecase, logger *slog.Logger) *DeveloperAccountHandler {
	return &DeveloperAccountHandler{uc: uc, logger: logger.With("component", "developer_account_handler")}
}

type devAccountRequest struct {
	Provider     string `json:"provider"      binding:"required,max=256"`
	AccountEmail string `json:"account_email" binding:"required,email"`
	URL          string `json:"url"           binding:"omitempty,url,max=2048"`
	RenewalDate  string `json:"renewal_date"  binding:"required,datetime=2006-01-02"`
	Notes        string `json:"notes"         binding:"max=4096"`
}

type devAccountResponse struct {
	ID           string    `json:"id"`
	Provider     string    `json:"provider"`
	AccountEmail string    `json:"account_email"`
	URL          string    `json:"url,omitempty"`
	RenewalDate  string    `json:"renewal_date"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toDevAccountResponse(d *domain.DeveloperAccount) devAccountResponse {
	return devAccountResponse{
		ID:           d.ID,
		Provider:     d.Provider,
		AccountEmail: d.AccountEmail,
		URL:          d.URL,
		RenewalDate:  d.RenewalDate.Format(dateLayout),
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (h *DeveloperAccountHandler) input(ctx *gin.Context, req devAccountRequest) usecase.DeveloperAccountInput {
	renewal, _ := time.Parse(dateLayout, req.RenewalDate)
	return usecase.DeveloperAccountInput{
		OwnerID:      ctx.GetString("userID"),
		Provider:     req.Provider,
		AccountEmail: req.AccountEmail,
		URL:          req.URL,
		RenewalDate:  renewal,
		Notes:        req.Notes,
	}
}

func (h *DeveloperAccountHandler) Create(ctx *gin.Context) {
	var req devAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.uc.Create(ctx.Request.Context(), h.input(ctx, req))
	if err != nil {
		h.logger.Error("create developer account", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusCreated, toDevAccountResponse(d))
}

func (h *DeveloperAccountHandler) List(ctx *gin.Context) {
	accounts, err := h.uc.List(ctx.Request.Context(), ctx.GetString("userID"))
	if err != nil {
		h.logger.Error("list developer accounts", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]devAccountResponse, len(accounts))
	for i, d := range accounts {
		items[i] = toDevAccountResponse(d)
	}
	ctx.JSON(http.StatusOK, gin.H{"developer_accounts": items})
}

func (h *DeveloperAccountHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	d, err := h.uc.GetByID(ctx.Request.Context(), id, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrDeveloperAccountNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errDevAccountNotFound})
			return
		}
		h.logger.Error("get developer account", "developer_account_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, toDevAccountResponse(d))
}

func (h *DeveloperAccountHandler) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req devAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.uc.Update(ctx.Request.Context(), id, h.input(ctx, req))
	if err != nil {
		if errors.Is(err, domain.ErrDeveloperAccountNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errDevAccountNotFound})
			return
		}
		h.logger.Error("update developer account", "developer_account_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, toDevAccountResponse(d))
}

func (h *DeveloperAccountHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	err := h.uc.Delete(ctx.Request.Context(), id, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrDeveloperAccountNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errDevAccountNotFound})
			return
		}
		h.logger.Error("delete developer account", "developer_account_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.Status(http.StatusNoContent)
}
