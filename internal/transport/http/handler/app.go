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

type MobileAppHandler struct {
	uc     *usecase.MobileAppUsecase
	logger *slog.Logger
}

func NewMobileAppHandler(uc *usecase.MobileAppUsecase, logger *slog.Logger) *MobileAppHandler {
	return &MobileAppHandler{uc: uc, logger: logger.With("component", "mobile_app_handler")}
}

type mobileAppRequest struct {
	ClientID           *string         `json:"client_id"`
	Name               string          `json:"name"         binding:"required,max=256"`
	Platform           domain.Platform `json:"platform"     binding:"required,oneof=ios android"`
	StoreURL           string          `json:"store_url"    binding:"omitempty,url,max=2048"`
	DeveloperAccountID *string         `json:"developer_account_id"`
	RenewalDate        string          `json:"renewal_date" binding:"required,datetime=2006-01-02"`
	Notes              string          `json:"notes"        binding:"max=4096"`
}

type mobileAppResponse struct {
	ID                 string          `json:"id"`
	ClientID           *string         `json:"client_id,omitempty"`
	Name               string          `json:"name"`
	Platform           domain.Platform `json:"platform"`
	StoreURL           string          `json:"store_url,omitempty"`
	DeveloperAccountID *string         `json:"developer_account_id,omitempty"`
	RenewalDate        string          `json:"renewal_date"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func toMobileAppResponse(a *domain.MobileApp) mobileAppResponse {
	return mobileAppResponse{
		ID:                 a.ID,
		ClientID:           a.ClientID,
		Name:               a.Name,
		Platform:           a.Platform,
		StoreURL:           a.StoreURL,
		DeveloperAccountID: a.DeveloperAccountID,
		RenewalDate:        a.RenewalDate.Format(dateLayout),
		Notes:              a.Notes,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func (h *MobileAppHandler) input(ctx *gin.Context, req mobileAppRequest) usecase.MobileAppInput {
	renewal, _ := time.Parse(dateLayout, req.RenewalDate)
	return usecase.MobileAppInput{
		OwnerID:            ctx.GetString("userID"),
		ClientID:           req.ClientID,
		Name:               req.Name,
		Platform:           req.Platform,
		StoreURL:           req.StoreURL,
		DeveloperAccountID: req.DeveloperAccountID,
		RenewalDate:        renewal,
		Notes:              req.Notes,
	}
}

func (h *MobileAppHandler) Create(ctx *gin.Context) {
	var req mobileAppRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.uc.Create(ctx.Request.Context(), h.input(ctx, req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPlatform):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errInvalidPlatform})
		case errors.Is(err, domain.ErrDeveloperAccountNotFound):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errBadDevAccountRef})
		default:
			h.logger.Error("create mobile app", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	ctx.JSON(http.StatusCreated, toMobileAppResponse(a))
}

func (h *MobileAppHandler) List(ctx *gin.Context) {
	apps, err := h.uc.List(ctx.Request.Context(), ctx.GetString("userID"))
	if err != nil {
		h.logger.Error("list mobile apps", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]mobileAppResponse, len(apps))
	for i, a := range apps {
		items[i] = toMobileAppResponse(a)
	}
	ctx.JSON(http.StatusOK, gin.H{"mobile_apps": items})
}

func (h *MobileAppHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	a, err := h.uc.GetByID(ctx.Request.Context(), id, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrMobileAppNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errMobileAppNotFound})
			return
		}
		h.logger.Error("get mobile app", "mobile_app_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, toMobileAppResponse(a))
}

func (h *MobileAppHandler) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req mobileAppRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.uc.Update(ctx.Request.Context(), id, h.input(ctx, req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMobileAppNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": errMobileAppNotFound})
		case errors.Is(err, domain.ErrInvalidPlatform):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errInvalidPlatform})
		case errors.Is(err, domain.ErrDeveloperAccountNotFound):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errBadDevAccountRef})
		default:
			h.logger.Error("update mobile app", "mobile_app_id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	ctx.JSON(http.StatusOK, toMobileAppResponse(a))
}

func (h *MobileAppHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	err := h.uc.Delete(ctx.Request.Context(), id, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrMobileAppNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errMobileAppNotFound})
			return
		}
		h.logger.Error("delete mobile app", "mobile_app_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.Status(http.StatusNoContent)
}
