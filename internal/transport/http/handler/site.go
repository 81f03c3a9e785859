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

type SiteHandler struct {
	uc     *usecase.SiteUsecase
	logger *slog.Logger
}

func NewSiteHandler(uc *usecase.SiteUsecase, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{uc: uc, logger: logger.With("component", "site_handler")}
}

type siteRequest struct {
	ClientID         *string `json:"client_id"`
	Domain           string  `json:"domain"             binding:"required,fqdn,max=256"`
	RegistrarURL     string  `json:"registrar_url"      binding:"omitempty,url,max=2048"`
	HostingAccountID *string `json:"hosting_account_id"`
	ExpiryDate       string  `json:"expiry_date"        binding:"required,datetime=2006-01-02"`
	Notes            string  `json:"notes"              binding:"max=4096"`
}

type siteResponse struct {
	ID               string    `json:"id"`
	ClientID         *string   `json:"client_id,omitempty"`
	Domain           string    `json:"domain"`
	RegistrarURL     string    `json:"registrar_url,omitempty"`
	HostingAccountID *string   `json:"hosting_account_id,omitempty"`
	HostName         string    `json:"host_name,omitempty"`
	ExpiryDate       string    `json:"expiry_date"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toSiteResponse(s *domain.Site) siteResponse {
	return siteResponse{
		ID:               s.ID,
		ClientID:         s.ClientID,
		Domain:           s.Domain,
		RegistrarURL:     s.RegistrarURL,
		HostingAccountID: s.HostingAccountID,
		HostName:         s.HostName,
		ExpiryDate:       s.ExpiryDate.Format(dateLayout),
		Notes:            s.Notes,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (h *SiteHandler) input(ctx *gin.Context, req siteRequest) usecase.SiteInput {
	expiry, _ := time.Parse(dateLayout, req.ExpiryDate) // validated by binding
	return usecase.SiteInput{
		OwnerID:          ctx.GetString("userID"),
		ClientID:         req.ClientID,
		Domain:           req.Domain,
		RegistrarURL:     req.RegistrarURL,
		HostingAccountID: req.HostingAccountID,
		ExpiryDate:       expiry,
		Notes:            req.Notes,
	}
}

func (h *SiteHandler) Create(ctx *gin.Context) {
	var req siteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.uc.Create(ctx.Request.Context(), h.input(ctx, req))
	if err != nil {
		if errors.Is(err, domain.ErrHostingAccountNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errBadHostingRef})
			return
		}
		h.logger.Error("create site", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusCreated, toSiteResponse(s))
}

func (h *SiteHandler) List(ctx *gin.Context) {
	sites, err := h.uc.List(ctx.Request.Context(), ctx.GetString("userID"))
	if err != nil {
		h.logger.Error("list sites", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]siteResponse, len(sites))
	for i, s := range sites {
		items[i] = toSiteResponse(s)
	}
	ctx.JSON(http.StatusOK, gin.H{"sites": items})
}

func (h *SiteHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := h.uc.GetByID(ctx.Request.Context(), id, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrSiteNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errSiteNotFound})
			return
		}
		h.logger.Error("get site", "site_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, toSiteResponse(s))
}

func (h *SiteHandler) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req siteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.uc.Update(ctx.Request.Context(), id, h.input(ctx, req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSiteNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": errSiteNotFound})
		case errors.Is(err, domain.ErrHostingAccountNotFound):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errBadHostingRef})
		default:
			h.logger.Error("update site", "site_id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	ctx.JSON(http.StatusOK, toSiteResponse(s))
}

func (h *SiteHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	err := h.uc.Delete(ctx.Request.Context(), id, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrSiteNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errSiteNotFound})
			return
		}
		h.logger.Error("delete site", "site_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.Status(http.StatusNoContent)
}
