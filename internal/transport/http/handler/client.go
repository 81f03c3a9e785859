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

type ClientHandler struct {
	uc     *usecase.ClientUsecase
	logger *slog.Logger
}

func NewClientHandler(uc *usecase.ClientUsecase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, logger: logger.With("component", "client_handler")}
}

type clientRequest struct {
	Name    string `json:"name"    binding:"required,max=256"`
	Company string `json:"company" binding:"max=256"`
	Email   string `json:"email"   binding:"omitempty,email"`
	Phone   string `json:"phone"   binding:"max=64"`
	Notes   string `json:"notes"   binding:"max=4096"`
}

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (h *ClientHandler) input(ctx *gin.Context, req clientRequest) usecase.ClientInput {
	return usecase.ClientInput{
		OwnerID: ctx.GetString("userID"),
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Notes:   req.Notes,
	}
}

func (h *ClientHandler) Create(ctx *gin.Context) {
	var req clientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c, err := h.uc.Create(ctx.Request.Context(), h.input(ctx, req))
	if err != nil {
		h.logger.Error("create client", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusCreated, toClientResponse(c))
}

func (h *ClientHandler) List(ctx *gin.Context) {
	clients, err := h.uc.List(ctx.Request.Context(), ctx.GetString("userID"))
	if err != nil {
		h.logger.Error("list clients", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]clientResponse, len(clients))
	for i, c := range clients {
		items[i] = toClientResponse(c)
	}
	ctx.JSON(http.StatusOK, gin.H{"clients": items})
}

func (h *ClientHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	c, err := h.uc.GetByID(ctx.Request.Context(), id, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errClientNotFound})
			return
		}
		h.logger.Error("get client", "client_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, toClientResponse(c))
}

func (h *ClientHandler) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req clientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c, err := h.uc.Update(ctx.Request.Context(), id, h.input(ctx, req))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errClientNotFound})
			return
		}
		h.logger.Error("update client", "client_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, toClientResponse(c))
}

func (h *ClientHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	err := h.uc.Delete(ctx.Request.Context(), id, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errClientNotFound})
			return
		}
		h.logger.Error("delete client", "client_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.Status(http.StatusNoContent)
}
