package httptransport

import (
	"log/slog"

	"github.com/agencydesk/agencydesk/internal/transport/http/handler"
	"github.com/agencydesk/agencydesk/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

type Handlers struct {
	Auth       *handler.AuthHandler
	Client     *handler.ClientHandler
	Site       *handler.SiteHandler
	Hosting    *handler.HostingHandler
	MobileApp  *handler.MobileAppHandler
	DevAccount *handler.DeveloperAccountHandler
	Settings   *handler.SettingsHandler
	Renewal    *handler.RenewalHandler
}

func NewRouter(logger *slog.Logger, h Handlers, jwtKey []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	// Public auth routes
	r.POST("/auth/magic-link", h.Auth.RequestMagicLink)
	r.GET("/auth/verify", h.Auth.Verify)

	authMW := middleware.Auth(jwtKey)

	crud := func(path string, create, list, get, update, del gin.HandlerFunc) {
		g := r.Group(path, authMW)
		g.POST("", create)
		g.GET("", list)
		g.GET("/:id", get)
		g.PUT("/:id", update)
		g.DELETE("/:id", del)
	}

	crud("/clients", h.Client.Create, h.Client.List, h.Client.GetByID, h.Client.Update, h.Client.Delete)
	crud("/sites", h.Site.Create, h.Site.List, h.Site.GetByID, h.Site.Update, h.Site.Delete)
	crud("/hosting-accounts", h.Hosting.Create, h.Hosting.List, h.Hosting.GetByID, h.Hosting.Update, h.Hosting.Delete)
	crud("/mobile-apps", h.MobileApp.Create, h.MobileApp.List, h.MobileApp.GetByID, h.MobileApp.Update, h.MobileApp.Delete)
	crud("/developer-accounts", h.DevAccount.Create, h.DevAccount.List, h.DevAccount.GetByID, h.DevAccount.Update, h.DevAccount.Delete)

	// Renewal monitor surface
	r.GET("/renewals", authMW, h.Renewal.List)
	r.GET("/settings/reminders", authMW, h.Settings.Get)
	r.PUT("/settings/reminders", authMW, h.Settings.Update)

	return r
}
