package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pantryshare/internal/handler/api"
	"pantryshare/internal/handler/middleware"
	"pantryshare/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	inventoryHandler *api.InventoryHandler,
	offerHandler *api.OfferHandler,
	notificationHandler *api.NotificationHandler,
	householdHandler *api.HouseholdHandler,
	productHandler *api.ProductHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, inventoryHandler, offerHandler, notificationHandler, householdHandler, productHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	inventoryHandler *api.InventoryHandler,
	offerHandler *api.OfferHandler,
	notificationHandler *api.NotificationHandler,
	householdHandler *api.HouseholdHandler,
	productHandler *api.ProductHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// The share board is readable without a token; everything else under
		// /share-offers mutates state and requires auth.
		offers := apiGroup.Group("/share-offers")
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "", Handler: offerHandler.ListOffers},
			})

			authRequired := offers.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: offerHandler.CreateOffer},
				{Method: http.MethodPost, Path: "/claim", Handler: offerHandler.ClaimOffer},
			})
		}

		items := apiGroup.Group("/items")
		items.Use(authMiddleware.RequireAuth())
		{
			addRoutes(items, []route{
				{Method: http.MethodPost, Path: "", Handler: inventoryHandler.IngestItems},
				{Method: http.MethodGet, Path: "", Handler: inventoryHandler.ListItems},
				{Method: http.MethodGet, Path: "/soon-expiring", Handler: inventoryHandler.SoonExpiring},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodPost, Path: "", Handler: notificationHandler.CreateNotification},
				{Method: http.MethodGet, Path: "/feed", Handler: notificationHandler.Feed},
				{Method: http.MethodPost, Path: "/mark-seen", Handler: notificationHandler.MarkSeen},
			})
		}

		households := apiGroup.Group("/households")
		households.Use(authMiddleware.RequireAuth())
		{
			addRoutes(households, []route{
				{Method: http.MethodPost, Path: "", Handler: householdHandler.CreateHousehold},
				{Method: http.MethodGet, Path: "/current", Handler: householdHandler.CurrentHousehold},
			})
		}

		products := apiGroup.Group("/products")
		products.Use(authMiddleware.RequireAuth())
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "/search", Handler: productHandler.Search},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"status": "ok",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
