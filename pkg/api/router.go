package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/urmzd/wizmcp/pkg/api/handlers"
	"github.com/urmzd/wizmcp/pkg/db"
	"github.com/urmzd/wizmcp/pkg/wiz"
	"github.com/urmzd/wizmcp/pkg/wiz/schema"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine    *gin.Engine
	bulb      *wiz.Bulb
	validator *schema.Validator
	history   *db.DB
}

// NewRouter creates a new API router. history may be nil, in which case
// the history endpoint reports that no log is available.
func NewRouter(bulb *wiz.Bulb, validator *schema.Validator, history *db.DB) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:    engine,
		bulb:      bulb,
		validator: validator,
		history:   history,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/swagger/index.html")
	})

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.bulb)
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		// Health
		v1.GET("/health", healthHandler.Health)

		// Light control
		lightHandler := handlers.NewLightHandler(r.bulb, r.validator)
		light := v1.Group("/light")
		{
			light.GET("", lightHandler.GetStatus)
			light.GET("/info", lightHandler.GetInfo)
			light.POST("/power", lightHandler.SetPower)
			light.POST("/scene", lightHandler.SetScene)
			light.POST("/brightness", lightHandler.SetBrightness)
			light.POST("/pilot", lightHandler.SetPilot)
		}

		// Command history
		historyHandler := handlers.NewHistoryHandler(r.history)
		v1.GET("/history", historyHandler.List)
	}
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
