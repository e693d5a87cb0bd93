package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/folio/internal/domain/contract"
	"github.com/mikiasgoitom/folio/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/folio/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	engagementHandler EngagementHandlerInterface
	healthHandler     *HealthHandler
	logger            usecasecontract.IAppLogger
	config            usecasecontract.IConfigProvider
	uuidGen           contract.IUUIDGenerator
}

func NewRouter(engagementUC usecasecontract.IEngagementUseCase, pageCache contract.IPageCache, pinger contract.IPinger, logger usecasecontract.IAppLogger, config usecasecontract.IConfigProvider, uuidGen contract.IUUIDGenerator) *Router {
	return &Router{
		engagementHandler: NewEngagementHandler(engagementUC, pageCache, logger),
		healthHandler:     NewHealthHandler(pinger),
		logger:            logger,
		config:            config,
		uuidGen:           uuidGen,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID(r.uuidGen))
	router.Use(middleware.RequestLogger(r.logger))

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origins := r.config.GetCORSAllowOrigins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", r.healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes, rate limited per client
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimiter(middleware.NewLimiter(r.config.GetRateLimitPerSecond())))

	posts := v1.Group("/posts/:slug")
	{
		posts.GET("/likes", r.engagementHandler.GetLikes)
		posts.POST("/likes", r.engagementHandler.AddLike)
		posts.DELETE("/likes", r.engagementHandler.RemoveLike)

		posts.GET("/comments", r.engagementHandler.GetComments)
		posts.POST("/comments", r.engagementHandler.CreateComment)

		// likes and comments in one cached payload for page hydration
		posts.GET("/engagement", r.engagementHandler.GetEngagement)
	}

	router.NoRoute(func(c *gin.Context) {
		MessageHandler(c, http.StatusNotFound, "Route not found")
	})
}
