package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tramibot/cmd/api/handlers"
	"tramibot/cmd/api/middleware"
	"tramibot/cmd/api/services"
	_ "tramibot/docs"
	"tramibot/trace"
)

type Deps struct {
	Updates  *services.UpdateService
	Guidance *services.GuidanceService
	// Backends 는 /health 에 노출할 활성 분석 백엔드 이름이다.
	Backends []string
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	r.GET("/health", handlers.HealthHandler(deps.Backends))

	// swagger: /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/updates/scan", handlers.ScanUpdatesHandler(deps.Updates))
		api.POST("/updates/actions", handlers.RecommendedActionsHandler(deps.Guidance))

		api.GET("/procedures", handlers.ListProceduresHandler(deps.Guidance))
		api.POST("/procedures/guide", handlers.ProcedureGuideHandler(deps.Guidance))
		api.POST("/procedures/impact", handlers.ProcedureImpactHandler(deps.Guidance))

		api.GET("/predictions", handlers.PredictionsHandler(deps.Guidance))
	}

	return r
}

// WithCORS 는 허용된 origin 에 대해 CORS 헤더를 붙인다.
func WithCORS(h http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", trace.HeaderRequestID},
		ExposedHeaders: []string{trace.HeaderRequestID, trace.HeaderSpanID},
	})
	return c.Handler(h)
}
