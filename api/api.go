package api

import (
	"fmt"
	"investordash/internal/app"
	"investordash/internal/domain"
	"investordash/internal/logger"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	OverviewApp app.OverviewApp
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())
	engine.Use(m.logRequestMiddleware)

	engine.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to the investor dashboard"})
	})
	engine.GET("/overview", m.getOverview)
	engine.GET("/api/overview", m.getOverview)

	return engine
}

func (m ApiHandler) StartApi(port int) error {
	engine := m.InitializeRouterEngine()
	return engine.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.New().String()
	lg := logger.FromContext(ctx).With(
		"requestID", requestID,
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	)
	ctx.Set("requestID", requestID)
	ctx.Set(logger.ContextKey, lg)

	profile, endProfile := domain.NewProfile()
	ctx.Set(domain.ContextProfileKey, profile)

	start := time.Now().UTC()
	ctx.Next()
	endProfile()

	lg.Infow(
		"request completed",
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"spans", profile.Spans,
	)
}
