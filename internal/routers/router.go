package routers

import (
	"time"

	"github.com/haierkeys/quicknote/internal/app"
	"github.com/haierkeys/quicknote/internal/middleware"
	"github.com/haierkeys/quicknote/internal/routers/api_router"
	"github.com/haierkeys/quicknote/pkg/limiter"
	"github.com/haierkeys/quicknote/pkg/util"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/prometheus/client_golang/prometheus"
)

// newMethodLimiter 写接口限流规则
func newMethodLimiter(cfg *app.AppConfig) limiter.Face {
	rl := cfg.Server.RateLimit
	interval := util.MustParseDuration(rl.FillInterval, time.Second)
	return limiter.NewMethodLimiter().AddBuckets(
		limiter.BucketRule{
			Key:          "POST /notes",
			FillInterval: interval,
			Capacity:     rl.Capacity,
			Quantum:      rl.Quantum,
		},
		limiter.BucketRule{
			Key:          "DELETE /notes/:id",
			FillInterval: interval,
			Capacity:     rl.Capacity,
			Quantum:      rl.Quantum,
		},
	)
}

// NewRouter 笔记服务路由
// GET /notes, POST /notes, DELETE /notes/:id, GET /health, GET /version
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator, reg prometheus.Registerer) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()
	lg := appContainer.Logger()

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	metrics := middleware.NewMetrics(reg)

	r := gin.New()
	r.Use(middleware.AppInfo(app.Name, appContainer.Version().Version))
	r.Use(middleware.TraceMiddleware(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
	r.Use(middleware.ContextTimeout(cfg.GetContextTimeout()))
	r.Use(middleware.Cors(cfg.App.CorsAllowOrigin))
	r.Use(middleware.LangWithTranslator(uni))
	r.Use(middleware.AccessLogWithLogger(lg))
	r.Use(metrics.Handler())
	r.Use(middleware.RecoveryWithLogger(lg))

	// 创建 Handlers（注入 App Container）
	noteHandler := api_router.NewNoteHandler(appContainer)
	healthHandler := api_router.NewHealthHandler(appContainer)

	r.GET("/health", healthHandler.Check)
	r.GET("/version", healthHandler.Version)

	notes := r.Group("/notes")
	{
		notes.GET("", noteHandler.List)
		notes.Use(middleware.RateLimiter(newMethodLimiter(cfg), lg))
		notes.POST("", noteHandler.Create)
		notes.DELETE("/:id", noteHandler.Delete)
	}

	r.NoRoute(middleware.NoFound())

	return r
}
