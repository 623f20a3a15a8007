package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cafe-admin/backend/config"
	"cafe-admin/backend/internal/api/handler"
	"cafe-admin/backend/internal/api/middleware"
)

// maxBodyBytes 请求体上限；logo 以 base64 随正文提交，预留足够余量
const maxBodyBytes = 8 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(corsMiddleware(cfg))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	{
		// 咖啡店模块
		cafes := api.Group("/cafes")
		{
			cafes.GET("", h.Cafe.ListCafes)
			cafes.GET("/:id", h.Cafe.GetCafe)
			cafes.POST("", h.Cafe.CreateCafe)
			cafes.PUT("/:id", h.Cafe.UpdateCafe)
			cafes.DELETE("/:id", h.Cafe.DeleteCafe)
		}

		// 员工模块
		employees := api.Group("/employees")
		{
			employees.GET("", h.Employee.ListEmployees)
			employees.GET("/:id", h.Employee.GetEmployee)
			employees.POST("", h.Employee.CreateEmployee)
			employees.PUT("/:id", h.Employee.UpdateEmployee)
			employees.DELETE("/:id", h.Employee.DeleteEmployee)
		}

		// 导出模块
		export := api.Group("/export")
		{
			export.GET("/cafes", h.Export.ExportCafes)
			export.GET("/employees", h.Export.ExportEmployees)
		}
	}

	// ── 管理界面静态页 ──
	// 未命中任何 API 路由的 GET 请求回退到单页管理界面
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.File("web/index.html")
			return
		}
		c.Status(http.StatusNotFound)
	})

	return r
}

// corsMiddleware 按配置构建跨域中间件
// 管理工具默认放行所有来源；收紧时在配置中列出允许的来源
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}

	if cfg.Server.CORS.AllowAll() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.CORS.AllowOrigins
	}

	return cors.New(corsCfg)
}
