package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	customerhandler "invoicing-dashboard/internal/customer/handler"
	identityhandler "invoicing-dashboard/internal/identity/handler"
	invoicehandler "invoicing-dashboard/internal/invoice/handler"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping() error
}

// Deps collects everything the HTTP surface needs wired in.
type Deps struct {
	Logger       *zap.Logger
	DB           Pinger
	Invoices     *invoicehandler.Handler
	Customers    *customerhandler.Handler
	Identity     *identityhandler.AuthHandler
	TraceEnabled bool
	ServiceName  string
	AppEnv       string
}

// New builds the gin engine and registers all routes.
func New(deps Deps) *gin.Engine {
	if deps.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(RequestLogger(deps.Logger))
	if deps.TraceEnabled {
		engine.Use(otelgin.Middleware(deps.ServiceName))
	}

	RegisterRoutes(engine, deps)
	return engine
}

// RegisterRoutes attaches all handlers onto the engine.
func RegisterRoutes(engine *gin.Engine, deps Deps) {
	engine.GET("/healthz", healthz(deps.DB))

	engine.POST("/login", deps.Identity.Login)

	engine.GET("/customers", deps.Customers.List)

	invoices := engine.Group("/dashboard/invoices")
	{
		invoices.GET("", deps.Invoices.List)
		invoices.POST("", deps.Invoices.Create)
		invoices.GET("/:id", deps.Invoices.Get)
		invoices.POST("/:id", deps.Invoices.Update)
		invoices.DELETE("/:id", deps.Invoices.Delete)
	}
}

func healthz(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			if err := db.Ping(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
