package httpserver

import (
	"context"
	"time"

	"creatim-shop/internal/domain"
	sessionsvc "creatim-shop/internal/service/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type sessionService interface {
	Start(ctx context.Context) (sessionsvc.Credentials, error)
	GetCart(ctx context.Context, sessionID, pwd string) (*domain.Cart, error)
	IsSubmitted(ctx context.Context, sessionID, pwd string) (bool, error)
	UpdateCart(ctx context.Context, sessionID, pwd, content string) error
	UpdatePhone(ctx context.Context, sessionID, pwd, phone string) error
}

type catalogService interface {
	Articles(ctx context.Context, term string) ([]domain.Article, error)
	ArticleByID(ctx context.Context, id int64) (*domain.Article, error)
	ArticlesByPriceRange(ctx context.Context, min, max int64) ([]domain.Article, error)
	Subscriptions(ctx context.Context, physical *bool) ([]domain.Subscription, error)
	SubscriptionByID(ctx context.Context, id int64) (*domain.Subscription, error)
	SubscriptionsByPriceRange(ctx context.Context, min, max int64) ([]domain.Subscription, error)
}

type orderService interface {
	Submit(ctx context.Context, sessionID, pwd, customerPhone string) (*domain.Order, error)
	History(ctx context.Context, sessionID, pwd string) ([]domain.Order, error)
}

type purchaseService interface {
	Get(ctx context.Context, sessionID, pwd string, phone *string) (*domain.PurchaseView, error)
}

type smsService interface {
	Store(ctx context.Context, customerPhone int64, content string) bool
}

// Deps carries the services the routes need.
type Deps struct {
	SessionSvc  sessionService
	CatalogSvc  catalogService
	OrderSvc    orderService
	PurchaseSvc purchaseService
	SMSSvc      smsService
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.SugaredLogger, db *pgxpool.Pool, deps Deps, allowOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Content-Type"}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/new-session", newSessionHandler(deps.SessionSvc))
		v1.GET("/cart", getCartHandler(deps.SessionSvc))
		v1.POST("/cart", updateCartHandler(deps.SessionSvc))
		v1.POST("/order", submitOrderHandler(deps.SessionSvc, deps.OrderSvc, deps.SMSSvc))
		v1.GET("/orders", listOrdersHandler(deps.OrderSvc))
		v1.GET("/purchases", purchasesHandler(deps.PurchaseSvc))
		v1.GET("/articles", listArticlesHandler(deps.CatalogSvc))
		v1.GET("/articles/:id", getArticleHandler(deps.CatalogSvc))
		v1.GET("/subscriptions", listSubscriptionsHandler(deps.CatalogSvc))
		v1.GET("/subscriptions/:id", getSubscriptionHandler(deps.CatalogSvc))
	}

	return router
}

func requestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
