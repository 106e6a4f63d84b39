package httpserver

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	accountsvc "github.com/Bhargavikambam/GreenBag/internal/service/account"
	ordersvc "github.com/Bhargavikambam/GreenBag/internal/service/order"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionHeader = "X-Session-Id"

type accountService interface {
	Register(ctx context.Context, in accountsvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, p domain.Profile) (*domain.Profile, error)
	AccessTTLSeconds() int
}

type productService interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	ListByCategoryName(ctx context.Context, name string) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

type cartService interface {
	Add(ctx context.Context, sessionID, productID string, quantity int) (domain.Cart, error)
	Adjust(ctx context.Context, sessionID, productID, action string) (domain.Cart, error)
	Remove(ctx context.Context, sessionID, productID string) (domain.Cart, error)
	View(ctx context.Context, sessionID string) (*domain.CartView, error)
}

type orderService interface {
	Checkout(ctx context.Context, userID, sessionID string, in ordersvc.CheckoutInput) (*domain.Order, *domain.Payment, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Order, error)
	GetForUser(ctx context.Context, userID, orderID string) (*domain.Order, error)
}

type paymentService interface {
	Get(ctx context.Context, userID, paymentID string) (*domain.Payment, error)
	Confirm(ctx context.Context, userID, paymentID, outcome, transactionID string) (*domain.Payment, error)
	Retry(ctx context.Context, userID, orderID string) (*domain.Payment, error)
}

type favoriteService interface {
	Toggle(ctx context.Context, userID, productID string) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Product, error)
}

// Deps bundles the services the router needs.
type Deps struct {
	AccountSvc     accountService
	ProductSvc     productService
	CartSvc        cartService
	OrderSvc       orderService
	PaymentSvc     paymentService
	FavoriteSvc    favoriteService
	AllowedOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = deps.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", sessionHeader)
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, sessionHeader)
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/signup", signupHandler(deps.AccountSvc))
	router.POST("/login", loginHandler(deps.AccountSvc))

	router.GET("/categories", categoriesHandler(deps.ProductSvc))
	router.GET("/products", productsHandler(deps.ProductSvc))
	router.GET("/products/:id", productDetailHandler(deps.ProductSvc))

	sessionRoutes := router.Group("/", sessionMiddleware())
	sessionRoutes.GET("/cart", cartViewHandler(deps.CartSvc))
	sessionRoutes.POST("/cart/items", cartAddHandler(deps.CartSvc))
	sessionRoutes.POST("/cart/items/:productId", cartAdjustHandler(deps.CartSvc))
	sessionRoutes.DELETE("/cart/items/:productId", cartRemoveHandler(deps.CartSvc))

	authRoutes := router.Group("/", authMiddleware(deps.AccountSvc))
	authRoutes.GET("/me", meHandler(deps.AccountSvc))
	authRoutes.PUT("/me/profile", profileUpdateHandler(deps.AccountSvc))
	authRoutes.GET("/orders", ordersHandler(deps.OrderSvc))
	authRoutes.GET("/orders/:id", orderDetailHandler(deps.OrderSvc))
	authRoutes.POST("/orders/:id/payments", paymentRetryHandler(deps.PaymentSvc))
	authRoutes.GET("/payments/:id", paymentGetHandler(deps.PaymentSvc))
	authRoutes.POST("/payments/:id/confirm", paymentConfirmHandler(deps.PaymentSvc))
	authRoutes.GET("/favorites", favoritesHandler(deps.FavoriteSvc))
	authRoutes.POST("/favorites/:productId/toggle", favoriteToggleHandler(deps.FavoriteSvc))

	checkoutRoutes := router.Group("/", authMiddleware(deps.AccountSvc), sessionMiddleware())
	checkoutRoutes.POST("/checkout", checkoutHandler(deps.OrderSvc))

	return router, nil
}

type userCtxKeyType struct{}

var userCtxKey = userCtxKeyType{}

// authMiddleware resolves a bearer token into a user; checkout, payments and
// order history are never served anonymously.
func authMiddleware(svc accountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		user, err := svc.LookupByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		ctx := context.WithValue(c.Request.Context(), userCtxKey, user)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// sessionMiddleware reads the cart session id, minting one when the caller
// has none yet. The id is echoed back so clients can persist it.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := strings.TrimSpace(c.GetHeader(sessionHeader))
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}
		c.Header(sessionHeader, sessionID)
		c.Set(sessionHeader, sessionID)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	if u, ok := c.Request.Context().Value(userCtxKey).(*domain.User); ok {
		return u
	}
	return nil
}

func currentSession(c *gin.Context) string {
	return c.GetString(sessionHeader)
}
