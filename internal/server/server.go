// Package server exposes the backend's collections as JSON resources
// over HTTP.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/munchbox/munchbox/internal/auth"
	"github.com/munchbox/munchbox/internal/metrics"
	"github.com/munchbox/munchbox/internal/middleware"
	"github.com/munchbox/munchbox/internal/service"
)

// Server wires the services to the gin router.
type Server struct {
	router *gin.Engine

	menu      *service.MenuService
	orders    *service.OrderService
	employees *service.EmployeeService
	reviews   *service.ReviewService
	settings  *service.SettingsService
	users     *service.UserService

	authenticator auth.Authenticator
	jwt           *auth.JWTManager
}

// Services bundles the dependencies of New.
type Services struct {
	Menu      *service.MenuService
	Orders    *service.OrderService
	Employees *service.EmployeeService
	Reviews   *service.ReviewService
	Settings  *service.SettingsService
	Users     *service.UserService

	Authenticator auth.Authenticator
	JWT           *auth.JWTManager
}

// New builds the router with logging, metrics and CORS applied.
func New(deps Services) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logging())
	router.Use(middleware.Metrics())
	router.Use(cors())

	s := &Server{
		router:        router,
		menu:          deps.Menu,
		orders:        deps.Orders,
		employees:     deps.Employees,
		reviews:       deps.Reviews,
		settings:      deps.Settings,
		users:         deps.Users,
		authenticator: deps.Authenticator,
		jwt:           deps.JWT,
	}
	s.setupRoutes()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := s.router.Group("/api")
	admin := middleware.RequireAdmin(s.jwt)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", s.login)
		authGroup.POST("/signup", s.signup)
	}

	menu := api.Group("/menu")
	{
		menu.GET("", s.listMenu)
		menu.POST("", admin, s.addMenuItem)
		menu.PUT("/:id", admin, s.updateMenuItem)
		menu.DELETE("/:id", admin, s.deleteMenuItem)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", s.listOrders)
		orders.POST("", s.createOrder)
		orders.GET("/:id", s.getOrder)
		orders.PUT("/:id", admin, s.updateOrderStatus)
	}

	employees := api.Group("/employees", admin)
	{
		employees.GET("", s.listEmployees)
		employees.POST("", s.addEmployee)
		employees.PUT("/:id", s.updateEmployee)
		employees.DELETE("/:id", s.deleteEmployee)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", s.listReviews)
		reviews.POST("", s.addReview)
		reviews.PUT("/:id", admin, s.resolveReview)
		reviews.DELETE("/:id", admin, s.deleteReview)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", s.getSettings)
		settings.POST("", admin, s.saveSettings)
	}

	api.GET("/users", admin, s.listUsers)

	reports := api.Group("/reports", admin)
	{
		reports.GET("/sales", s.salesReport)
		reports.GET("/top-items", s.topItemsReport)
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// fail maps a service or auth error to a status code and JSON body.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUnknownStatus),
		errors.Is(err, service.ErrBadTransition),
		errors.Is(err, service.ErrMissingFields),
		errors.Is(err, auth.ErrMissingFields),
		errors.Is(err, auth.ErrEmailExists):
		status = http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
