package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sara-web/internal/middleware"
	"sara-web/internal/service"
	"sara-web/internal/session"
	"sara-web/internal/views"
)

// RouterConfig carries what the router needs to build its controllers
type RouterConfig struct {
	AuthService        service.AuthService
	AppointmentService service.AppointmentService
	Store              *session.Store
	Log                logrus.FieldLogger
	Session            middleware.SessionOptions

	// GeneralLimiter guards every form post, AuthLimiter additionally guards
	// the login and registration posts. Either may be nil.
	GeneralLimiter *middleware.RateLimiter
	AuthLimiter    *middleware.RateLimiter

	// Now is the clock used by date helpers; time.Now when nil.
	Now func() time.Time
}

// NewRouter wires every page of the client
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	RegisterValidators()

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	tmpl, err := views.Templates(now)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(cfg.Log))
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", views.Static())

	// Health check endpoint (no session, no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	pages := NewPages(cfg.AuthService, cfg.Store, cfg.Log)
	homeController := NewHomeController(pages)
	authController := NewAuthController(cfg.AuthService, pages, cfg.Log)
	accountController := NewAccountController(cfg.AuthService, pages, cfg.Log)
	appointmentController := NewAppointmentController(cfg.AppointmentService, pages, cfg.Log, now)
	qrcodeController := NewQRCodeController(cfg.AppointmentService, cfg.Log)

	generalLimit := limit(cfg.GeneralLimiter)
	authLimit := limit(cfg.AuthLimiter)

	web := router.Group("/")
	web.Use(middleware.Session(cfg.Session))
	{
		web.GET("/", homeController.Root)
		web.GET("/home", homeController.Home)

		web.GET("/login", authController.ShowLogin)
		web.POST("/login", generalLimit, authLimit, authController.Login)
		web.GET("/register", authController.ShowRegister)
		web.POST("/register", generalLimit, authLimit, authController.Register)
		web.POST("/logout", generalLimit, authController.Logout)

		web.GET("/confirm-email", accountController.ConfirmEmail)
		web.GET("/forgot-password", accountController.ShowForgotPassword)
		web.POST("/forgot-password", generalLimit, authLimit, accountController.ForgotPassword)
		web.GET("/reset-password", accountController.ShowResetPassword)
		web.POST("/reset-password", generalLimit, authLimit, accountController.ResetPassword)

		web.GET("/my-appointments", appointmentController.List)
		web.POST("/my-appointments/:id/cancel", generalLimit, appointmentController.Cancel)
		web.GET("/my-appointments/:id/qrcode", qrcodeController.GenerateQRCode)
		web.GET("/new-appointment", appointmentController.ShowNew)
		web.POST("/new-appointment", generalLimit, appointmentController.Create)
	}

	return router, nil
}

func limit(rl *middleware.RateLimiter) gin.HandlerFunc {
	if rl == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return rl.LimitMiddleware()
}
