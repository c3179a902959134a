package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-form/pkg/middleware"
	"student-form/pkg/services"
)

// RouterOptions configures NewRouter
type RouterOptions struct {
	SessionCookie      string
	SessionTTL         time.Duration
	CORSAllowedOrigins []string
}

// NewRouter wires middleware and routes onto a fresh gin engine
func NewRouter(svc services.StudentService, logger *zap.Logger, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(opts.CORSAllowedOrigins))
	router.SetHTMLTemplate(Templates())

	handlers := NewHandlers(svc, logger)

	router.GET("/health", handlers.HealthCheck)

	form := router.Group("")
	form.Use(middleware.Session(svc, opts.SessionCookie, opts.SessionTTL))
	{
		form.GET("/", handlers.ShowForm)
		form.POST("/students", handlers.SubmitForm)

		api := form.Group("/api")
		api.POST("/validate", handlers.ValidateField)
		api.POST("/students", handlers.CreateStudent)
		api.GET("/students", handlers.SearchStudents)
	}

	return router
}
