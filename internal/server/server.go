package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/config"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/handler"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/middleware"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/repository"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authSvc, redisClient)

	userSvc := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userSvc)

	classSvc := service.NewClassService(classRepo)
	classHandler := handler.NewClassHandler(classSvc)

	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc)

	viewSvc := service.NewViewService(userRepo, classRepo, enrollmentRepo)
	viewHandler := handler.NewViewHandler(viewSvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server working properly")
	})

	// Public routes (no auth required)
	router.POST("/jwt", authHandler.IssueToken)
	router.POST("/users", userHandler.Register)
	router.GET("/classes", viewHandler.ApprovedClasses)
	router.GET("/top-classes", viewHandler.TopClasses)
	router.GET("/instructors", viewHandler.Instructors)
	router.GET("/popular-instructors", viewHandler.PopularInstructors)

	// Protected routes
	protected := router.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/my-classes", classHandler.MyClasses)

		protected.POST("/enrollments", enrollmentHandler.Select)
		protected.GET("/enrollments", enrollmentHandler.MySelections)
		protected.DELETE("/enrollments/:id", enrollmentHandler.Withdraw)

		instructor := protected.Group("")
		instructor.Use(authMiddleware.RequireInstructor())
		{
			instructor.POST("/classes", classHandler.Create)
		}

		admin := protected.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.GET("/users", userHandler.GetAllUsers)
			admin.PATCH("/users/:id", userHandler.UpdateRole)
			admin.GET("/all-classes", classHandler.AllClasses)
			admin.PATCH("/classes/:id/status", classHandler.UpdateStatus)
			admin.PATCH("/classes/:id/feedback", classHandler.AddFeedback)
		}
	}

	return &Server{
		engine: router,
		db:     db,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:5173"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
