package app

import (
	"net/http"
	"os"
	"strings"
	"time"

	"bizdash/internal/attendance"
	"bizdash/internal/employee"
	"bizdash/internal/lead"
	"bizdash/internal/middleware"
	"bizdash/internal/project"
	"bizdash/internal/shared/connection"
	"bizdash/internal/shared/response"
	"bizdash/internal/transaction"
	"bizdash/internal/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BuildApp wires infrastructure, middleware and every module's routes onto
// the given router.
func BuildApp(router *gin.Engine) error {
	// 1. Infrastructure
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		envOrDefault("DB_SSLMODE", "disable"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := db.AutoMigrate(
		&employee.Employee{},
		&employee.Document{},
		&attendance.AttendanceRecord{},
		&transaction.Transaction{},
		&transaction.MonthlyBalance{},
		&project.Project{},
		&project.ProjectDocument{},
		&lead.Lead{},
	); err != nil {
		return err
	}

	store, err := upload.NewStore(envOrDefault("UPLOAD_DIR", "uploads"))
	if err != nil {
		return err
	}

	// 2. Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(envOrDefault("ALLOWED_ORIGIN", "http://localhost:3000"), ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded documents are served straight off disk.
	router.Static("/uploads", store.Dir())

	// Liveness probes used by the frontend during development.
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World")
	})
	router.GET("/test", func(c *gin.Context) {
		response.Message(c, http.StatusOK, "Test endpoint is working")
	})

	// 3. Modules & routes
	return registerModules(router, db, store)
}
