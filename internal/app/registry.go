package app

import (
	"bizdash/internal/attendance"
	"bizdash/internal/employee"
	"bizdash/internal/lead"
	"bizdash/internal/project"
	"bizdash/internal/shared/sequence"
	"bizdash/internal/transaction"
	"bizdash/internal/upload"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, gormDB *gorm.DB, store *upload.Store) error {
	// --- Repositories ---
	seqRepo := sequence.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	transactionRepo := transaction.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	leadRepo := lead.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, seqRepo)
	attendanceService := attendance.NewService(attendanceRepo, employeeRepo)
	transactionService := transaction.NewService(transactionRepo)
	projectService := project.NewService(projectRepo, seqRepo)
	leadService := lead.NewService(leadRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, store)
	attendanceHandler := attendance.NewHandler(attendanceService)
	transactionHandler := transaction.NewHandler(transactionService)
	projectHandler := project.NewHandler(projectService, store)
	leadHandler := lead.NewHandler(leadService)

	// --- Routes Registration ---
	// Paths are registered at the router root so the public surface matches
	// the dashboard client exactly.
	employee.RegisterRoutes(router, employeeHandler)
	attendance.RegisterRoutes(router, attendanceHandler)
	transaction.RegisterRoutes(router, transactionHandler)
	project.RegisterRoutes(router, projectHandler)
	lead.RegisterRoutes(router, leadHandler)

	return nil
}
