package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"bizdash/internal/shared/connection"
	"bizdash/internal/transaction"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Seeds twelve months of monthly balances ending at the current month, each
// month's opening balance chained from the previous closing balance.
func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

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
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := db.AutoMigrate(&transaction.MonthlyBalance{}); err != nil {
		logger.Fatal("migrate monthly_balances failed", zap.Error(err))
	}

	repo := transaction.NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	opening := 0.0
	for i := 11; i >= 0; i-- {
		date := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)

		received := float64(rand.Intn(10000) + 5000)
		sent := float64(rand.Intn(5000) + 2000)
		closing := opening + received - sent

		row := &transaction.MonthlyBalance{
			Year:           date.Year(),
			Month:          int(date.Month()),
			OpeningBalance: opening,
			ClosingBalance: closing,
			TotalReceived:  received,
			TotalSent:      sent,
		}
		if err := repo.InsertMonthlyBalance(ctx, row); err != nil {
			logger.Fatal("insert monthly balance failed",
				zap.Int("year", row.Year), zap.Int("month", row.Month), zap.Error(err))
		}
		logger.Info("monthly balance seeded",
			zap.Int("year", row.Year), zap.Int("month", row.Month),
			zap.Float64("openingBalance", opening), zap.Float64("closingBalance", closing))

		opening = closing
	}
}
