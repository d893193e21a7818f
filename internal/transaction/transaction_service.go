package transaction

import (
	"context"
	"net/http"
	"time"

	"bizdash/internal/shared/apperror"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Service interface {
	Create(ctx context.Context, req CreateTransactionRequest) (Transaction, error)
	GetAll(ctx context.Context) ([]Transaction, error)
	// MonthlySeries returns exactly 12 entries for the current year, zeros
	// where no transactions exist.
	MonthlySeries(ctx context.Context) ([]MonthEntry, error)
	ExpenseBreakdown(ctx context.Context) ([]ExpenseEntry, error)
	AccountBalance(ctx context.Context) (BalanceResponse, error)
	Summary(ctx context.Context, timeframe string) (SummaryResponse, error)
}

type service struct {
	repo   Repository
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("transaction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transaction.service")
	}
	return &service{
		repo:   repo,
		sf:     &singleflight.Group{},
		now:    time.Now,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateTransactionRequest) (Transaction, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return Transaction{}, apperror.New(apperror.CodeInvalidInput,
			"Invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
	}

	row := Transaction{
		Type:        req.Type,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Description: req.Description,
		To:          req.To,
		Amount:      req.Amount,
		Date:        date,
	}
	if err := s.repo.Create(ctx, &row); err != nil {
		s.logger.Error("transaction insert failed", zap.Error(err))
		return Transaction{}, apperror.Wrap(err, apperror.CodeInternalError,
			"Failed to add transaction", http.StatusInternalServerError)
	}
	return row, nil
}

func (s *service) GetAll(ctx context.Context) ([]Transaction, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError,
			"Error fetching transactions", http.StatusInternalServerError)
	}
	return rows, nil
}

// MonthlySeries groups by (year, month, type) in the database and reshapes
// the result into the fixed dashboard series. Concurrent identical reads are
// collapsed through singleflight; each caller still gets its own slice.
func (s *service) MonthlySeries(ctx context.Context) ([]MonthEntry, error) {
	// The flight is shared with later callers, so it must not die with the
	// first caller's context.
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do("monthly-series", func() (any, error) {
		totals, err := s.repo.MonthlyTotalsByType(flightCtx)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.CodeInternalError,
				"Error fetching monthly transaction data", http.StatusInternalServerError)
		}
		return s.reshapeMonthly(totals), nil
	})
	if err != nil {
		return nil, err
	}
	series := v.([]MonthEntry)
	out := make([]MonthEntry, len(series))
	copy(out, series)
	return out, nil
}

func (s *service) reshapeMonthly(totals []MonthlyTypeTotal) []MonthEntry {
	currentYear := s.now().Year()

	series := make([]MonthEntry, 12)
	for i := 0; i < 12; i++ {
		series[i] = MonthEntry{Name: monthShortName(i + 1)}
	}

	for _, t := range totals {
		if t.Year != currentYear || t.Month < 1 || t.Month > 12 {
			continue
		}
		entry := &series[t.Month-1]
		switch t.Type {
		case TypeReceived, TypeReceivedLegacy:
			entry.Received += t.Total
		case TypeSent:
			entry.Sent += t.Total
		}
	}
	return series
}

func (s *service) ExpenseBreakdown(ctx context.Context) ([]ExpenseEntry, error) {
	totals, err := s.repo.ExpenseTotalsByCategory(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError,
			"Error fetching expenses breakdown", http.StatusInternalServerError)
	}
	out := make([]ExpenseEntry, 0, len(totals))
	for _, t := range totals {
		out = append(out, ExpenseEntry{Name: t.Name, Value: t.Value})
	}
	return out, nil
}

func (s *service) AccountBalance(ctx context.Context) (BalanceResponse, error) {
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do("account-balance", func() (any, error) {
		received, sent, err := s.repo.ReceivedAndSentTotals(flightCtx)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.CodeInternalError,
				"Error calculating account balance", http.StatusInternalServerError)
		}
		return BalanceResponse{Balance: received - sent}, nil
	})
	if err != nil {
		return BalanceResponse{}, err
	}
	return v.(BalanceResponse), nil
}

// Summary reads the precomputed rollups overlapping the timeframe window:
// opening balance from the first row, closing from the last, totals summed
// across. An empty rollup table yields all zeros.
func (s *service) Summary(ctx context.Context, timeframe string) (SummaryResponse, error) {
	start, end := summaryWindow(s.now(), timeframe)

	balances, err := s.repo.FindBalancesInWindow(ctx,
		start.Year(), int(start.Month()), end.Year(), int(end.Month()))
	if err != nil {
		return SummaryResponse{}, apperror.Wrap(err, apperror.CodeInternalError,
			"Error calculating transaction summary", http.StatusInternalServerError)
	}

	var resp SummaryResponse
	if len(balances) > 0 {
		resp.OpeningBalance = balances[0].OpeningBalance
		resp.ClosingBalance = balances[len(balances)-1].ClosingBalance
	}
	for _, b := range balances {
		resp.Received += b.TotalReceived
		resp.Sent += b.TotalSent
	}
	return resp, nil
}

// summaryWindow maps a timeframe onto [first day, last day] month bounds:
// M is the current month, 3M the current and two prior, 1Y the current and
// eleven prior. Month arithmetic relies on time.Date normalization, so
// windows starting before January roll into the previous year.
func summaryWindow(now time.Time, timeframe string) (start, end time.Time) {
	y, m := now.Year(), int(now.Month())
	switch timeframe {
	case "3M":
		start = time.Date(y, time.Month(m-2), 1, 0, 0, 0, 0, time.UTC)
	case "1Y":
		start = time.Date(y-1, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
	default: // "M"
		start = time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	}
	end = time.Date(y, time.Month(m+1), 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

func monthShortName(month int) string {
	return time.Month(month).String()[:3]
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
