package attendance

import (
	"context"
	"errors"
	"net/http"
	"time"

	attendanceerrors "bizdash/internal/attendance/errors"
	"bizdash/internal/employee"
	"bizdash/internal/shared/apperror"

	"gorm.io/gorm"
)

type Service interface {
	Submit(ctx context.Context, records []SubmitRecord) (SubmitResult, error)
	BulkUpsert(ctx context.Context, records []SubmitRecord) ([]BulkOutcome, error)
	PresentCount(ctx context.Context, date string) (PresentCountResult, error)
	DayRecords(ctx context.Context, date string) (DayRecordsResult, error)
	Monthly(ctx context.Context, year, month int) ([]MonthlyEmployeeAttendance, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
}

func NewService(repo Repository, employees employee.Repository) Service {
	return &service{repo: repo, employees: employees}
}

// Submit validates an array of records, inserts the valid ones and reports
// the rest. Dates may be YYYY-MM-DD or RFC3339.
func (s *service) Submit(ctx context.Context, records []SubmitRecord) (SubmitResult, error) {
	var (
		valid   []AttendanceRecord
		invalid []InvalidRecord
	)

	for _, rec := range records {
		if rec.UserID == nil || *rec.UserID == 0 || rec.Status == "" || rec.Date == "" {
			invalid = append(invalid, InvalidRecord{Record: rec, Reason: "Missing required fields"})
			continue
		}
		date, err := parseRecordDate(rec.Date)
		if err != nil {
			invalid = append(invalid, InvalidRecord{Record: rec, Reason: "Invalid date format"})
			continue
		}
		valid = append(valid, AttendanceRecord{
			UserID:   *rec.UserID,
			Date:     date,
			Status:   rec.Status,
			UserName: rec.UserName,
		})
	}

	result := SubmitResult{InvalidRecords: invalid}
	if len(valid) == 0 {
		return result, attendanceerrors.ErrNoValidRecords
	}

	inserted, err := s.repo.InsertMany(ctx, valid)
	if err != nil {
		return result, apperror.Wrap(err, apperror.CodeInternalError,
			"Error submitting attendance", http.StatusInternalServerError)
	}
	result.InsertedCount = inserted
	return result, nil
}

// BulkUpsert processes each record independently: unknown employees are
// tagged and skipped, known ones are upserted on (userId, day). Resubmitting
// the same day overwrites rather than duplicates.
func (s *service) BulkUpsert(ctx context.Context, records []SubmitRecord) ([]BulkOutcome, error) {
	if len(records) == 0 {
		return nil, attendanceerrors.ErrInvalidBulkData
	}

	outcomes := make([]BulkOutcome, 0, len(records))
	for _, rec := range records {
		if rec.UserID == nil || *rec.UserID == 0 || rec.Status == "" || rec.Date == "" {
			outcomes = append(outcomes, BulkOutcome{Error: "Invalid record", UserID: rec.UserID})
			continue
		}
		date, err := parseRecordDate(rec.Date)
		if err != nil {
			outcomes = append(outcomes, BulkOutcome{Error: "Invalid record", UserID: rec.UserID})
			continue
		}

		emp, err := s.employees.FindByUserID(ctx, *rec.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcomes = append(outcomes, BulkOutcome{Error: "Employee not found", UserID: rec.UserID})
				continue
			}
			return nil, apperror.Wrap(err, apperror.CodeInternalError,
				"Error processing bulk attendance", http.StatusInternalServerError)
		}

		day := atMidnightUTC(date)
		if err := s.repo.Upsert(ctx, *rec.UserID, day, rec.Status, emp.FullName()); err != nil {
			return nil, apperror.Wrap(err, apperror.CodeInternalError,
				"Error processing bulk attendance", http.StatusInternalServerError)
		}
		outcomes = append(outcomes, BulkOutcome{Success: true, UserID: rec.UserID, Status: rec.Status})
	}

	return outcomes, nil
}

func (s *service) PresentCount(ctx context.Context, date string) (PresentCountResult, error) {
	start, end, err := dayWindow(date)
	if err != nil {
		return PresentCountResult{}, attendanceerrors.ErrInvalidDate
	}

	count, err := s.repo.CountPresentBetween(ctx, start, end)
	if err != nil {
		return PresentCountResult{}, apperror.Wrap(err, apperror.CodeInternalError,
			"Error fetching present employees count", http.StatusInternalServerError)
	}
	return PresentCountResult{
		Count:      count,
		QueryDate:  date,
		StartOfDay: formatISOMillis(start),
		EndOfDay:   formatISOMillis(end),
	}, nil
}

func (s *service) DayRecords(ctx context.Context, date string) (DayRecordsResult, error) {
	start, end, err := dayWindow(date)
	if err != nil {
		return DayRecordsResult{}, attendanceerrors.ErrInvalidDate
	}

	rows, err := s.repo.FindForDay(ctx, start, end)
	if err != nil {
		return DayRecordsResult{}, apperror.Wrap(err, apperror.CodeInternalError,
			"Error fetching attendance records", http.StatusInternalServerError)
	}
	if rows == nil {
		rows = []AttendanceRecord{}
	}
	return DayRecordsResult{
		Records:    rows,
		QueryDate:  date,
		StartOfDay: formatISOMillis(start),
		EndOfDay:   formatISOMillis(end),
	}, nil
}

// Monthly joins every employee against the month's records in application
// code; employees with no attendance still appear.
func (s *service) Monthly(ctx context.Context, year, month int) ([]MonthlyEmployeeAttendance, error) {
	if month < 1 || month > 12 {
		return nil, attendanceerrors.ErrInvalidMonth
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1) // last day of the month, midnight, inclusive

	records, err := s.repo.FindForMonth(ctx, start, end)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError,
			"Error fetching monthly attendance", http.StatusInternalServerError)
	}

	byUser := make(map[int][]AttendanceRecord, len(records))
	for _, rec := range records {
		byUser[rec.UserID] = append(byUser[rec.UserID], rec)
	}

	emps, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError,
			"Error fetching monthly attendance", http.StatusInternalServerError)
	}

	out := make([]MonthlyEmployeeAttendance, 0, len(emps))
	for _, emp := range emps {
		rows := byUser[emp.UserID]
		if rows == nil {
			rows = []AttendanceRecord{}
		}
		out = append(out, MonthlyEmployeeAttendance{
			UserID:     emp.UserID,
			UserName:   emp.FullName(),
			Attendance: rows,
		})
	}
	return out, nil
}

func parseRecordDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func atMidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// dayWindow returns [D 00:00:00.000Z, D 23:59:59.999Z); the upper bound is
// compared exclusively so a record at the next midnight is never counted
// twice.
func dayWindow(date string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end, nil
}

func formatISOMillis(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
