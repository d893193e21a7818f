package employee

import (
	"context"
	"strconv"
	"time"

	employeeerrors "bizdash/internal/employee/errors"
	"bizdash/internal/shared/contextutil"
	"bizdash/internal/shared/sequence"

	"go.uber.org/zap"
)

// userIDFloor is the value reported before any employee exists; the first
// intake submits floor+1.
const userIDFloor = 1000

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	Count(ctx context.Context) (int64, error)
	LatestUserID(ctx context.Context) (int, error)
}

type service struct {
	repo   Repository
	seq    sequence.Repository
	logger *zap.Logger
}

func NewService(repo Repository, seq sequence.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, seq: seq, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("user_id", req.UserID),
		zap.Int("documents", len(req.Documents)),
	)

	userID, err := strconv.Atoi(req.UserID)
	if err != nil {
		s.logger.Warn("create employee invalid userId", zap.String("user_id", req.UserID))
		return Employee{}, employeeerrors.ErrInvalidUserID
	}

	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return Employee{}, employeeerrors.ErrInvalidDateOfBirth
	}
	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return Employee{}, employeeerrors.ErrInvalidHireDate
	}

	status := req.Status
	if status == "" {
		status = StatusPresent
	}

	docs := make([]Document, 0, len(req.Documents))
	for _, d := range req.Documents {
		docs = append(docs, Document{
			Filename:     d.Filename,
			OriginalName: d.OriginalName,
			Path:         d.Path,
		})
	}

	row := Employee{
		UserID:        userID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   dateOfBirth,
		Gender:        req.Gender,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		Position:      req.Position,
		Department:    req.Department,
		HireDate:      hireDate,
		Status:        status,
		Documents:     docs,
	}

	if err := s.repo.Create(ctx, &row); err != nil {
		s.logger.Error("create employee insert failed", zap.String("request_id", rid), zap.Error(err))
		return Employee{}, mapRepositoryError(err, "Error adding employee")
	}
	return row, nil
}

func (s *service) GetAll(ctx context.Context) ([]Employee, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err, "Error retrieving employees")
	}
	return rows, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, mapRepositoryError(err, "Error counting employees")
	}
	return count, nil
}

func (s *service) LatestUserID(ctx context.Context) (int, error) {
	latest, err := s.seq.MaxValue(ctx, Employee{}.TableName(), "user_id", userIDFloor)
	if err != nil {
		return 0, mapRepositoryError(err, "Error fetching latest user ID")
	}
	return latest, nil
}
