package lead

import (
	"context"
	"net/http"
	"time"

	leaderrors "bizdash/internal/lead/errors"
	"bizdash/internal/shared/apperror"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateLeadRequest) (*Lead, error)
	GetGroupedContacts(ctx context.Context) (*GroupedContactsResponse, error)
	UpdateStatus(ctx context.Context, id uint, to string) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateLeadRequest) (*Lead, error) {
	status := req.Status
	if status == "" {
		status = StatusLead
	}

	row := &Lead{
		Client:    req.Client,
		PIC:       req.PIC,
		Contact:   req.Contact,
		Sector:    req.Sector,
		APV:       req.APV,
		Location:  req.Location,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "Error adding lead", http.StatusInternalServerError)
	}

	zap.L().Info("lead inserted", zap.Uint("leadId", row.ID), zap.String("client", row.Client))
	return row, nil
}

func (s *service) GetGroupedContacts(ctx context.Context) (*GroupedContactsResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "Error fetching contacts", http.StatusInternalServerError)
	}

	grouped := &GroupedContactsResponse{
		Lead:     []Lead{},
		Prospect: []Lead{},
		Client:   []Lead{},
	}
	for _, row := range rows {
		switch row.Status {
		case StatusLead:
			grouped.Lead = append(grouped.Lead, row)
		case StatusProspect:
			grouped.Prospect = append(grouped.Prospect, row)
		case StatusClient:
			grouped.Client = append(grouped.Client, row)
		}
	}
	return grouped, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uint, to string) error {
	affected, err := s.repo.UpdateStatus(ctx, id, to)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "Error updating contact status", http.StatusInternalServerError)
	}
	if affected == 0 {
		return leaderrors.ErrStatusNotUpdated
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "Error deleting contact", http.StatusInternalServerError)
	}
	if affected == 0 {
		return leaderrors.ErrContactNotFound
	}
	return nil
}
