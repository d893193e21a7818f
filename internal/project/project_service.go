package project

import (
	"context"
	"errors"
	"net/http"
	"time"

	projecterrors "bizdash/internal/project/errors"
	"bizdash/internal/shared/apperror"
	"bizdash/internal/shared/contextutil"
	"bizdash/internal/shared/sequence"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateProjectRequest) (Project, error)
	GetAll(ctx context.Context) ([]Project, error)
	// GetSplitList partitions projects into active (anything not completed)
	// and completed.
	GetSplitList(ctx context.Context) (SplitListResponse, error)
	GetByProjectID(ctx context.Context, projectID int) (Project, error)
	// Update replaces the project fields and merges its document list:
	// resent metadata overwrites stored documents matched by filename, new
	// uploads are appended.
	Update(ctx context.Context, projectID int, data ProjectData, existingDocs, newDocs []ProjectDocument) (Project, error)
	MarkCompleted(ctx context.Context, projectID int) error
}

type service struct {
	repo   Repository
	seq    sequence.Repository
	logger *zap.Logger
}

func NewService(repo Repository, seq sequence.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{repo: repo, seq: seq, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateProjectRequest) (Project, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return Project{}, apperror.New(apperror.CodeInvalidInput,
			"Invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	nextID, err := s.seq.NextValue(ctx, Project{}.TableName(), "project_id", projectIDFloor)
	if err != nil {
		logger.Error("project id allocation failed", zap.Error(err))
		return Project{}, mapRepositoryError(err, "Error adding project")
	}

	row := Project{
		ProjectID:    nextID,
		Name:         req.Name,
		Requirement:  req.Requirement,
		ProjectValue: req.ProjectValue,
		AssignTeam:   req.AssignTeam,
		Sector:       req.Sector,
		Date:         date,
		Status:       status,
		Documents:    req.Documents,
	}

	if err := s.repo.Create(ctx, &row); err != nil {
		logger.Error("project insert failed", zap.Int("project_id", nextID), zap.Error(err))
		return Project{}, mapRepositoryError(err, "Error adding project")
	}
	return row, nil
}

func (s *service) GetAll(ctx context.Context) ([]Project, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err, "Error fetching projects")
	}
	return rows, nil
}

func (s *service) GetSplitList(ctx context.Context) (SplitListResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return SplitListResponse{}, mapRepositoryError(err, "Error fetching projects list")
	}

	resp := SplitListResponse{
		ActiveProjects:    []Project{},
		CompletedProjects: []Project{},
	}
	for _, p := range rows {
		if p.Status == StatusCompleted {
			resp.CompletedProjects = append(resp.CompletedProjects, p)
		} else {
			resp.ActiveProjects = append(resp.ActiveProjects, p)
		}
	}
	return resp, nil
}

func (s *service) GetByProjectID(ctx context.Context, projectID int) (Project, error) {
	p, err := s.repo.FindByProjectID(ctx, projectID)
	if err != nil {
		return Project{}, mapRepositoryError(err, "Error fetching project details")
	}
	return *p, nil
}

func (s *service) Update(ctx context.Context, projectID int, data ProjectData, existingDocs, newDocs []ProjectDocument) (Project, error) {
	existing, err := s.repo.FindByProjectID(ctx, projectID)
	if err != nil {
		return Project{}, mapRepositoryError(err, "Error updating project")
	}

	merged := make([]ProjectDocument, len(existing.Documents))
	copy(merged, existing.Documents)
	for _, doc := range existingDocs {
		for i := range merged {
			if merged[i].Filename == doc.Filename {
				doc.ID = merged[i].ID
				doc.ProjectRowID = merged[i].ProjectRowID
				merged[i] = doc
				break
			}
		}
	}
	merged = append(merged, newDocs...)

	existing.Name = data.Name
	existing.Requirement = data.Requirement
	existing.ProjectValue = data.ProjectValue
	existing.AssignTeam = data.AssignTeam
	existing.Sector = data.Sector
	existing.Status = data.Status
	if data.Date != "" {
		date, err := time.Parse("2006-01-02", data.Date)
		if err != nil {
			return Project{}, projecterrors.ErrInvalidProjectData
		}
		existing.Date = date
	}
	existing.Documents = merged

	if err := s.repo.Replace(ctx, existing); err != nil {
		return Project{}, mapRepositoryError(err, "Error updating project")
	}

	updated, err := s.repo.FindByProjectID(ctx, projectID)
	if err != nil {
		return Project{}, mapRepositoryError(err, "Error updating project")
	}
	return *updated, nil
}

func (s *service) MarkCompleted(ctx context.Context, projectID int) error {
	affected, err := s.repo.MarkCompleted(ctx, projectID)
	if err != nil {
		return mapRepositoryError(err, "Error marking project as completed")
	}
	if affected == 0 {
		return projecterrors.ErrNotFoundOrCompleted
	}
	return nil
}

func mapRepositoryError(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return projecterrors.ErrProjectNotFound
	}
	return apperror.Wrap(err, apperror.CodeInternalError, message, http.StatusInternalServerError)
}
