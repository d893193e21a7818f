package lead_test

import (
	"context"
	"testing"

	"bizdash/internal/lead"
	leaderrors "bizdash/internal/lead/errors"

	"github.com/stretchr/testify/assert"
)

type fakeLeadRepository struct {
	createFn       func(ctx context.Context, row *lead.Lead) error
	findAllFn      func(ctx context.Context) ([]lead.Lead, error)
	updateStatusFn func(ctx context.Context, id uint, to string) (int64, error)
	deleteFn       func(ctx context.Context, id uint) (int64, error)
}

func (f *fakeLeadRepository) Create(ctx context.Context, row *lead.Lead) error {
	if f.createFn != nil {
		return f.createFn(ctx, row)
	}
	return nil
}

func (f *fakeLeadRepository) FindAll(ctx context.Context) ([]lead.Lead, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeadRepository) UpdateStatus(ctx context.Context, id uint, to string) (int64, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, to)
	}
	return 0, nil
}

func (f *fakeLeadRepository) Delete(ctx context.Context, id uint) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return 0, nil
}

func TestLeadService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status and stamps createdAt", func(t *testing.T) {
		repo := &fakeLeadRepository{
			createFn: func(ctx context.Context, row *lead.Lead) error {
				row.ID = 4
				return nil
			},
		}
		svc := lead.NewService(repo)

		row, err := svc.Create(ctx, lead.CreateLeadRequest{
			Client: "Acme Pte Ltd", PIC: "J. Tan", Sector: "Retail",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(4), row.ID)
		assert.Equal(t, lead.StatusLead, row.Status)
		assert.False(t, row.CreatedAt.IsZero())
	})

	t.Run("explicit status survives", func(t *testing.T) {
		svc := lead.NewService(&fakeLeadRepository{})

		row, err := svc.Create(ctx, lead.CreateLeadRequest{
			Client: "Acme Pte Ltd", Status: lead.StatusProspect,
		})

		assert.NoError(t, err)
		assert.Equal(t, lead.StatusProspect, row.Status)
	})
}

func TestLeadService_GetGroupedContacts(t *testing.T) {
	ctx := context.Background()

	repo := &fakeLeadRepository{
		findAllFn: func(ctx context.Context) ([]lead.Lead, error) {
			return []lead.Lead{
				{ID: 1, Client: "A", Status: lead.StatusLead},
				{ID: 2, Client: "B", Status: lead.StatusClient},
				{ID: 3, Client: "C", Status: lead.StatusLead},
			}, nil
		},
	}
	svc := lead.NewService(repo)

	grouped, err := svc.GetGroupedContacts(ctx)

	assert.NoError(t, err)
	assert.Len(t, grouped.Lead, 2)
	assert.NotNil(t, grouped.Prospect)
	assert.Empty(t, grouped.Prospect)
	assert.Len(t, grouped.Client, 1)
}

func TestLeadService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeLeadRepository{
			updateStatusFn: func(ctx context.Context, id uint, to string) (int64, error) {
				assert.Equal(t, uint(3), id)
				assert.Equal(t, lead.StatusProspect, to)
				return 1, nil
			},
		}
		svc := lead.NewService(repo)

		assert.NoError(t, svc.UpdateStatus(ctx, 3, lead.StatusProspect))
	})

	t.Run("no row changed is a 404", func(t *testing.T) {
		svc := lead.NewService(&fakeLeadRepository{})

		err := svc.UpdateStatus(ctx, 3, lead.StatusProspect)

		assert.ErrorIs(t, err, leaderrors.ErrStatusNotUpdated)
	})
}

func TestLeadService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeLeadRepository{
			deleteFn: func(ctx context.Context, id uint) (int64, error) { return 1, nil },
		}
		svc := lead.NewService(repo)

		assert.NoError(t, svc.Delete(ctx, 3))
	})

	t.Run("nothing deleted is a 404", func(t *testing.T) {
		svc := lead.NewService(&fakeLeadRepository{})

		err := svc.Delete(ctx, 3)

		assert.ErrorIs(t, err, leaderrors.ErrContactNotFound)
	})
}
