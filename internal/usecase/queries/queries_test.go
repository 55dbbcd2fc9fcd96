//go:build unit

package queries_test

import (
	"context"
	"testing"

	"servicedesk/internal/domain/user"
	"servicedesk/internal/infra"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/queries"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubIncidentViewRepo struct {
	findByIDErr error
}

func (s *stubIncidentViewRepo) FindByReporterID(_ context.Context, _ uuid.UUID) ([]*queries.IncidentView, error) {
	return nil, nil
}

func (s *stubIncidentViewRepo) FindAll(_ context.Context) ([]*queries.IncidentView, error) {
	return nil, nil
}

func (s *stubIncidentViewRepo) FindByID(_ context.Context, _ uuid.UUID) (*queries.IncidentView, error) {
	return nil, s.findByIDErr
}

type stubRequestViewRepo struct {
	findByIDErr error
}

func (s *stubRequestViewRepo) FindByUserID(_ context.Context, _ uuid.UUID) ([]*queries.RequestListItem, error) {
	return nil, nil
}

func (s *stubRequestViewRepo) FindAll(_ context.Context) ([]*queries.RequestListItem, error) {
	return nil, nil
}

func (s *stubRequestViewRepo) FindByID(_ context.Context, _ uuid.UUID) (*queries.RequestView, error) {
	return nil, s.findByIDErr
}

type stubOfferingViewRepo struct {
	findByIDErr error
}

func (s *stubOfferingViewRepo) FindActiveByCategory(_ context.Context, _ string) ([]*queries.OfferingView, error) {
	return nil, nil
}

func (s *stubOfferingViewRepo) FindAll(_ context.Context) ([]*queries.OfferingView, error) {
	return nil, nil
}

func (s *stubOfferingViewRepo) FindByID(_ context.Context, _ uuid.UUID) (*queries.OfferingView, error) {
	return nil, s.findByIDErr
}

func staffActor() shared.Actor {
	return shared.Actor{ID: uuid.New(), Username: "operator", Role: user.RoleEmployee}
}

// A row that does not exist must surface as errs.ErrNotFound so the
// handlers can answer 404 instead of 500.
func TestGetByID_TranslatesRepoNotFound(t *testing.T) {
	ctx := context.Background()
	actor := staffActor()
	missing := infra.NotFoundErr("row not found")

	t.Run("incident", func(t *testing.T) {
		q := queries.NewIncidentQueries(&stubIncidentViewRepo{findByIDErr: missing})
		_, err := q.GetByID(ctx, actor, uuid.New())
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("service request", func(t *testing.T) {
		q := queries.NewOrderQueries(&stubRequestViewRepo{findByIDErr: missing})
		_, err := q.GetByID(ctx, actor, uuid.New())
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("offering", func(t *testing.T) {
		q := queries.NewCatalogQueries(&stubOfferingViewRepo{findByIDErr: missing})
		_, err := q.GetByID(ctx, actor, uuid.New())
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

// Other repository failures must pass through untranslated so they keep
// mapping to 500.
func TestGetByID_KeepsOtherRepoErrors(t *testing.T) {
	ctx := context.Background()
	actor := staffActor()
	boom := infra.WrapRepoErr("query failed", errs.New("connection reset"))

	t.Run("incident", func(t *testing.T) {
		q := queries.NewIncidentQueries(&stubIncidentViewRepo{findByIDErr: boom})
		_, err := q.GetByID(ctx, actor, uuid.New())
		require.Error(t, err)
		require.NotErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("service request", func(t *testing.T) {
		q := queries.NewOrderQueries(&stubRequestViewRepo{findByIDErr: boom})
		_, err := q.GetByID(ctx, actor, uuid.New())
		require.Error(t, err)
		require.NotErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("offering", func(t *testing.T) {
		q := queries.NewCatalogQueries(&stubOfferingViewRepo{findByIDErr: boom})
		_, err := q.GetByID(ctx, actor, uuid.New())
		require.Error(t, err)
		require.NotErrorIs(t, err, errs.ErrNotFound)
	})
}
