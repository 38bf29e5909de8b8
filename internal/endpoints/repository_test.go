package endpoints_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/Aidin1998/apiregistry/internal/endpoints"
	"github.com/Aidin1998/apiregistry/internal/infrastructure/database"
	"github.com/Aidin1998/apiregistry/pkg/errors"
	"github.com/Aidin1998/apiregistry/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEndpoint(name string, createdAt time.Time) *models.APIEndpoint {
	return &models.APIEndpoint{
		Name:      name,
		Path:      "/" + name,
		Method:    "GET",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestRepository_CreateAndFind(t *testing.T) {
	repo := endpoints.NewRepository(database.NewTestDB(t))
	ctx := context.Background()

	ep := newEndpoint("ping", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, ep))
	assert.NotEqual(t, uuid.Nil, ep.ID)

	found, err := repo.FindUnique(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, "ping", found.Name)

	_, err = repo.FindUnique(ctx, uuid.New())
	assert.ErrorIs(t, err, errors.NotFound)

	err = repo.Create(ctx, newEndpoint("ping", time.Now().UTC()))
	assert.ErrorIs(t, err, errors.Conflict)
}

func TestRepository_FindManyOrder(t *testing.T) {
	repo := endpoints.NewRepository(database.NewTestDB(t))
	ctx := context.Background()

	list, err := repo.FindMany(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newEndpoint("old", base)))
	require.NoError(t, repo.Create(ctx, newEndpoint("new", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newEndpoint("mid", base.Add(time.Minute))))

	list, err = repo.FindMany(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "new", list[0].Name)
	assert.Equal(t, "mid", list[1].Name)
	assert.Equal(t, "old", list[2].Name)
}

func TestRepository_UpdateDeleteMissing(t *testing.T) {
	repo := endpoints.NewRepository(database.NewTestDB(t))
	ctx := context.Background()

	missing := newEndpoint("ghost", time.Now().UTC())
	missing.ID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, missing), errors.NotFound)
	assert.ErrorIs(t, repo.Delete(ctx, missing.ID), errors.NotFound)
}

func TestRepository_TransactionRollback(t *testing.T) {
	repo := endpoints.NewRepository(database.NewTestDB(t))
	ctx := context.Background()

	boom := stderrors.New("boom")
	err := repo.Transaction(ctx, func(tx *endpoints.Repository) error {
		if err := tx.Create(ctx, newEndpoint("ping", time.Now().UTC())); err != nil {
			return err
		}
		return boom
	})
	require.Error(t, err)
	assert.Equal(t, errors.KindInternal, errors.KindOf(err))
	assert.ErrorIs(t, err, boom)

	list, err := repo.FindMany(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
