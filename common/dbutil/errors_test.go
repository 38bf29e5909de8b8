package dbutil_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/Aidin1998/apiregistry/common/dbutil"
	"github.com/Aidin1998/apiregistry/internal/infrastructure/database"
	"github.com/Aidin1998/apiregistry/pkg/errors"
	"github.com/Aidin1998/apiregistry/pkg/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind errors.Kind
	}{
		{"postgres unique violation", &pgconn.PgError{Code: dbutil.DuplicateKeyErrorCode}, errors.KindConflict},
		{"wrapped postgres unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), errors.KindConflict},
		{"postgres other violation", &pgconn.PgError{Code: "23502"}, errors.KindInternal},
		{"sqlite unique violation", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, errors.KindConflict},
		{"sqlite not null violation", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, errors.KindInternal},
		{"gorm translated duplicate", gorm.ErrDuplicatedKey, errors.KindConflict},
		{"gorm record not found", gorm.ErrRecordNotFound, errors.KindNotFound},
		{"connectivity", stderrors.New("dial tcp: connection refused"), errors.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dbutil.WrapError(tt.err)

			var tagged *errors.Error
			require.True(t, errors.As(err, &tagged), "expected a tagged error, got %T", err)
			assert.Equal(t, tt.kind, tagged.Kind)
			assert.True(t, errors.Is(err, tt.err), "cause must stay reachable")
		})
	}
}

func TestWrapError_PassThrough(t *testing.T) {
	assert.NoError(t, dbutil.WrapError(nil))

	tagged := errors.NotFound.Explain("gone")
	assert.Same(t, tagged, dbutil.WrapError(tagged))
}

func TestWrapError_RealSQLiteUniqueIndex(t *testing.T) {
	db := database.NewTestDB(t)

	require.NoError(t, db.Create(&models.APIEndpoint{Name: "dup", Path: "/a", Method: "GET"}).Error)
	err := db.Create(&models.APIEndpoint{Name: "dup", Path: "/b", Method: "POST"}).Error
	require.Error(t, err)

	assert.Equal(t, errors.KindConflict, errors.KindOf(dbutil.WrapError(err)))
}

func TestFindOne(t *testing.T) {
	db := database.NewTestDB(t)

	ep := &models.APIEndpoint{Name: "one", Path: "/one", Method: "GET"}
	require.NoError(t, db.Create(ep).Error)

	found, err := dbutil.FindOne[models.APIEndpoint](db.Where("id = ?", ep.ID))
	require.NoError(t, err)
	assert.Equal(t, "one", found.Name)

	missing, err := dbutil.FindOne[models.APIEndpoint](db.Where("id = ?", uuid.New()))
	assert.Nil(t, missing)
	assert.True(t, errors.Is(err, errors.NotFound))
}
