package endpoints

import (
	"context"

	"github.com/Aidin1998/apiregistry/common/dbutil"
	"github.com/Aidin1998/apiregistry/pkg/errors"
	"github.com/Aidin1998/apiregistry/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the data-access client for api_endpoints. Every error it
// returns is a *errors.Error produced by dbutil.WrapError.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over the shared connection pool.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindMany returns every record, newest first.
func (r *Repository) FindMany(ctx context.Context) ([]models.APIEndpoint, error) {
	endpoints := make([]models.APIEndpoint, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&endpoints).Error; err != nil {
		return nil, dbutil.WrapError(err)
	}
	return endpoints, nil
}

// FindUnique returns the record with the given id or errors.NotFound.
func (r *Repository) FindUnique(ctx context.Context, id uuid.UUID) (*models.APIEndpoint, error) {
	return dbutil.FindOne[models.APIEndpoint](r.db.WithContext(ctx).Where("id = ?", id))
}

// Create inserts endpoint. A duplicate name yields errors.Conflict.
func (r *Repository) Create(ctx context.Context, endpoint *models.APIEndpoint) error {
	return dbutil.WrapError(r.db.WithContext(ctx).Create(endpoint).Error)
}

// Update overwrites the mutable columns of endpoint, matched by id.
func (r *Repository) Update(ctx context.Context, endpoint *models.APIEndpoint) error {
	result := r.db.WithContext(ctx).
		Model(&models.APIEndpoint{}).
		Where("id = ?", endpoint.ID).
		Updates(map[string]any{
			"name":        endpoint.Name,
			"path":        endpoint.Path,
			"method":      endpoint.Method,
			"description": endpoint.Description,
			"updated_at":  endpoint.UpdatedAt,
		})
	if result.Error != nil {
		return dbutil.WrapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound
	}
	return nil
}

// Delete removes the record with the given id.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.APIEndpoint{})
	if result.Error != nil {
		return dbutil.WrapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound
	}
	return nil
}

// Transaction runs fn against a repository bound to a single transaction.
// The transaction commits when fn returns nil.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
	return dbutil.WrapError(err)
}
