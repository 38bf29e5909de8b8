package endpoints

import (
	"context"
	"time"

	"github.com/Aidin1998/apiregistry/pkg/errors"
	"github.com/Aidin1998/apiregistry/pkg/models"
	"github.com/Aidin1998/apiregistry/pkg/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// User-facing messages
const (
	MsgMissingFields = "Missing required fields: name, path, method"
	MsgNotFound      = "API endpoint not found"
	MsgDuplicateName = "An API endpoint with this name already exists."
)

// Now is the default clock. Postgres timestamps hold microseconds, so readings
// are truncated to match what a later read returns.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Service validates endpoint input and runs each operation against the repository.
type Service struct {
	logger    *zap.Logger
	repo      *Repository
	validator *validation.Validator
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the clock used for createdAt and updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new endpoint service
func NewService(logger *zap.Logger, repo *Repository, opts ...Option) *Service {
	svc := &Service{
		logger:    logger.Named("endpoints"),
		repo:      repo,
		validator: validation.NewValidator(),
		now:       Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// List returns all endpoints ordered by creation time, newest first.
func (s *Service) List(ctx context.Context) ([]models.APIEndpoint, error) {
	return s.repo.FindMany(ctx)
}

// Create validates input and inserts a new endpoint.
func (s *Service) Create(ctx context.Context, input models.EndpointInput) (*models.APIEndpoint, error) {
	if err := s.validator.ValidateStruct(&input, MsgMissingFields); err != nil {
		return nil, err
	}

	now := s.now()
	endpoint := &models.APIEndpoint{
		ID:          uuid.New(),
		Name:        input.Name,
		Path:        input.Path,
		Method:      input.Method,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, endpoint); err != nil {
		return nil, explain(err)
	}

	s.logger.Debug("endpoint created",
		zap.String("id", endpoint.ID.String()),
		zap.String("name", endpoint.Name))
	return endpoint, nil
}

// Get returns the endpoint with the given id.
func (s *Service) Get(ctx context.Context, id string) (*models.APIEndpoint, error) {
	endpointID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	endpoint, err := s.repo.FindUnique(ctx, endpointID)
	if err != nil {
		return nil, explain(err)
	}
	return endpoint, nil
}

// Update replaces name, path and method of an existing endpoint and refreshes
// updatedAt. A nil description keeps the stored one.
func (s *Service) Update(ctx context.Context, id string, input models.EndpointInput) (*models.APIEndpoint, error) {
	if err := s.validator.ValidateStruct(&input, MsgMissingFields); err != nil {
		return nil, err
	}

	endpointID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var updated *models.APIEndpoint
	err = s.repo.Transaction(ctx, func(tx *Repository) error {
		existing, err := tx.FindUnique(ctx, endpointID)
		if err != nil {
			return err
		}

		existing.Name = input.Name
		existing.Path = input.Path
		existing.Method = input.Method
		if input.Description != nil {
			existing.Description = input.Description
		}
		existing.UpdatedAt = s.now()

		if err := tx.Update(ctx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, explain(err)
	}

	s.logger.Debug("endpoint updated", zap.String("id", updated.ID.String()))
	return updated, nil
}

// Delete removes an existing endpoint.
func (s *Service) Delete(ctx context.Context, id string) error {
	endpointID, err := parseID(id)
	if err != nil {
		return err
	}

	err = s.repo.Transaction(ctx, func(tx *Repository) error {
		if _, err := tx.FindUnique(ctx, endpointID); err != nil {
			return err
		}
		return tx.Delete(ctx, endpointID)
	})
	if err != nil {
		return explain(err)
	}

	s.logger.Debug("endpoint deleted", zap.String("id", id))
	return nil
}

// parseID rejects ids that cannot name a stored record.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errors.NotFound.Explain(MsgNotFound).Wrap(err)
	}
	return parsed, nil
}

// explain attaches the user-facing message for not-found and conflict errors.
func explain(err error) error {
	switch errors.KindOf(err) {
	case errors.KindNotFound:
		return errors.NotFound.Explain(MsgNotFound).Wrap(err)
	case errors.KindConflict:
		return errors.Conflict.Explain(MsgDuplicateName).Wrap(err)
	default:
		return err
	}
}
