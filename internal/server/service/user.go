// Package service enforces the record service's business rules between the
// HTTP handlers and the repository.
package service

import (
	"context"
	"fmt"

	"github.com/siddharthpandey07/UserManage/internal/apperror"
	"github.com/siddharthpandey07/UserManage/internal/logging"
	"github.com/siddharthpandey07/UserManage/internal/models"
	"github.com/siddharthpandey07/UserManage/internal/server/repository"
)

// MinFieldLength applies to name, username and a non-empty company name,
// matching the client-side gate.
const MinFieldLength = 3

type UserService struct {
	repo repository.UserRepository
	log  logging.Logger
}

func NewUserService(repo repository.UserRepository, log logging.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new user. A missing username is derived from
// the name, mirroring what the client presents.
func (s *UserService) Create(ctx context.Context, u models.User) (*models.User, error) {
	u.ID = 0 // the server assigns identifiers
	if u.Username == "" {
		u.Username = models.DeriveUsername(u.Name)
	}

	if err := validate(u); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &u); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user created", "id", u.ID, "username", u.Username)
	return &u, nil
}

// Update validates and replaces the user with the given ID. The ID in the
// URL wins over whatever the body carries.
func (s *UserService) Update(ctx context.Context, id int64, u models.User) (*models.User, error) {
	u.ID = id

	if err := validate(u); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &u); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user updated", "id", u.ID)
	return &u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "user deleted", "id", id)
	return nil
}

func validate(u models.User) error {
	required := []struct {
		field string
		value string
	}{
		{"name", u.Name},
		{"email", u.Email},
		{"phone", u.Phone},
		{"username", u.Username},
		{"address.street", u.Address.Street},
		{"address.city", u.Address.City},
	}
	for _, f := range required {
		if f.value == "" {
			return apperror.ValidationFailed(f.field, fmt.Sprintf("%s is required", f.field))
		}
	}

	minLength := []struct {
		field string
		value string
	}{
		{"name", u.Name},
		{"username", u.Username},
		{"company.name", u.Company.Name},
	}
	for _, f := range minLength {
		if f.value != "" && len(f.value) < MinFieldLength {
			return apperror.ValidationFailed(f.field,
				fmt.Sprintf("%s must be at least %d characters", f.field, MinFieldLength))
		}
	}
	return nil
}
