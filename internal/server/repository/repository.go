// Package repository defines the storage interface of the record service.
package repository

import (
	"context"

	"github.com/siddharthpandey07/UserManage/internal/models"
)

// UserRepository stores user records. Create assigns the ID on the passed
// record; Update reports apperror.ErrNotFound for unknown IDs; Delete is
// idempotent.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int64) error
}
