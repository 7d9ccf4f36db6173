package repo

import (
	"context"
	"errors"

	"github.com/igrii/tienda/internal/models"
)

var ErrUserAlreadyExist = errors.New("email ya registrado")

func (r *GormRepo) FindUsuarioByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var user models.Usuario
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUsuarioIfNotExists inserts the user unless the email is taken.
// FirstOrCreate runs the lookup and insert in one statement chain so a
// duplicate surfaces as ErrUserAlreadyExist instead of a raw constraint
// violation.
func (r *GormRepo) CreateUsuarioIfNotExists(ctx context.Context, u *models.Usuario) error {
	tx := r.DB.WithContext(ctx).Where("email = ?", u.Email).FirstOrCreate(u)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrUserAlreadyExist
	}
	return nil
}
