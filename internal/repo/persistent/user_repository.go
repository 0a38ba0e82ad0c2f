package persistent

import (
	"github.com/enaszrekat/reuse-market-app/internal/entity"
	"github.com/enaszrekat/reuse-market-app/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id int64) (*entity.User, error)
	SetBlocked(id int64, blocked bool) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id int64) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

// SetBlocked flips the blocked flag and reports whether the user existed.
func (r *userRepository) SetBlocked(id int64, blocked bool) (bool, error) {
	result := r.db.Model(&model.UserModel{}).Where("id = ?", id).Update("blocked", blocked)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
