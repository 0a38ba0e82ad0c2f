package persistent

import (
	"time"

	"github.com/enaszrekat/reuse-market-app/internal/entity"
	"github.com/enaszrekat/reuse-market-app/internal/model"

	"gorm.io/gorm"
)

type AdminRepository interface {
	CountUsers() (int64, error)
	CountUsersRegisteredToday() (int64, error)
	CountProducts() (int64, error)
	CountPendingProducts() (int64, error)
	CountMessagesToday() (int64, error)
	CountNotificationsToday() (int64, error)
	RecentUsers(limit int) ([]*entity.ActivityUser, error)
	MessageVolumeByDay(days int) ([]entity.MessageVolume, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountUsersRegisteredToday() (int64, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("created_at::date = CURRENT_DATE").Count(&count).Error
	return count, err
}

func (r *adminRepository) CountProducts() (int64, error) {
	var count int64
	err := r.db.Model(&model.ProductModel{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountPendingProducts() (int64, error) {
	var count int64
	err := r.db.Model(&model.ProductModel{}).Where("status = ?", string(entity.StatusPending)).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountMessagesToday() (int64, error) {
	var count int64
	err := r.db.Model(&model.MessageModel{}).Where("created_at::date = CURRENT_DATE").Count(&count).Error
	return count, err
}

func (r *adminRepository) CountNotificationsToday() (int64, error) {
	var count int64
	err := r.db.Model(&model.NotificationModel{}).Where("created_at::date = CURRENT_DATE").Count(&count).Error
	return count, err
}

func (r *adminRepository) RecentUsers(limit int) ([]*entity.ActivityUser, error) {
	var userModels []model.UserModel
	err := r.db.Order("created_at DESC").Limit(limit).Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entity.ActivityUser, len(userModels))
	for i := range userModels {
		users[i] = ToActivityUserEntity(&userModels[i])
	}
	return users, nil
}

type messageVolumeRow struct {
	Date  time.Time
	Count int64
}

func (r *adminRepository) MessageVolumeByDay(days int) ([]entity.MessageVolume, error) {
	var rows []messageVolumeRow
	err := r.db.Raw(`
SELECT created_at::date AS date, COUNT(*) AS count
FROM messages
WHERE created_at >= NOW() - (? * INTERVAL '1 day')
GROUP BY created_at::date
ORDER BY date DESC
LIMIT ?`, days, days).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	volumes := make([]entity.MessageVolume, len(rows))
	for i, row := range rows {
		volumes[i] = entity.MessageVolume{
			Date:  row.Date.Format("2006-01-02"),
			Count: row.Count,
		}
	}
	return volumes, nil
}
