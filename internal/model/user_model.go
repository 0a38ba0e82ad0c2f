package model

import "time"

type UserModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255)" json:"name"`
	Username    string    `gorm:"type:varchar(100);uniqueIndex" json:"username"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Country     string    `gorm:"type:varchar(100)" json:"country"`
	AccountType string    `gorm:"type:varchar(50)" json:"account_type"`
	Role        string    `gorm:"type:varchar(50)" json:"role"`
	Blocked     bool      `gorm:"not null;default:false" json:"blocked"`
	CreatedAt   time.Time `json:"created_at"`
}

func (UserModel) TableName() string {
	return "users"
}
