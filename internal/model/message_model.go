package model

import "time"

type ConversationModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID *int64    `gorm:"index" json:"product_id"`
	BuyerID   int64     `gorm:"not null;index" json:"buyer_id"`
	SellerID  int64     `gorm:"not null;index" json:"seller_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ConversationModel) TableName() string {
	return "conversations"
}

type MessageModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID int64     `gorm:"not null;index" json:"conversation_id"`
	SenderID       int64     `gorm:"not null" json:"sender_id"`
	ReceiverID     int64     `gorm:"not null" json:"receiver_id"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	IsRead         bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

func (MessageModel) TableName() string {
	return "messages"
}

type NotificationModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
