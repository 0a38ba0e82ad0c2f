package entity

import "time"

// Message is a persisted conversation message as read back after insert.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	SenderID       int64     `json:"sender_id"`
	ReceiverID     int64     `json:"receiver_id"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// MessageVolume is a per-day message count for the admin activity feed.
type MessageVolume struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
