package persistent

import (
	"github.com/enaszrekat/reuse-market-app/internal/entity"
	"github.com/enaszrekat/reuse-market-app/internal/model"

	"gorm.io/gorm"
)

type MessageRepository interface {
	ConversationExists(id int64) (bool, error)
	Create(conversationID, senderID, receiverID int64, body string) (int64, error)
	GetByID(id int64) (*entity.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) ConversationExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.ConversationModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts the message with a server-assigned creation timestamp and
// the unread flag, and returns the generated identifier.
func (r *messageRepository) Create(conversationID, senderID, receiverID int64, body string) (int64, error) {
	messageModel := &model.MessageModel{
		ConversationID: conversationID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Message:        body,
		IsRead:         false,
	}
	if err := r.db.Create(messageModel).Error; err != nil {
		return 0, err
	}
	return messageModel.ID, nil
}

func (r *messageRepository) GetByID(id int64) (*entity.Message, error) {
	var messageModel model.MessageModel
	if err := r.db.Where("id = ?", id).First(&messageModel).Error; err != nil {
		return nil, err
	}
	return ToMessageEntity(&messageModel), nil
}
