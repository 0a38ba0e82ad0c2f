package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/enaszrekat/reuse-market-app/internal/entity"
	"github.com/enaszrekat/reuse-market-app/internal/repo/persistent"
	"github.com/enaszrekat/reuse-market-app/pkg/logger"
	"github.com/enaszrekat/reuse-market-app/pkg/queue"

	"gorm.io/gorm"
)

type MessageUseCase interface {
	SendMessage(conversationID, senderID, receiverID int64, body string) (*entity.Message, error)
}

type messageUseCase struct {
	messageRepo persistent.MessageRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewMessageUseCase(messageRepo persistent.MessageRepository, queueClient *queue.Client, logger *logger.Logger) MessageUseCase {
	return &messageUseCase{
		messageRepo: messageRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

// SendMessage validates the candidate message, persists it and re-reads the
// row by its generated id before reporting success. The insert is never
// trusted on its own: an earlier deployment of this backend saw the driver
// swallow failed inserts, so the verifying read stays.
//
// The conversation existence check and the insert are separate round trips.
// A conversation deleted between the two slips through; that race is
// accepted here rather than papered over with a transaction.
func (uc *messageUseCase) SendMessage(conversationID, senderID, receiverID int64, body string) (*entity.Message, error) {
	if conversationID <= 0 {
		return nil, ErrInvalidConversation
	}
	if senderID <= 0 {
		return nil, ErrInvalidSender
	}
	if receiverID <= 0 {
		return nil, ErrInvalidReceiver
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}

	exists, err := uc.messageRepo.ConversationExists(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check conversation: %w", err)
	}
	if !exists {
		return nil, ErrConversationNotFound
	}

	messageID, err := uc.messageRepo.Create(conversationID, senderID, receiverID, body)
	if err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}

	message, err := uc.messageRepo.GetByID(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uc.logger.Error("Message %d not found after insert", messageID)
			return nil, ErrMessageNotPersisted
		}
		return nil, fmt.Errorf("failed to verify message %d: %w", messageID, err)
	}

	if uc.queueClient != nil {
		go uc.publishNotification(message)
	}

	return message, nil
}

func (uc *messageUseCase) publishNotification(message *entity.Message) {
	task := map[string]interface{}{
		"type":            "new_message",
		"message_id":      message.ID,
		"conversation_id": message.ConversationID,
		"sender_id":       message.SenderID,
		"receiver_id":     message.ReceiverID,
	}
	if err := uc.queueClient.PublishMessageNotification(task); err != nil {
		uc.logger.Error("Failed to publish message notification for message %d: %v", message.ID, err)
	}
}
