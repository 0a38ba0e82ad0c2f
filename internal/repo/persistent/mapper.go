package persistent

import (
	"github.com/enaszrekat/reuse-market-app/internal/entity"
	"github.com/enaszrekat/reuse-market-app/internal/model"
	"github.com/enaszrekat/reuse-market-app/pkg/images"
)

// DefaultAccountType labels accounts where both the account_type and the
// legacy role column are empty.
const DefaultAccountType = "Regular User"

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	name := m.Name
	if name == "" {
		name = m.Username
	}
	if name == "" {
		name = "User"
	}

	accountType := m.AccountType
	if accountType == "" {
		accountType = m.Role
	}
	if accountType == "" {
		accountType = DefaultAccountType
	}

	return &entity.User{
		ID:          m.ID,
		Name:        name,
		Username:    m.Username,
		Email:       m.Email,
		Country:     m.Country,
		AccountType: accountType,
		Blocked:     m.Blocked,
		CreatedAt:   m.CreatedAt,
	}
}

func ToActivityUserEntity(m *model.UserModel) *entity.ActivityUser {
	if m == nil {
		return nil
	}

	return &entity.ActivityUser{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Country:   m.Country,
		CreatedAt: m.CreatedAt,
	}
}

// ToProductEntity shapes one aggregated listing row. statusDefault covers
// rows whose status column is empty; approved-only queries never hit it in
// practice but the listing contract documents it.
func ToProductEntity(row *productRow, statusDefault string) *entity.Product {
	if row == nil {
		return nil
	}

	raw := ""
	if row.Images != nil {
		raw = *row.Images
	}
	refs := images.Normalize(raw)

	return &entity.Product{
		ID:            row.ID,
		Title:         stringOr(row.Title, ""),
		Description:   stringOr(row.Description, ""),
		Price:         row.Price,
		Type:          stringOr(row.Type, "sell"),
		Status:        stringOr(row.Status, statusDefault),
		UserID:        row.UserID,
		CreatedAt:     row.CreatedAt,
		OwnerName:     row.OwnerName,
		OwnerUsername: row.OwnerUsername,
		Images:        refs,
		Image:         images.Primary(refs),
	}
}

func ToMessageEntity(m *model.MessageModel) *entity.Message {
	if m == nil {
		return nil
	}

	return &entity.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		ReceiverID:     m.ReceiverID,
		Message:        m.Message,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
