package usecase

import (
	"fmt"

	"github.com/enaszrekat/reuse-market-app/internal/repo/persistent"
	"github.com/enaszrekat/reuse-market-app/pkg/logger"
)

const (
	recentUserLimit   = 10
	messageVolumeDays = 7
)

type AdminUseCase interface {
	GetStats() (map[string]interface{}, error)
	GetRecentActivity() (map[string]interface{}, error)
	SetUserBlocked(userID int64, blocked bool) error
}

type adminUseCase struct {
	adminRepo persistent.AdminRepository
	userRepo  persistent.UserRepository
	logger    *logger.Logger

	// Static deployment facts; replaces the table probing the legacy
	// backend ran on every request.
	messagesEnabled      bool
	notificationsEnabled bool
}

func NewAdminUseCase(adminRepo persistent.AdminRepository, userRepo persistent.UserRepository, messagesEnabled, notificationsEnabled bool, logger *logger.Logger) AdminUseCase {
	return &adminUseCase{
		adminRepo:            adminRepo,
		userRepo:             userRepo,
		logger:               logger,
		messagesEnabled:      messagesEnabled,
		notificationsEnabled: notificationsEnabled,
	}
}

func (uc *adminUseCase) GetStats() (map[string]interface{}, error) {
	newUsersToday, err := uc.adminRepo.CountUsersRegisteredToday()
	if err != nil {
		return nil, fmt.Errorf("failed to count new users: %w", err)
	}

	totalUsers, err := uc.adminRepo.CountUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalProducts, err := uc.adminRepo.CountProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	pendingProducts, err := uc.adminRepo.CountPendingProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to count pending products: %w", err)
	}

	newMessagesToday := int64(0)
	if uc.messagesEnabled {
		newMessagesToday, err = uc.adminRepo.CountMessagesToday()
		if err != nil {
			return nil, fmt.Errorf("failed to count messages: %w", err)
		}
	}

	newNotificationsToday := int64(0)
	if uc.notificationsEnabled {
		newNotificationsToday, err = uc.adminRepo.CountNotificationsToday()
		if err != nil {
			return nil, fmt.Errorf("failed to count notifications: %w", err)
		}
	}

	return map[string]interface{}{
		"new_users_today":         newUsersToday,
		"total_users":             totalUsers,
		"total_products":          totalProducts,
		"pending_products":        pendingProducts,
		"new_messages_today":      newMessagesToday,
		"new_notifications_today": newNotificationsToday,
	}, nil
}

func (uc *adminUseCase) GetRecentActivity() (map[string]interface{}, error) {
	recentUsers, err := uc.adminRepo.RecentUsers(recentUserLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent users: %w", err)
	}

	activity := map[string]interface{}{
		"recent_users":    recentUsers,
		"recent_messages": []interface{}{},
	}

	if uc.messagesEnabled {
		volumes, err := uc.adminRepo.MessageVolumeByDay(messageVolumeDays)
		if err != nil {
			return nil, fmt.Errorf("failed to load message volume: %w", err)
		}
		activity["recent_messages"] = volumes
	}

	return activity, nil
}

func (uc *adminUseCase) SetUserBlocked(userID int64, blocked bool) error {
	if userID <= 0 {
		return ErrInvalidUser
	}

	found, err := uc.userRepo.SetBlocked(userID, blocked)
	if err != nil {
		return fmt.Errorf("failed to update blocked flag for user %d: %w", userID, err)
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}
