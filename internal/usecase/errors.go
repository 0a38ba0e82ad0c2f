package usecase

import "errors"

// Sentinel errors for the request validation and persistence taxonomy.
// Handlers map these to stable user-facing messages; anything else is a
// server failure whose detail stays in the logs.
var (
	ErrInvalidConversation  = errors.New("invalid conversation id")
	ErrInvalidSender        = errors.New("invalid sender id")
	ErrInvalidReceiver      = errors.New("invalid receiver id")
	ErrEmptyMessage         = errors.New("empty message body")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotPersisted  = errors.New("message not found after insert")

	ErrInvalidUser  = errors.New("invalid user id")
	ErrUserNotFound = errors.New("user not found")
)
