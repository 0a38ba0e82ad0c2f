package entity

import "time"

// User is the lookup-surface view of an account. AccountType is already
// resolved from the legacy account_type/role column pair.
type User struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Country     string    `json:"country"`
	AccountType string    `json:"account_type"`
	Blocked     bool      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActivityUser is the trimmed registration record shown on the admin
// dashboard activity feed.
type ActivityUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}
