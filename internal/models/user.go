package models

import "time"

// User statuses.
const (
	UserStatusActive  = "active"
	UserStatusBlocked = "blocked"
)

// User represents a customer account of the store.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password  string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Status    string    `json:"status" gorm:"type:varchar(20);default:active;index"`
	Address   *Address  `json:"address,omitempty" gorm:"type:text;serializer:json"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsBlocked reports whether an admin has blocked the account.
func (u *User) IsBlocked() bool {
	return u.Status == UserStatusBlocked
}

// DisplayName is the name shown for the user in admin listings.
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	if u.Email != "" {
		return u.Email
	}
	return "User " + u.ID
}
