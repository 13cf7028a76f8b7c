package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tavolo/tavolo-api/internal/domain/enum"
)

// User represents a staff account. PIN is a bcrypt hash of the short numeric
// PIN used for the restricted waiter quick login; it is empty for accounts
// without PIN access.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Username  string         `gorm:"size:255;unique;not null" json:"username"`
	FullName  string         `gorm:"size:255" json:"full_name"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	PIN       string         `gorm:"size:255" json:"-"`
	Role      enum.UserRole  `gorm:"size:20;not null;default:'staff'" json:"role"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// HasPIN reports whether the account can use the PIN quick login
func (u *User) HasPIN() bool {
	return u.PIN != ""
}
