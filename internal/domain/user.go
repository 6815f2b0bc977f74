package domain

import "context"

// User represents an account holder in the system.
//
// PinHash stores the bcrypt hash of the user's transaction PIN; it is empty
// until the user sets a PIN through the pin module. BonusTimes counts the
// remaining discounted transfer uses and is decremented on each successful
// money mutation while positive.
type User struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	PinHash      string `gorm:"size:255" json:"-"`
	BonusTimes   int    `gorm:"not null;default:0" json:"bonus_times"`
}

// HasPin reports whether the user has set a transaction PIN.
func (u *User) HasPin() bool {
	return u.PinHash != ""
}

// UserRepository defines the data access interface for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, req PageRequest) (*PageResult[User], error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
}

// UserService defines the business logic interface for users.
type UserService interface {
	CreateUser(ctx context.Context, name, email string) (*User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
	ListUsers(ctx context.Context, req PageRequest) (*PageResult[User], error)
	UpdateUser(ctx context.Context, id uint, name, email string) (*User, error)
	DeleteUser(ctx context.Context, id uint) error
}
