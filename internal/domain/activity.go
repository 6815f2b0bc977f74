package domain

import "context"

// Activity action names recorded in the recent-activity feed.
const (
	ActivitySendMoney  = "send_money"
	ActivityAddMoney   = "add_money"
	ActivityCreatePin  = "create_pin_code"
	ActivityConfirmPin = "active_pin_code"
)

// Activity is a recent-activity feed entry.
type Activity struct {
	BaseModel
	UserID     uint   `gorm:"index;not null" json:"user_id"`
	ActionName string `gorm:"size:64;not null" json:"action_name"`
	Email      string `gorm:"size:255" json:"email"`
}

// ActivityRepository defines the data access interface for activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	ListByUser(ctx context.Context, userID uint) ([]Activity, error)
}

// ActivityRecorder records activity entries, possibly deferred. Implementations
// must tolerate recording after the originating request has completed.
type ActivityRecorder interface {
	Record(userID uint, actionName, email string)
}

// Notification is a per-user message created by money mutations.
type Notification struct {
	BaseModel
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Message string `gorm:"size:512;not null" json:"message"`
	IsRead  bool   `gorm:"not null;default:false" json:"is_read"`
}

// NotificationRepository defines the data access interface for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID uint, req PageRequest) (*PageResult[Notification], error)
	MarkRead(ctx context.Context, userID, id uint) error
}
