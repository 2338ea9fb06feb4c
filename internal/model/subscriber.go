package model

type SubscriptionStatus string

const (
	Subscribed   SubscriptionStatus = "subscribed"
	Unsubscribed SubscriptionStatus = "unsubscribed"
)

type Subscriber struct {
	BaseModel
	UserID string             `db:"user_id" json:"user_id"`
	Status SubscriptionStatus `db:"status" json:"status"`
	Email  string             `db:"email" json:"email,omitempty"` // joined from users
	Name   string             `db:"name" json:"name,omitempty"`   // joined from users
}
