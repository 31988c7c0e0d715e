package models

type NotificationType string

const (
	NotificationApproval NotificationType = "approval"
	NotificationFollow   NotificationType = "follow"
	NotificationLike     NotificationType = "like"
	NotificationRating   NotificationType = "rating"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt string           `json:"createdAt"`
	RelatedID string           `json:"relatedId,omitempty"`
}
