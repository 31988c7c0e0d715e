package models

type Rating struct {
	ID        string           `json:"id"`
	Status    ModerationStatus `json:"status"`
	PlaceID   string           `json:"placeId"`
	UserID    string           `json:"userId"`
	Value     int              `json:"value"`
	CreatedAt string           `json:"createdAt"`
}
