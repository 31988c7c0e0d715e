package models

// Follow is a directed edge: FollowerID follows FollowingID.
type Follow struct {
	FollowerID  string `json:"followerId"`
	FollowingID string `json:"followingId"`
	CreatedAt   string `json:"createdAt"`
}
