package models

type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Nickname  string  `json:"nickname"`
	Avatar    string  `json:"avatar"`
	Level     int     `json:"level"`
	XP        int     `json:"xp"`
	Badges    []Badge `json:"badges"`
	CreatedAt string  `json:"createdAt"`
	IsAdmin   bool    `json:"isAdmin,omitempty"`
}

// HasBadge reports whether a badge with the given id is already held.
func (u *User) HasBadge(badgeID string) bool {
	for _, b := range u.Badges {
		if b.ID == badgeID {
			return true
		}
	}
	return false
}
