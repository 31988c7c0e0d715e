package models

type SecurityLevel string

const (
	SecurityNone    SecurityLevel = "none"
	SecurityPartial SecurityLevel = "partial"
	SecurityFull    SecurityLevel = "full"
)

// Valid reports whether the level is one of the known values.
func (s SecurityLevel) Valid() bool {
	switch s {
	case SecurityNone, SecurityPartial, SecurityFull:
		return true
	}
	return false
}

// ModerationStatus is shared by places and ratings.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
)

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type AbandonedPlace struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Images        []string         `json:"images"`
	Location      Location         `json:"location"`
	SecurityLevel SecurityLevel    `json:"securityLevel"`
	AuthorID      string           `json:"authorId"`
	Author        string           `json:"author"`
	Status        ModerationStatus `json:"status"`
	CreatedAt     string           `json:"createdAt"`
	Likes         []string         `json:"likes"`
	Dislikes      []string         `json:"dislikes"`
	Rating        []Rating         `json:"rating"`
	Tags          []string         `json:"tags"`
	// LikeRewards holds users whose like already earned the author experience.
	LikeRewards   []string         `json:"likeRewards,omitempty"`
}

func (p *AbandonedPlace) IsApproved() bool {
	return p.Status == StatusApproved
}

// ApprovedRatings counts embedded ratings that passed moderation.
func (p *AbandonedPlace) ApprovedRatings() int {
	count := 0
	for _, r := range p.Rating {
		if r.Status == StatusApproved {
			count++
		}
	}
	return count
}

// AverageRating is the mean of approved rating values, 0 when there are none.
func (p *AbandonedPlace) AverageRating() float64 {
	sum, count := 0, 0
	for _, r := range p.Rating {
		if r.Status == StatusApproved {
			sum += r.Value
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
