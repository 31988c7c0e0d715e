package types

import (
	"github.com/mango-abandoned/api-go/models"
)

const (
	UPLOAD_XP    = 100
	LIKE_XP      = 5
	RATING_XP    = 10
	XP_PER_LEVEL = 1000
)

// Action is something a user did that earns experience.
type Action string

const (
	ActionUpload Action = "upload"
	ActionLike   Action = "like"
	ActionRating Action = "rating"
)

type PointsConfig struct {
	UploadXP   int
	LikeXP     int
	RatingXP   int
	XPPerLevel int
}

func GetPointsConfig() PointsConfig {
	return PointsConfig{
		UploadXP:   UPLOAD_XP,
		LikeXP:     LIKE_XP,
		RatingXP:   RATING_XP,
		XPPerLevel: XP_PER_LEVEL,
	}
}

// XPFor returns the delta for an action; ok is false for unknown actions.
func (c PointsConfig) XPFor(action Action) (xp int, ok bool) {
	switch action {
	case ActionUpload:
		return c.UploadXP, true
	case ActionLike:
		return c.LikeXP, true
	case ActionRating:
		return c.RatingXP, true
	}
	return 0, false
}

// Level is floor(xp/XPPerLevel)+1 with no upper bound.
func (c PointsConfig) Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/c.XPPerLevel + 1
}

// CalculateLevel uses the default points config.
func CalculateLevel(xp int) int {
	return GetPointsConfig().Level(xp)
}

// BadgeMetric is the aggregate a badge threshold is compared against.
type BadgeMetric string

const (
	MetricApprovedPlaces  BadgeMetric = "places"
	MetricTotalLikes      BadgeMetric = "likes"
	MetricApprovedRatings BadgeMetric = "ratings"
)

type BadgeRule struct {
	Badge     models.Badge
	Metric    BadgeMetric
	Threshold int
}

// AuthorStats aggregates a user's approved places.
type AuthorStats struct {
	ApprovedPlaces  int
	TotalLikes      int
	ApprovedRatings int
}

func (s AuthorStats) value(metric BadgeMetric) int {
	switch metric {
	case MetricApprovedPlaces:
		return s.ApprovedPlaces
	case MetricTotalLikes:
		return s.TotalLikes
	case MetricApprovedRatings:
		return s.ApprovedRatings
	}
	return 0
}

// Earned reports whether stats reach the rule threshold.
func (r BadgeRule) Earned(stats AuthorStats) bool {
	return stats.value(r.Metric) >= r.Threshold
}

// GetBadgeRules returns the badge catalog in award order.
func GetBadgeRules() []BadgeRule {
	return []BadgeRule{
		{
			Badge:     models.Badge{ID: "first-upload", Name: "Первая заброшка", Description: "Первое одобренное место", Icon: "🏚️"},
			Metric:    MetricApprovedPlaces,
			Threshold: 1,
		},
		{
			Badge:     models.Badge{ID: "explorer", Name: "Исследователь", Description: "5 одобренных мест", Icon: "🧭"},
			Metric:    MetricApprovedPlaces,
			Threshold: 5,
		},
		{
			Badge:     models.Badge{ID: "veteran", Name: "Ветеран", Description: "20 одобренных мест", Icon: "🎖️"},
			Metric:    MetricApprovedPlaces,
			Threshold: 20,
		},
		{
			Badge:     models.Badge{ID: "legend", Name: "Легенда", Description: "50 одобренных мест", Icon: "👑"},
			Metric:    MetricApprovedPlaces,
			Threshold: 50,
		},
		{
			Badge:     models.Badge{ID: "popular", Name: "Популярный", Description: "100 лайков на ваших местах", Icon: "❤️"},
			Metric:    MetricTotalLikes,
			Threshold: 100,
		},
		{
			Badge:     models.Badge{ID: "rated", Name: "Оцененный", Description: "50 одобренных оценок", Icon: "⭐"},
			Metric:    MetricApprovedRatings,
			Threshold: 50,
		},
	}
}

// GetBadges returns just the badges of the catalog.
func GetBadges() []models.Badge {
	rules := GetBadgeRules()
	badges := make([]models.Badge, len(rules))
	for i, rule := range rules {
		badges[i] = rule.Badge
	}
	return badges
}

// NewlyEarnedBadges lists badges whose threshold is met and which the user does not hold yet.
func NewlyEarnedBadges(user *models.User, stats AuthorStats) []models.Badge {
	var earned []models.Badge
	for _, rule := range GetBadgeRules() {
		if rule.Earned(stats) && !user.HasBadge(rule.Badge.ID) {
			earned = append(earned, rule.Badge)
		}
	}
	return earned
}
