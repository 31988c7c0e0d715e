package services

import (
	"context"
	"sort"

	"github.com/mango-abandoned/api-go/repositories"
	"github.com/mango-abandoned/api-go/utils"
)

const (
	DefaultLeaderboardPageSize = 10
	MaxLeaderboardPageSize     = 50
)

// LeaderboardEntry is one ranked user.
type LeaderboardEntry struct {
	UserID   string `json:"userId"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
	Badges   int    `json:"badges"`
	Rank     int    `json:"rank"`
}

type LeaderboardPage struct {
	Entries    []LeaderboardEntry `json:"leaderboard"`
	UserRank   *LeaderboardEntry  `json:"userRank,omitempty"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalItems int                `json:"totalItems"`
}

type LeaderboardService struct {
	userRepo *repositories.UserRepository
}

func NewLeaderboardService(userRepo *repositories.UserRepository) *LeaderboardService {
	return &LeaderboardService{userRepo: userRepo}
}

// Ranking orders non-admin users by xp with standard competition ranks:
// users with equal xp share a rank and the next rank skips accordingly.
func (s *LeaderboardService) Ranking(ctx context.Context) ([]LeaderboardEntry, error) {
	users, err := s.userRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	entries := []LeaderboardEntry{}
	createdAt := map[string]string{}
	for _, u := range users {
		if u.IsAdmin {
			continue
		}
		createdAt[u.ID] = u.CreatedAt
		entries = append(entries, LeaderboardEntry{
			UserID:   u.ID,
			Nickname: u.Nickname,
			Avatar:   u.Avatar,
			XP:       u.XP,
			Level:    u.Level,
			Badges:   len(u.Badges),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.XP != b.XP {
			return a.XP > b.XP
		}
		if createdAt[a.UserID] != createdAt[b.UserID] {
			return createdAt[a.UserID] < createdAt[b.UserID]
		}
		return a.UserID < b.UserID
	})

	for i := range entries {
		if i > 0 && entries[i].XP == entries[i-1].XP {
			entries[i].Rank = entries[i-1].Rank
		} else {
			entries[i].Rank = i + 1
		}
	}
	return entries, nil
}

// Page slices the ranking and attaches the caller's own entry when userID is ranked.
func (s *LeaderboardService) Page(ctx context.Context, userID string, page, pageSize int) (*LeaderboardPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultLeaderboardPageSize
	}
	if pageSize > MaxLeaderboardPageSize {
		pageSize = MaxLeaderboardPageSize
	}

	ranking, err := s.Ranking(ctx)
	if err != nil {
		return nil, err
	}

	result := &LeaderboardPage{
		Entries:    []LeaderboardEntry{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(ranking),
	}

	start, end := utils.PageBounds(page, pageSize, len(ranking))
	result.Entries = append(result.Entries, ranking[start:end]...)

	for i := range ranking {
		if ranking[i].UserID == userID {
			entry := ranking[i]
			result.UserRank = &entry
			break
		}
	}
	return result, nil
}
