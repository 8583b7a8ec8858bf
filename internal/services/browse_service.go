package services

import (
	"context"
	"strings"

	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/internal/taxonomy"
	"skillswap_backend/pkg/apperrors"
)

// BrowseService produces the candidate set of visible users for a viewer,
// with optional text / category / skill filters, and computes aggregates over
// the result. Matching rules live here; the repository is a plain collection.
type BrowseService interface {
	Browse(ctx context.Context, viewerID string, query *dto.BrowseQuery) (*dto.BrowseResponse, error)
	Categories() []taxonomy.Category
}

type BrowseServiceImpl struct {
	userRepo repositories.UserRepository
	taxonomy *taxonomy.Taxonomy
}

func NewBrowseService(userRepo repositories.UserRepository, tax *taxonomy.Taxonomy) BrowseService {
	return &BrowseServiceImpl{
		userRepo: userRepo,
		taxonomy: tax,
	}
}

func (s *BrowseServiceImpl) Browse(ctx context.Context, viewerID string, query *dto.BrowseQuery) (*dto.BrowseResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	matched := make([]*models.User, 0, len(users))
	for i := range users {
		user := &users[i]
		if !s.matches(user, viewerID, query) {
			continue
		}
		matched = append(matched, user)
	}

	result := make([]*dto.BrowseUser, 0, len(matched))
	for _, user := range matched {
		result = append(result, dto.NewBrowseUser(user))
	}

	return &dto.BrowseResponse{
		Users: result,
		Stats: computeStats(matched),
	}, nil
}

func (s *BrowseServiceImpl) Categories() []taxonomy.Category {
	return s.taxonomy.Categories()
}

// matches applies the base exclusions and the three filters. Filters are
// conjunctive; the text filter is an OR across name, location and both skill
// sets.
func (s *BrowseServiceImpl) matches(user *models.User, viewerID string, query *dto.BrowseQuery) bool {
	if user.ID == viewerID || user.IsBanned || !user.IsPublic {
		return false
	}

	if text := strings.TrimSpace(query.Text); text != "" {
		if !matchesText(user, text) {
			return false
		}
	}

	if query.CategoryID != "" {
		// An unknown category id degrades to no filtering rather than an
		// empty result.
		if !s.taxonomy.HasSkillInCategory(query.CategoryID, user.AllSkills()) {
			return false
		}
	}

	if query.SkillName != "" {
		if !user.OffersSkill(query.SkillName) && !user.WantsSkill(query.SkillName) {
			return false
		}
	}

	return true
}

func matchesText(user *models.User, text string) bool {
	needle := strings.ToLower(text)

	if strings.Contains(strings.ToLower(user.Name), needle) {
		return true
	}
	if user.Location != "" && strings.Contains(strings.ToLower(user.Location), needle) {
		return true
	}
	for _, skill := range user.AllSkills() {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

func computeStats(users []*models.User) dto.BrowseStats {
	stats := dto.BrowseStats{Count: len(users)}
	if len(users) == 0 {
		return stats
	}

	distinct := make(map[string]struct{})
	var ratingSum float64
	for _, user := range users {
		for _, skill := range user.AllSkills() {
			distinct[skill] = struct{}{}
		}
		ratingSum += user.Rating
	}

	stats.DistinctSkillCount = len(distinct)
	stats.AverageRating = ratingSum / float64(len(users))
	return stats
}
