package services

import (
	"context"
	"sort"
	"time"

	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"
)

// AdminService computes read-only platform statistics and export snapshots,
// and performs the moderation writes (ban/unban, broadcast messages). The
// aggregations are pure functions of the repository state at call time.
type AdminService interface {
	PlatformStats(ctx context.Context) (*dto.PlatformStats, error)
	TopSkills(ctx context.Context, n int) ([]dto.SkillCount, error)

	ExportUsers(ctx context.Context) ([]dto.UserExportRecord, error)
	ExportSwaps(ctx context.Context) ([]dto.SwapExportRecord, error)
	ExportActivity(ctx context.Context) (*dto.ActivityReport, error)

	ListUsers(ctx context.Context) ([]*dto.UserResponse, error)

	// ListSwaps returns every swap request, optionally narrowed to one
	// status. An empty status means all.
	ListSwaps(ctx context.Context, status models.SwapRequestStatus) ([]*dto.SwapRequestResponse, error)

	// BanUser/UnbanUser toggle the flag only. Existing swap requests are not
	// cascaded; the create preconditions keep a banned user out of new swaps.
	BanUser(ctx context.Context, actingAdminID, userID string) (*dto.UserResponse, error)
	UnbanUser(ctx context.Context, actingAdminID, userID string) (*dto.UserResponse, error)

	CreateMessage(ctx context.Context, req *dto.CreateAdminMessageRequest) (*models.AdminMessage, error)
	ListMessages(ctx context.Context) ([]models.AdminMessage, error)
	ListActiveMessages(ctx context.Context) ([]models.AdminMessage, error)
	SetMessageActive(ctx context.Context, id string, active bool) error
	DeleteMessage(ctx context.Context, id string) error
}

type AdminServiceImpl struct {
	userRepo    repositories.UserRepository
	swapRepo    repositories.SwapRequestRepository
	messageRepo repositories.AdminMessageRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	swapRepo repositories.SwapRequestRepository,
	messageRepo repositories.AdminMessageRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:    userRepo,
		swapRepo:    swapRepo,
		messageRepo: messageRepo,
	}
}

func (s *AdminServiceImpl) PlatformStats(ctx context.Context) (*dto.PlatformStats, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	stats := &dto.PlatformStats{}
	var ratingSum float64
	var ratedUsers int64

	for i := range users {
		user := &users[i]
		if user.IsAdmin() {
			continue
		}
		stats.TotalUsers++
		if user.IsBanned {
			stats.BannedUsers++
		} else {
			stats.ActiveUsers++
			ratingSum += user.Rating
			ratedUsers++
		}
	}

	if ratedUsers > 0 {
		stats.AverageRating = ratingSum / float64(ratedUsers)
	}

	if stats.TotalSwaps, err = s.swapRepo.CountAll(ctx); err != nil {
		return nil, apperrors.RepositoryError(err)
	}
	if stats.PendingSwaps, err = s.swapRepo.CountByStatus(ctx, models.SwapStatusPending); err != nil {
		return nil, apperrors.RepositoryError(err)
	}
	if stats.ActiveSwaps, err = s.swapRepo.CountByStatus(ctx, models.SwapStatusAccepted); err != nil {
		return nil, apperrors.RepositoryError(err)
	}
	if stats.CompletedSwaps, err = s.swapRepo.CountByStatus(ctx, models.SwapStatusCompleted); err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	return stats, nil
}

// TopSkills counts, per skill name, how many users offer or want it (a user
// counts once even when the skill is in both sets). Ordering: count
// descending, ties kept in first-seen order. The tie-break is arbitrary but
// deterministic, which is what the reports need.
func (s *AdminServiceImpl) TopSkills(ctx context.Context, n int) ([]dto.SkillCount, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	counts := make(map[string]int)
	var firstSeen []string

	for i := range users {
		seen := make(map[string]struct{})
		for _, skill := range users[i].AllSkills() {
			if _, dup := seen[skill]; dup {
				continue
			}
			seen[skill] = struct{}{}
			if _, known := counts[skill]; !known {
				firstSeen = append(firstSeen, skill)
			}
			counts[skill]++
		}
	}

	ranking := make([]dto.SkillCount, 0, len(firstSeen))
	for _, skill := range firstSeen {
		ranking = append(ranking, dto.SkillCount{Skill: skill, Count: counts[skill]})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})

	if n > 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking, nil
}

func (s *AdminServiceImpl) ExportUsers(ctx context.Context) ([]dto.UserExportRecord, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	records := make([]dto.UserExportRecord, 0, len(users))
	for i := range users {
		user := &users[i]
		if user.IsAdmin() {
			continue
		}
		records = append(records, dto.UserExportRecord{
			ID:            user.ID,
			Name:          user.Name,
			Email:         user.Email,
			Location:      user.Location,
			SkillsOffered: append([]string{}, user.SkillsOffered...),
			SkillsWanted:  append([]string{}, user.SkillsWanted...),
			Rating:        user.Rating,
			TotalSwaps:    user.TotalSwaps,
			IsPublic:      user.IsPublic,
			IsBanned:      user.IsBanned,
			JoinedAt:      user.CreatedAt,
		})
	}
	return records, nil
}

func (s *AdminServiceImpl) ExportSwaps(ctx context.Context) ([]dto.SwapExportRecord, error) {
	requests, err := s.swapRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	records := make([]dto.SwapExportRecord, 0, len(requests))
	for i := range requests {
		request := &requests[i]
		record := dto.SwapExportRecord{
			ID:           request.ID,
			SkillOffered: request.SkillOffered,
			SkillWanted:  request.SkillWanted,
			Status:       string(request.Status),
			Message:      request.Message,
			CreatedAt:    request.CreatedAt,
			UpdatedAt:    request.UpdatedAt,
		}
		if request.FromUser != nil {
			record.FromUser = request.FromUser.Name
		}
		if request.ToUser != nil {
			record.ToUser = request.ToUser.Name
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *AdminServiceImpl) ExportActivity(ctx context.Context) (*dto.ActivityReport, error) {
	stats, err := s.PlatformStats(ctx)
	if err != nil {
		return nil, err
	}
	topSkills, err := s.TopSkills(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &dto.ActivityReport{
		PlatformStats: *stats,
		TopSkills:     topSkills,
		GeneratedAt:   time.Now(),
	}, nil
}

func (s *AdminServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *AdminServiceImpl) ListSwaps(ctx context.Context, status models.SwapRequestStatus) ([]*dto.SwapRequestResponse, error) {
	requests, err := s.swapRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	responses := make([]*dto.SwapRequestResponse, 0, len(requests))
	for i := range requests {
		if status != "" && requests[i].Status != status {
			continue
		}
		responses = append(responses, dto.NewSwapRequestResponse(&requests[i]))
	}
	return responses, nil
}

func (s *AdminServiceImpl) BanUser(ctx context.Context, actingAdminID, userID string) (*dto.UserResponse, error) {
	return s.setBanned(ctx, actingAdminID, userID, true)
}

func (s *AdminServiceImpl) UnbanUser(ctx context.Context, actingAdminID, userID string) (*dto.UserResponse, error) {
	return s.setBanned(ctx, actingAdminID, userID, false)
}

func (s *AdminServiceImpl) setBanned(ctx context.Context, actingAdminID, userID string, banned bool) (*dto.UserResponse, error) {
	if actingAdminID == userID {
		return nil, apperrors.ErrInvalidOperation("admin", "Cannot change the ban status of your own account")
	}

	target, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.RepositoryError(err)
	}
	if target.IsAdmin() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	// The repository returns the authoritative post-write row; that row is
	// the new truth, not the optimistic local copy.
	updated, err := s.userRepo.SetBanned(ctx, userID, banned)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.RepositoryError(err)
	}

	return dto.NewUserResponse(updated), nil
}

func (s *AdminServiceImpl) CreateMessage(ctx context.Context, req *dto.CreateAdminMessageRequest) (*models.AdminMessage, error) {
	message := &models.AdminMessage{
		Title:    req.Title,
		Content:  req.Content,
		Type:     models.AdminMessageType(req.Type),
		IsActive: true,
	}

	if !models.ValidAdminMessageType(message.Type) {
		return nil, apperrors.ValidationError(map[string]string{"type": "unknown message type"})
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, apperrors.RepositoryError(err)
	}
	return message, nil
}

func (s *AdminServiceImpl) ListMessages(ctx context.Context) ([]models.AdminMessage, error) {
	messages, err := s.messageRepo.List(ctx)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}
	return messages, nil
}

func (s *AdminServiceImpl) ListActiveMessages(ctx context.Context) ([]models.AdminMessage, error) {
	messages, err := s.messageRepo.ListActive(ctx)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}
	return messages, nil
}

func (s *AdminServiceImpl) SetMessageActive(ctx context.Context, id string, active bool) error {
	if err := s.messageRepo.SetActive(ctx, id, active); err != nil {
		if apperrors.Is(err, repositories.ErrAdminMessageNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.RepositoryError(err)
	}
	return nil
}

func (s *AdminServiceImpl) DeleteMessage(ctx context.Context, id string) error {
	if err := s.messageRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, repositories.ErrAdminMessageNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.RepositoryError(err)
	}
	return nil
}
