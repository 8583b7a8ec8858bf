package services

import (
	"context"
	"encoding/json"
	"testing"

	"skillswap_backend/internal/models"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type adminFixture struct {
	users    *fakeUserRepo
	swaps    *fakeSwapRepo
	messages *fakeMessageRepo
	svc      AdminService

	admin *models.User
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	users := newFakeUserRepo()
	swaps := newFakeSwapRepo(users)
	messages := newFakeMessageRepo()

	f := &adminFixture{
		users:    users,
		swaps:    swaps,
		messages: messages,
		svc:      NewAdminService(users, swaps, messages),
	}

	f.admin = &models.User{
		Email: "admin@example.com",
		Name:  "Admin",
		Role:  models.UserRoleAdmin,
	}
	require.NoError(t, users.Create(context.Background(), f.admin))
	return f
}

func (f *adminFixture) seedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	if user.Role == "" {
		user.Role = models.UserRoleUser
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f *adminFixture) seedSwap(t *testing.T, from, to *models.User, status models.SwapRequestStatus) *models.SwapRequest {
	t.Helper()
	request := &models.SwapRequest{
		FromUserID:   from.ID,
		ToUserID:     to.ID,
		SkillOffered: "Guitar",
		SkillWanted:  "Photoshop",
		Message:      "trade?",
		Status:       status,
	}
	require.NoError(t, f.swaps.Create(context.Background(), request))
	return request
}

func TestAdminService_PlatformStats(t *testing.T) {
	t.Parallel()
	f := newAdminFixture(t)
	ctx := context.Background()

	alice := f.seedUser(t, &models.User{Email: "a@example.com", Name: "Alice", IsPublic: true, Rating: 4.0})
	bob := f.seedUser(t, &models.User{Email: "b@example.com", Name: "Bob", IsPublic: true, Rating: 5.0})
	f.seedUser(t, &models.User{Email: "c@example.com", Name: "Cara", IsBanned: true, Rating: 1.0})

	f.seedSwap(t, alice, bob, models.SwapStatusPending)
	f.seedSwap(t, alice, bob, models.SwapStatusAccepted)
	f.seedSwap(t, bob, alice, models.SwapStatusCompleted)
	f.seedSwap(t, bob, alice, models.SwapStatusRejected)

	stats, err := f.svc.PlatformStats(ctx)
	require.NoError(t, err)

	// The admin account is not counted; the banned user's rating is not
	// averaged in.
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.ActiveUsers)
	assert.Equal(t, int64(1), stats.BannedUsers)
	assert.InDelta(t, 4.5, stats.AverageRating, 0.0001)

	assert.Equal(t, int64(4), stats.TotalSwaps)
	assert.Equal(t, int64(1), stats.PendingSwaps)
	assert.Equal(t, int64(1), stats.ActiveSwaps)
	assert.Equal(t, int64(1), stats.CompletedSwaps)
}

func TestAdminService_PlatformStats_Empty(t *testing.T) {
	t.Parallel()
	f := newAdminFixture(t)

	stats, err := f.svc.PlatformStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.AverageRating)
}

func TestAdminService_TopSkills(t *testing.T) {
	t.Parallel()
	f := newAdminFixture(t)
	ctx := context.Background()

	// Counts: Guitar 2, Piano 1, Figma 2. The first user both offers and
	// wants Guitar; that still counts once.
	f.seedUser(t, &models.User{
		Email:         "a@example.com",
		Name:          "Alice",
		SkillsOffered: datatypes.JSONSlice[string]{"Guitar", "Figma"},
		SkillsWanted:  datatypes.JSONSlice[string]{"Guitar", "Piano"},
	})
	f.seedUser(t, &models.User{
		Email:         "b@example.com",
		Name:          "Bob",
		SkillsOffered: datatypes.JSONSlice[string]{"Guitar"},
		SkillsWanted:  datatypes.JSONSlice[string]{"Figma"},
	})

	ranking, err := f.svc.TopSkills(ctx, 0)
	require.NoError(t, err)

	// Ties keep first-seen order: Guitar before Figma, Piano last.
	require.Len(t, ranking, 3)
	assert.Equal(t, dto.SkillCount{Skill: "Guitar", Count: 2}, ranking[0])
	assert.Equal(t, dto.SkillCount{Skill: "Figma", Count: 2}, ranking[1])
	assert.Equal(t, dto.SkillCount{Skill: "Piano", Count: 1}, ranking[2])

	top1, err := f.svc.TopSkills(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top1, 1)
	assert.Equal(t, "Guitar", top1[0].Skill)
}

func TestAdminService_ExportUsers(t *testing.T) {
	t.Parallel()
	f := newAdminFixture(t)

	alice := f.seedUser(t, &models.User{
		Email:         "a@example.com",
		Name:          "Alice",
		Location:      "Barcelona",
		SkillsOffered: datatypes.JSONSlice[string]{"Guitar"},
		SkillsWanted:  datatypes.JSONSlice[string]{"Photoshop"},
		IsPublic:      true,
		Rating:        4.0,
	})
	bob := f.seedUser(t, &models.User{Email: "b@example.com", Name: "Bob", IsBanned: true})

	// A completed swap so the export carries a nonzero counter.
	accepted := f.seedSwap(t, alice, bob, models.SwapStatusAccepted)
	require.NoError(t, f.swaps.Complete(context.Background(), accepted.ID))

	records, err := f.svc.ExportUsers(context.Background())
	require.NoError(t, err)

	// Admin accounts are not exported; banned users are, with the flag set.
	require.Len(t, records, 2)
	assert.Equal(t, alice.ID, records[0].ID)
	assert.Equal(t, "Barcelona", records[0].Location)
	assert.Equal(t, 1, records[0].TotalSwaps)
	assert.True(t, records[1].IsBanned)

	// The export is plain JSON-serializable data.
	payload, err := json.Marshal(records)
	require.NoError(t, err)
	var decoded []dto.UserExportRecord
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, records[0].ID, decoded[0].ID)
	assert.Equal(t, []string{"Guitar"}, decoded[0].SkillsOffered)
	assert.Equal(t, records[0].TotalSwaps, decoded[0].TotalSwaps)
}

func TestAdminService_ExportSwapsAndActivity(t *testing.T) {
	t.Parallel()
	f := newAdminFixture(t)
	ctx := context.Background()

	alice := f.seedUser(t, &models.User{
		Email:         "a@example.com",
		Name:          "Alice",
		SkillsOffered: datatypes.JSONSlice[string]{"Guitar"},
	})
	bob := f.seedUser(t, &models.User{
		Email:         "b@example.com",
		Name:          "Bob",
		SkillsOffered: datatypes.JSONSlice[string]{"Photoshop"},
	})
	f.seedSwap(t, alice, bob, models.SwapStatusCompleted)

	swaps, err := f.svc.ExportSwaps(ctx)
	require.NoError(t, err)
	require.Len(t, swaps, 1)
	assert.Equal(t, "Alice", swaps[0].FromUser)
	assert.Equal(t, "Bob", swaps[0].ToUser)
	assert.Equal(t, string(models.SwapStatusCompleted), swaps[0].Status)

	report, err := f.svc.ExportActivity(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.TotalUsers)
	assert.Equal(t, int64(1), report.CompletedSwaps)
	assert.False(t, report.GeneratedAt.IsZero())
	require.Len(t, report.TopSkills, 2)
	assert.Equal(t, "Guitar", report.TopSkills[0].Skill)
}

func TestAdminService_ListSwapsByStatus(t *testing.T) {
	t.Parallel()
	f := newAdminFixture(t)
	ctx := context.Background()

	alice := f.seedUser(t, &models.User{Email: "a@example.com", Name: "Alice"})
	bob := f.seedUser(t, &models.User{Email: "b@example.com", Name: "Bob"})
	f.seedSwap(t, alice, bob, models.SwapStatusPending)
	f.seedSwap(t, alice, bob, models.SwapStatusCompleted)

	all, err := f.svc.ListSwaps(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := f.svc.ListSwaps(ctx, models.SwapStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, string(models.SwapStatusPending), pending[0].Status)
}

func TestAdminService_BanUnban(t *testing.T) {
	t.Parallel()
	f := newAdminFixture(t)
	ctx := context.Background()

	alice := f.seedUser(t, &models.User{Email: "a@example.com", Name: "Alice", IsPublic: true})

	banned, err := f.svc.BanUser(ctx, f.admin.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, banned.IsBanned)

	// The write is reflected in storage, not just in the response.
	stored, err := f.users.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsBanned)

	unbanned, err := f.svc.UnbanUser(ctx, f.admin.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, unbanned.IsBanned)

	_, err = f.svc.BanUser(ctx, f.admin.ID, "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	// Admins cannot ban themselves or other admins.
	_, err = f.svc.BanUser(ctx, f.admin.ID, f.admin.ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)

	other := f.seedUser(t, &models.User{Email: "root@example.com", Name: "Root", Role: models.UserRoleAdmin})
	_, err = f.svc.BanUser(ctx, f.admin.ID, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestAdminService_Messages(t *testing.T) {
	t.Parallel()
	f := newAdminFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateMessage(ctx, &dto.CreateAdminMessageRequest{
		Title:   "Scheduled maintenance",
		Content: "The platform goes down on Saturday night.",
		Type:    "maintenance",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	_, err = f.svc.CreateMessage(ctx, &dto.CreateAdminMessageRequest{
		Title:   "Bad",
		Content: "Bad",
		Type:    "gossip",
	})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	active, err := f.svc.ListActiveMessages(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)

	require.NoError(t, f.svc.SetMessageActive(ctx, created.ID, false))
	active, err = f.svc.ListActiveMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := f.svc.ListMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, f.svc.DeleteMessage(ctx, created.ID))
	err = f.svc.DeleteMessage(ctx, created.ID)
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
