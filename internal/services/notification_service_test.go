package services

import (
	"context"
	"testing"

	"skillswap_backend/internal/models"
	"skillswap_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ReadFlow(t *testing.T) {
	t.Parallel()
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)
	ctx := context.Background()

	for _, title := range []string{"first", "second"} {
		require.NoError(t, repo.Create(ctx, &models.Notification{
			UserID: "user-1",
			Type:   "swap_request",
			Title:  title,
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.Notification{
		UserID: "user-2",
		Type:   "swap_request",
		Title:  "other",
	}))

	list, err := svc.ListOwn(ctx, "user-1", 0)
	require.NoError(t, err)
	require.Len(t, list, 2)

	count, err := svc.CountUnread(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Marking is scoped to the owner.
	err = svc.MarkRead(ctx, "user-2", list[0].ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	require.NoError(t, svc.MarkRead(ctx, "user-1", list[0].ID))
	count, err = svc.CountUnread(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, svc.MarkAllRead(ctx, "user-1"))
	count, err = svc.CountUnread(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, count)

	// Another user's unread count is untouched.
	count, err = svc.CountUnread(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
