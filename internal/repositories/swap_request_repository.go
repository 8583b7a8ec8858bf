package repositories

import (
	"context"
	"errors"
	"time"

	"skillswap_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSwapRequestNotFound = errors.New("swap request not found")

	// ErrStatusConflict means the request was not in the expected source
	// state when the conditional write ran. Racing transitions surface here.
	ErrStatusConflict = errors.New("swap request is not in the expected status")
)

type SwapRequestRepository interface {
	GetByID(ctx context.Context, id string) (*models.SwapRequest, error)
	Create(ctx context.Context, request *models.SwapRequest) error

	// ListByUser returns requests where the user is either side, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.SwapRequest, error)
	ListAll(ctx context.Context) ([]models.SwapRequest, error)

	// UpdateStatus performs a compare-and-swap: the row is written only when
	// its current status equals `from`. ErrStatusConflict otherwise.
	UpdateStatus(ctx context.Context, id string, from, to models.SwapRequestStatus) error

	// Complete transitions accepted -> completed and increments both
	// participants' total_swaps in one transaction. Fully applies or not at all.
	Complete(ctx context.Context, id string) error

	// DeletePending removes a request only while it is still pending.
	DeletePending(ctx context.Context, id string) error

	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.SwapRequestStatus) (int64, error)
}

type SwapRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewSwapRequestRepository(db *gorm.DB) SwapRequestRepository {
	return &SwapRequestRepositoryImpl{db: db}
}

func (r *SwapRequestRepositoryImpl) GetByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	var request models.SwapRequest
	err := r.db.WithContext(ctx).Preload("FromUser").Preload("ToUser").
		First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwapRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *SwapRequestRepositoryImpl) Create(ctx context.Context, request *models.SwapRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *SwapRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	var requests []models.SwapRequest
	err := r.db.WithContext(ctx).Preload("FromUser").Preload("ToUser").
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *SwapRequestRepositoryImpl) ListAll(ctx context.Context) ([]models.SwapRequest, error) {
	var requests []models.SwapRequest
	err := r.db.WithContext(ctx).Preload("FromUser").Preload("ToUser").
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *SwapRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to models.SwapRequestStatus) error {
	result := r.db.WithContext(ctx).Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.conflictOrMissing(ctx, id)
	}
	return nil
}

func (r *SwapRequestRepositoryImpl) Complete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request models.SwapRequest
		if err := tx.First(&request, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSwapRequestNotFound
			}
			return err
		}

		result := tx.Model(&models.SwapRequest{}).
			Where("id = ? AND status = ?", id, models.SwapStatusAccepted).
			Updates(map[string]interface{}{
				"status":     models.SwapStatusCompleted,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStatusConflict
		}

		return tx.Model(&models.User{}).
			Where("id IN ?", []string{request.FromUserID, request.ToUserID}).
			Updates(map[string]interface{}{
				"total_swaps": gorm.Expr("total_swaps + 1"),
				"updated_at":  time.Now(),
			}).Error
	})
}

func (r *SwapRequestRepositoryImpl) DeletePending(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.SwapStatusPending).
		Delete(&models.SwapRequest{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.conflictOrMissing(ctx, id)
	}
	return nil
}

func (r *SwapRequestRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SwapRequest{}).Count(&count).Error
	return count, err
}

func (r *SwapRequestRepositoryImpl) CountByStatus(ctx context.Context, status models.SwapRequestStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SwapRequest{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

// conflictOrMissing distinguishes "row gone" from "row in another status"
// after a zero-row conditional write.
func (r *SwapRequestRepositoryImpl) conflictOrMissing(ctx context.Context, id string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SwapRequest{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrSwapRequestNotFound
	}
	return ErrStatusConflict
}
