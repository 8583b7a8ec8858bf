package repositories

import (
	"context"
	"errors"

	"skillswap_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAdminMessageNotFound = errors.New("admin message not found")

type AdminMessageRepository interface {
	Create(ctx context.Context, message *models.AdminMessage) error
	List(ctx context.Context) ([]models.AdminMessage, error)
	ListActive(ctx context.Context) ([]models.AdminMessage, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type AdminMessageRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminMessageRepository(db *gorm.DB) AdminMessageRepository {
	return &AdminMessageRepositoryImpl{db: db}
}

func (r *AdminMessageRepositoryImpl) Create(ctx context.Context, message *models.AdminMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *AdminMessageRepositoryImpl) List(ctx context.Context) ([]models.AdminMessage, error) {
	var messages []models.AdminMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *AdminMessageRepositoryImpl) ListActive(ctx context.Context) ([]models.AdminMessage, error) {
	var messages []models.AdminMessage
	err := r.db.WithContext(ctx).Where("is_active = ?", true).
		Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *AdminMessageRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AdminMessage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminMessageNotFound
	}
	return nil
}

func (r *AdminMessageRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	result := r.db.WithContext(ctx).Model(&models.AdminMessage{}).
		Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminMessageNotFound
	}
	return nil
}
