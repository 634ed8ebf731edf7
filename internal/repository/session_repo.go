package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autoservice/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository interface {
	Upsert(ctx context.Context, userID uint, token string, expire time.Time) error
	FindByToken(ctx context.Context, token string) (*model.SessionToken, error)
	Touch(ctx context.Context, id uint, expire time.Time) error
	DeleteByToken(ctx context.Context, token string) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Upsert keeps a single session row per user, replacing the token of any previous login.
func (r *sessionRepository) Upsert(ctx context.Context, userID uint, token string, expire time.Time) error {
	session := model.SessionToken{UserID: userID, Token: token, Expire: expire}
	err := GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "expire"}),
	}).Create(&session).Error
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *sessionRepository) FindByToken(ctx context.Context, token string) (*model.SessionToken, error) {
	var session model.SessionToken
	if err := GetDB(ctx, r.db).Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) Touch(ctx context.Context, id uint, expire time.Time) error {
	err := GetDB(ctx, r.db).Model(&model.SessionToken{}).Where("id = ?", id).Update("expire", expire).Error
	if err != nil {
		return fmt.Errorf("failed to extend session: %w", err)
	}
	return nil
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := GetDB(ctx, r.db).Where("token = ?", token).Delete(&model.SessionToken{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
