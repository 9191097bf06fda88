package repositories

import (
	"context"

	"natpark-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// sessionRepository implements SessionRepository on gorm
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create records a new audit session
func (r *sessionRepository) Create(ctx context.Context, session *models.UserSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// MarkLoggedOut closes every active session of a user. Logout is best
// effort; having no active session is not an error.
func (r *sessionRepository) MarkLoggedOut(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&models.UserSession{}).
		Where("user_id = ? AND session_status = ?", userID, models.SessionActive).
		Update("session_status", models.SessionLoggedOut).Error
}
