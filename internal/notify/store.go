package notify

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

type Store interface {
	SaveNotification(ctx context.Context, n *models.Notification) error
}

// Inbox is the recipient's side of the stored notifications: listing,
// the unread counter, and the monotonic read acknowledgement.
type Inbox interface {
	ListForRecipient(ctx context.Context, recipientID uuid.UUID) ([]models.Notification, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// MarkRead flips one notification to read and reports whether this
	// call changed it. Read rows stay read.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*models.Notification, bool, error)

	// MarkAllRead returns how many rows actually flipped.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) SaveNotification(ctx context.Context, n *models.Notification) error {
	return s.db.WithContext(ctx).Create(n).Error
}

func (s *GormStore) ListForRecipient(ctx context.Context, recipientID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *GormStore) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

func (s *GormStore) MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*models.Notification, bool, error) {
	var n models.Notification
	if err := s.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&n).Error; err != nil {
		return nil, false, err
	}

	if n.Read {
		return &n, false, nil
	}

	// guarded on read=false so a concurrent ack flips the row once
	res := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND read = ?", n.ID, false).
		Update("read", true)
	if res.Error != nil {
		return nil, false, res.Error
	}

	n.Read = true
	return &n, res.RowsAffected > 0, nil
}

func (s *GormStore) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}

var _ Store = (*GormStore)(nil)
var _ Inbox = (*GormStore)(nil)
