package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jacmel/storefront-backend/pkg/db"
	"github.com/jacmel/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLStore persists blobs in the storefront_blobs table.
type SQLStore struct {
	client *db.Client
}

func NewSQLStore(client *db.Client) *SQLStore {
	return &SQLStore{client: client}
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var row models.Blob
	err := s.client.DB().WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("sql get %s: %w", key, err)
	}
	return row.Value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	row := models.Blob{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("sql set %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if err := s.client.DB().WithContext(ctx).Where("key = ?", key).Delete(&models.Blob{}).Error; err != nil {
		return fmt.Errorf("sql delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Ping(ctx context.Context) error { return s.client.Ping(ctx) }

func (s *SQLStore) Close() error { return s.client.Close() }
