package postgres

import (
	"context"
	"time"

	"mycloudmen/internal/domain/repository"
	"mycloudmen/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// sessionKVRepository stores session keys as rows. Reads are pinned to the
// primary so a value written by one request is visible to the next even when
// read replicas lag.
type sessionKVRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionKVRepository creates the postgres session storage backend.
func NewSessionKVRepository(db *gorm.DB) repository.KVStore {
	return &sessionKVRepository{db: db, now: time.Now}
}

func (r *sessionKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var row model.SessionEntryModel

	err := r.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("entry_key = ?", key).
		Where("expires_at IS NULL OR expires_at > ?", r.now()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select session entry %s", key)
	}

	return row.Value, nil
}

func (r *sessionKVRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	row := model.NewSessionEntryModel(key, value, r.now(), ttl)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		return errors.Wrapf(err, "upsert session entry %s", key)
	}

	return nil
}

// GetDel deletes the live row and reads its value back in one statement.
func (r *sessionKVRepository) GetDel(ctx context.Context, key string) ([]byte, error) {
	var rows []model.SessionEntryModel

	err := r.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "value"}}}).
		Where("entry_key = ?", key).
		Where("expires_at IS NULL OR expires_at > ?", r.now()).
		Delete(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "delete session entry %s", key)
	}
	if len(rows) == 0 {
		return nil, repository.ErrKeyNotFound
	}

	return rows[0].Value, nil
}

func (r *sessionKVRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Where("entry_key IN ?", keys).Delete(&model.SessionEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "delete session entries")
	}

	return nil
}

// purgeExpired deletes rows whose expiry passed and returns how many were removed.
func purgeExpired(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	result := db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Delete(&model.SessionEntryModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "purge expired session entries")
	}

	return result.RowsAffected, nil
}
