package model

import "time"

// SessionEntryModel mirrors the 'session_entries' table, one row per session store key.
type SessionEntryModel struct {
	Key       string     `gorm:"column:entry_key;type:varchar(512);primaryKey"`
	Value     []byte     `gorm:"column:value;type:bytea;not null"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionEntryModel) TableName() string {
	return "session_entries"
}

// Live reports whether the row is still readable at now.
func (m *SessionEntryModel) Live(now time.Time) bool {
	return m.ExpiresAt == nil || now.Before(*m.ExpiresAt)
}

// NewSessionEntryModel builds a row that expires ttl after now; ttl <= 0 never expires.
func NewSessionEntryModel(key string, value []byte, now time.Time, ttl time.Duration) *SessionEntryModel {
	m := &SessionEntryModel{
		Key:   key,
		Value: value,
	}
	if ttl > 0 {
		expiresAt := now.Add(ttl)
		m.ExpiresAt = &expiresAt
	}

	return m
}
