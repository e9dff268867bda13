package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/oscarnavarro/showroom/pkg/config"
	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
	"github.com/oscarnavarro/showroom/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;not null"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// SQLiteStore persists entries in a local sqlite file.
type SQLiteStore struct {
	conn *gorm.DB
}

// OpenSQLite boots the sqlite-backed store at cfg.Path.
func OpenSQLite(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (*SQLiteStore, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	silent := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:                 silent,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	if err := conn.WithContext(ctx).AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrating storage: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "durable store opened")
	}

	return &SQLiteStore{conn: conn}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string, out any) (bool, error) {
	var entry kvEntry
	err := s.conn.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "read "+key)
	}
	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "decode "+key)
	}
	return true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "encode "+key)
	}
	entry := kvEntry{Key: key, Value: string(encoded)}
	err = s.conn.WithContext(ctx).Save(&entry).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "write "+key)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	err := s.conn.WithContext(ctx).Delete(&kvEntry{}, "key = ?", key).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "remove "+key)
	}
	return nil
}

// Close releases the underlying sqlite handle.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
