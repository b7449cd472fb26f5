// Package store owns the embedded database backing the kiosk: three
// append-or-insert collections (users, activities, analytics events) opened
// once at process start. The unique email index is the only duplicate guard;
// callers must not rely on a pre-existence check.
package store

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/mfigueira/counseldesk/pkg/config"
	pkgerrors "github.com/mfigueira/counseldesk/pkg/errors"
	"github.com/mfigueira/counseldesk/pkg/logger"
	"github.com/mfigueira/counseldesk/pkg/store/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SchemaVersion is bumped only when collections or indexes are added.
// Upgrades are additive: existing collections are never dropped.
const SchemaVersion = 1

// SchemaInfo is the single-row table recording the schema version.
type SchemaInfo struct {
	ID      uint `gorm:"primaryKey"`
	Version int  `gorm:"not null"`
}

// Client wraps the shared GORM connection to the embedded database.
type Client struct {
	conn *gorm.DB
}

// Pinger exposes the health check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Open creates or opens the embedded database and migrates its collections.
// It is idempotent; reopening an existing file only applies additive schema
// changes. Failures are wrapped as CodeStoreUnavailable since no core
// operation can proceed without the store.
func Open(ctx context.Context, cfg config.StoreConfig, logg *logger.Logger) (*Client, error) {
	if cfg.Path == "" {
		return nil, pkgerrors.New(pkgerrors.CodeStoreUnavailable, "store path is required")
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=%d", cfg.Path, cfg.BusyTimeout.Milliseconds())

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "opening embedded store")
	}

	client := &Client{conn: conn}
	if err := client.migrate(ctx); err != nil {
		return nil, err
	}

	if logg != nil {
		logg.Info(ctx, "embedded store opened")
	}
	return client, nil
}

func (c *Client) migrate(ctx context.Context) error {
	db := c.conn.WithContext(ctx)
	err := db.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.AnalyticsEvent{},
		&SchemaInfo{},
	)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "migrating schema")
	}

	var info SchemaInfo
	switch err := db.First(&info, "id = ?", 1).Error; err {
	case nil:
		if info.Version < SchemaVersion {
			info.Version = SchemaVersion
			if err := db.Save(&info).Error; err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "bumping schema version")
			}
		}
	case gorm.ErrRecordNotFound:
		info = SchemaInfo{ID: 1, Version: SchemaVersion}
		if err := db.Create(&info).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "recording schema version")
		}
	default:
		return pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "reading schema version")
	}
	return nil
}

// DB returns the underlying GORM connection.
func (c *Client) DB() *gorm.DB {
	return c.conn
}

// Ping verifies the datasource is reachable.
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close shuts down the underlying connection.
func (c *Client) Close() error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithTx executes fn inside a transaction, rolling back on error/panic.
func (c *Client) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := c.conn.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
