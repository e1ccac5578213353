// Package migration creates the database schema on startup so a fresh
// install is usable out of the box.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	admindomain "github.com/gulfbridge/portal/internal/admin/domain"
	authdomain "github.com/gulfbridge/portal/internal/auth/domain"
	careerdomain "github.com/gulfbridge/portal/internal/career/domain"
	contentdomain "github.com/gulfbridge/portal/internal/content/domain"
	messagedomain "github.com/gulfbridge/portal/internal/message/domain"
	quotedomain "github.com/gulfbridge/portal/internal/quote/domain"
	settingsdomain "github.com/gulfbridge/portal/internal/settings/domain"
	shipmentdomain "github.com/gulfbridge/portal/internal/shipment/domain"
	teamdomain "github.com/gulfbridge/portal/internal/team/domain"
	"gorm.io/gorm"
)

// RunPostgresMigrations applies the embedded SQL migrations.
func RunPostgresMigrations(db *sql.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	upErr := migrator.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", upErr)
	}
	// Do not call migrator.Close here because it would close the shared *sql.DB.

	return nil
}

// Run migrates the schema. Postgres uses the versioned SQL migrations;
// mysql and sqlite fall back to AutoMigrate, which keeps local development
// and tests driver-free.
func Run(conn *gorm.DB) error {
	if conn.Dialector.Name() == "postgres" {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunPostgresMigrations(sqlDB)
	}

	if err := conn.AutoMigrate(
		&admindomain.Admin{},
		&authdomain.Session{},
		&shipmentdomain.Shipment{},
		&messagedomain.Message{},
		&quotedomain.Quote{},
		&careerdomain.Job{},
		&careerdomain.Application{},
		&teamdomain.Department{},
		&teamdomain.Section{},
		&teamdomain.Title{},
		&teamdomain.Employee{},
		&settingsdomain.SocialLink{},
		&settingsdomain.Setting{},
	); err != nil {
		return err
	}
	for _, col := range contentdomain.Collections() {
		if err := conn.Table(col.Table()).AutoMigrate(&contentdomain.Record{}); err != nil {
			return err
		}
	}
	return nil
}
