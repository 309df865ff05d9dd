package migrate

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/drgilson/gascrm-backend/pkg/config"
	"github.com/drgilson/gascrm-backend/pkg/db"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Run executes a goose command ("up", "down", "status", ...) against the
// client's database using the embedded migration set for its driver.
func Run(ctx context.Context, client *db.Client, command string, args ...string) error {
	if client == nil {
		return fmt.Errorf("db client is required")
	}

	dialect, dir, err := dialectFor(client.Driver())
	if err != nil {
		return err
	}

	sqlDB, err := client.SQLDB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.RunContext(ctx, command, sqlDB, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// Up applies all pending migrations. Safe to call repeatedly.
func Up(ctx context.Context, client *db.Client) error {
	return Run(ctx, client, "up")
}

func dialectFor(driver string) (dialect, dir string, err error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", "migrations/postgres", nil
	case config.DriverSQLite, "":
		return "sqlite3", "migrations/sqlite", nil
	default:
		return "", "", fmt.Errorf("unsupported db driver %q", driver)
	}
}

// Tables lists the table names present in the database, in storage order.
func Tables(ctx context.Context, client *db.Client) ([]string, error) {
	if client == nil {
		return nil, fmt.Errorf("db client is required")
	}

	query := "SELECT name FROM sqlite_master WHERE type='table'"
	if client.Driver() == config.DriverPostgres {
		query = "SELECT tablename FROM pg_tables WHERE schemaname='public'"
	}

	var tables []string
	if err := client.DB().WithContext(ctx).Raw(query).Scan(&tables).Error; err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	return tables, nil
}
