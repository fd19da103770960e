package postgres_test

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/photostrip-backend/migrations"
)

// storeTables are the tables a test may empty. layouts is left alone so the
// seeded catalogue stays readable.
var storeTables = []string{"stickers", "background_textures", "exports"}

type TestDB struct {
	Pool      *pgxpool.Pool
	Container *postgres.PostgresContainer
}

// SetupTestDB starts a disposable configuration store with every migration
// applied.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("photostrip"),
		postgres.WithUsername("booth"),
		postgres.WithPassword("booth"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "starting postgres container")

	db := &TestDB{Container: container}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable", "application_name=photostrip-test")
	if err != nil {
		db.Cleanup(t)
		t.Fatalf("reading connection string: %v", err)
	}

	db.Pool, err = pgxpool.New(ctx, connStr)
	if err != nil {
		db.Cleanup(t)
		t.Fatalf("creating pool: %v", err)
	}

	if err := database.RunMigrations(ctx, db.Pool, migrations.FS); err != nil {
		db.Cleanup(t)
		t.Fatalf("running migrations: %v", err)
	}

	return db
}

func (db *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if db.Pool != nil {
		db.Pool.Close()
	}
	if db.Container != nil {
		if err := testcontainers.TerminateContainer(db.Container); err != nil {
			t.Logf("terminating container: %v", err)
		}
	}
}

// Truncate empties the named store tables in one statement.
func (db *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()
	for _, table := range tables {
		require.True(t, slices.Contains(storeTables, table), "table %q cannot be truncated", table)
	}

	idents := make([]string, len(tables))
	for i, table := range tables {
		idents[i] = pgx.Identifier{table}.Sanitize()
	}

	query := fmt.Sprintf("TRUNCATE TABLE %s", strings.Join(idents, ", "))
	_, err := db.Pool.Exec(context.Background(), query)
	require.NoError(t, err)
}
