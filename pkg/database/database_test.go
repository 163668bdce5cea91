package database

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/link/inventory-platform/pkg/logger"
)

func TestDataSourceName(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "postgres",
			cfg:  Config{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", Name: "products", SSLMode: "disable"},
			want: "host=db port=5432 user=u password=p dbname=products sslmode=disable",
		},
		{
			name: "mysql",
			cfg:  Config{Driver: DriverMySQL, Host: "db", Port: "3306", User: "u", Password: "p", Name: "inventory"},
			want: "u:p@tcp(db:3306)/inventory?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name: "sqlite default",
			cfg:  Config{Driver: DriverSQLite},
			want: ":memory:",
		},
		{
			name: "explicit dsn wins",
			cfg:  Config{Driver: DriverPostgres, DSN: "postgres://x", Host: "ignored"},
			want: "postgres://x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DataSourceName())
		})
	}
}

func TestNewGormConnection_UnknownDriver(t *testing.T) {
	_, err := NewGormConnection(Config{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNewSQLiteMemory(t *testing.T) {
	db, err := NewSQLiteMemory()
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Close())
}

func TestGormLogger_WarningsReachInfoLevelLogs(t *testing.T) {
	previous, previousLevel := logger.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		logger.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})

	var buf bytes.Buffer
	logger.InitWithWriter("product-service", false, &buf)
	logger.SetLevel("info")

	newGormLogger().Warn(context.Background(), "slow query: %s", "SELECT 1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "gorm", entry["component"])
	assert.Contains(t, entry["message"], "slow query: SELECT 1")
}
