// Package testutils starts throwaway postgres and redis instances for
// integration tests. Set TEST_DB_DSN or TEST_REDIS_ADDR to use existing
// servers instead of containers.
package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/rueidis"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupPostgres returns a connected gorm handle and its DSN.
func SetupPostgres(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		ctx := context.Background()
		req := testcontainers.ContainerRequest{
			Image: "postgres:15",
			Env: map[string]string{
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_USER":     "test",
				"POSTGRES_DB":       "ticketboard",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		}
		pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

		host, err := pg.Host(ctx)
		require.NoError(t, err)
		port, err := pg.MappedPort(ctx, "5432")
		require.NoError(t, err)
		dsn = fmt.Sprintf("host=%s port=%s user=test password=test dbname=ticketboard sslmode=disable", host, port.Port())
	}

	var (
		gdb *gorm.DB
		err error
	)
	for i := 0; i < 10; i++ {
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb, dsn
}

// SetupRedis returns a client connected to a fresh redis.
func SetupRedis(t *testing.T) rueidis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		ctx := context.Background()
		rd, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			},
			Started: true,
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = rd.Terminate(context.Background()) })

		host, err := rd.Host(ctx)
		require.NoError(t, err)
		port, err := rd.MappedPort(ctx, "6379")
		require.NoError(t, err)
		addr = host + ":" + port.Port()
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{InitAddress: []string{addr}, DisableCache: true})
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}
