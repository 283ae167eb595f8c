package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/HerbFarmCalc_Go/internal/testing/leaktest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	terminate := func() {}
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()
	terminate()
	os.Exit(code)
}

// setupContainer starts PostgreSQL. Without Docker it returns an empty
// connection string and the integration tests skip.
func setupContainer(ctx context.Context) (connStr string, terminate func()) {
	terminate = func() {}
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("herbfarm_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", terminate
	}

	terminate = func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		terminate()
		return "", func() {}
	}
	return connStr, terminate
}

func testPool(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	opts := DefaultPoolOptions(maxConns)
	opts.ApplicationName = "herbfarm-test"
	pool, err := NewPool(context.Background(), testDBConnString, opts)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestPool_ConnectionsReleased(t *testing.T) {
	pool := testPool(t, 5)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err, "acquire %d", i)

		var one int
		require.NoError(t, conn.QueryRow(ctx, "SELECT 1").Scan(&one))
		assert.Equal(t, 1, one)
		conn.Release()
	}

	assert.Zero(t, pool.Stat().AcquiredConns())
}

func TestPool_ApplicationName(t *testing.T) {
	pool := testPool(t, 2)

	var name string
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT current_setting('application_name')").Scan(&name))
	assert.Equal(t, "herbfarm-test", name)
}

func TestPool_MaxConnsEnforced(t *testing.T) {
	const maxConns = 3
	pool := testPool(t, maxConns)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conns := make([]*pgxpool.Conn, maxConns)
	for i := range conns {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		conns[i] = conn
	}
	assert.Equal(t, int32(maxConns), pool.Stat().AcquiredConns())

	shortCtx, shortCancel := context.WithTimeout(ctx, 100*time.Millisecond)
	_, err := pool.Acquire(shortCtx)
	shortCancel()
	assert.Error(t, err, "acquire should time out on an exhausted pool")

	conns[0].Release()
	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	conn.Release()

	for _, c := range conns[1:] {
		c.Release()
	}
}

func TestPool_NoConnectionLeakOnError(t *testing.T) {
	pool := testPool(t, 5)
	ctx := context.Background()
	before := pool.Stat().AcquiredConns()

	for i := 0; i < 5; i++ {
		_, err := pool.Exec(ctx, "SELECT * FROM no_such_herb_table")
		assert.Error(t, err)
	}

	assert.Equal(t, before, pool.Stat().AcquiredConns())
}

func TestPool_ConcurrentAccess(t *testing.T) {
	pool := testPool(t, 10)
	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			var got int
			if err := pool.QueryRow(context.Background(), "SELECT $1::int", id).Scan(&got); err != nil {
				t.Errorf("worker %d: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Zero(t, pool.Stat().AcquiredConns())
	checker.Check(2)
}

func TestMigrate_AppliesAndIsIdempotent(t *testing.T) {
	pool := testPool(t, 3)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, RunMigrations(ctx, pool, "status"))
	assert.Error(t, RunMigrations(ctx, pool, "sideways"))

	for _, table := range []string{"players", "player_skills", "player_flags"} {
		var exists bool
		err := pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)", table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist", table)
	}
}

func TestNewPool_BadConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "://not a conn string", DefaultPoolOptions(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestDefaultPoolOptions(t *testing.T) {
	opts := DefaultPoolOptions(8)
	assert.Equal(t, 8, opts.MaxConns)
	assert.Equal(t, DefaultMaxConnIdleTime, opts.MaxConnIdleTime)
	assert.Equal(t, DefaultMaxConnLifetime, opts.MaxConnLifetime)
	assert.Equal(t, DefaultApplicationName, opts.ApplicationName)
}
