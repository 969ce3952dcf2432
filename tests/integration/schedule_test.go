package integration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/gamedrive/sales-service/internal/database"
	"github.com/gamedrive/sales-service/internal/scheduling"
	"github.com/gamedrive/sales-service/internal/sweepers"
)

const (
	gameID     = "11111111-1111-1111-1111-111111111111"
	productID  = "22222222-2222-2222-2222-222222222222"
	platformID = "33333333-3333-3333-3333-333333333333"
)

// TestScheduleLifecycle exercises the persistence layer end to end against
// a real Postgres: create, conflict rejection, cooldown rejection, edit
// re-validation, and the status sweeper transitions.
func TestScheduleLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	postgresContainer, err := setupTestDatabase(ctx)
	require.NoError(t, err)
	defer postgresContainer.Terminate(ctx)

	connStr, err := postgresContainer.ConnectionString(ctx)
	require.NoError(t, err)

	require.NoError(t, database.Connect(ctx, connStr, database.PoolConfig{MaxConns: 10, MinConns: 2}))
	defer database.Close()

	setupTestSchema(ctx, t)

	detector := scheduling.NewDetector()

	var firstSaleID string

	t.Run("CreateSale", func(t *testing.T) {
		created, verdict, err := database.CreateSale(ctx, detector, &database.SaleRecord{
			ProductID:  productID,
			PlatformID: platformID,
			StartDate:  date(t, "2026-03-01"),
			EndDate:    date(t, "2026-03-07"),
			SaleType:   "regular",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		require.True(t, verdict.Valid)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "scheduled", created.Status)
		firstSaleID = created.ID
	})

	t.Run("RejectOverlap", func(t *testing.T) {
		created, verdict, err := database.CreateSale(ctx, detector, &database.SaleRecord{
			ProductID:  productID,
			PlatformID: platformID,
			StartDate:  date(t, "2026-03-05"),
			EndDate:    date(t, "2026-03-10"),
			SaleType:   "regular",
		})
		require.NoError(t, err)
		assert.Nil(t, created)
		require.NotNil(t, verdict)
		assert.False(t, verdict.Valid)
		assert.Len(t, verdict.DirectConflicts, 1)
	})

	t.Run("RejectCooldown", func(t *testing.T) {
		// Platform cooldown is 7 days; starting 3 days after the first
		// sale ends falls inside the window.
		created, verdict, err := database.CreateSale(ctx, detector, &database.SaleRecord{
			ProductID:  productID,
			PlatformID: platformID,
			StartDate:  date(t, "2026-03-10"),
			EndDate:    date(t, "2026-03-12"),
			SaleType:   "regular",
		})
		require.NoError(t, err)
		assert.Nil(t, created)
		require.NotNil(t, verdict)
		assert.False(t, verdict.Valid)
		assert.Empty(t, verdict.DirectConflicts)
		assert.Len(t, verdict.CooldownConflicts, 1)
	})

	t.Run("AcceptAfterCooldown", func(t *testing.T) {
		// First day on which the 7-day cooldown no longer binds.
		created, verdict, err := database.CreateSale(ctx, detector, &database.SaleRecord{
			ProductID:  productID,
			PlatformID: platformID,
			StartDate:  date(t, "2026-03-13"),
			EndDate:    date(t, "2026-03-15"),
			SaleType:   "regular",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.True(t, verdict.Valid)
	})

	t.Run("SpecialSaleExempt", func(t *testing.T) {
		// Inside the cooldown window the 03-13 sale triggers, but special
		// sales are exempt on this platform.
		created, verdict, err := database.CreateSale(ctx, detector, &database.SaleRecord{
			ProductID:  productID,
			PlatformID: platformID,
			StartDate:  date(t, "2026-03-18"),
			EndDate:    date(t, "2026-03-18"),
			SaleType:   "special",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.True(t, verdict.Valid)
	})

	t.Run("UpdateRevalidates", func(t *testing.T) {
		// Moving the first sale onto the 03-13 sale must be rejected.
		start := date(t, "2026-03-12")
		end := date(t, "2026-03-14")
		updated, verdict, err := database.UpdateSale(ctx, detector, firstSaleID, database.SalePatch{
			StartDate: &start,
			EndDate:   &end,
		})
		require.NoError(t, err)
		assert.Nil(t, updated)
		require.NotNil(t, verdict)
		assert.False(t, verdict.Valid)
	})

	t.Run("UpdateExcludesSelf", func(t *testing.T) {
		// Shrinking the first sale in place must not conflict with itself.
		end := date(t, "2026-03-05")
		updated, verdict, err := database.UpdateSale(ctx, detector, firstSaleID, database.SalePatch{
			EndDate: &end,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.NotNil(t, verdict)
		assert.True(t, verdict.Valid)
		assert.Equal(t, "2026-03-05", scheduling.FormatDate(updated.EndDate))
	})

	t.Run("NonScheduleUpdateSkipsValidation", func(t *testing.T) {
		pct := 30
		updated, verdict, err := database.UpdateSale(ctx, detector, firstSaleID, database.SalePatch{
			DiscountPct: &pct,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Nil(t, verdict)
		require.NotNil(t, updated.DiscountPct)
		assert.Equal(t, 30, *updated.DiscountPct)
	})

	t.Run("CancelledSaleLeavesScope", func(t *testing.T) {
		status := "cancelled"
		_, _, err := database.UpdateSale(ctx, detector, firstSaleID, database.SalePatch{
			Status: &status,
		})
		require.NoError(t, err)

		scope, err := database.ScopeSales(ctx, productID, platformID)
		require.NoError(t, err)
		for _, s := range scope {
			assert.NotEqual(t, firstSaleID, s.ID)
		}

		// The slot the cancelled sale held is free again.
		verdict, _, err := database.ValidateProposal(ctx, detector, scheduling.Proposal{
			ProductID:  productID,
			PlatformID: platformID,
			Start:      date(t, "2026-03-01"),
			End:        date(t, "2026-03-01"),
			Type:       scheduling.SaleTypeRegular,
		})
		require.NoError(t, err)
		assert.True(t, verdict.Valid)
	})

	t.Run("UncancelIntoTakenSlotRejected", func(t *testing.T) {
		// Another sale legitimately takes the cancelled sale's old slot.
		occupier, verdict, err := database.CreateSale(ctx, detector, &database.SaleRecord{
			ProductID:  productID,
			PlatformID: platformID,
			StartDate:  date(t, "2026-03-01"),
			EndDate:    date(t, "2026-03-01"),
			SaleType:   "regular",
		})
		require.NoError(t, err)
		require.NotNil(t, occupier)
		require.True(t, verdict.Valid)

		// Reviving the cancelled sale would overlap the occupier, so the
		// status change alone must re-validate and be rejected.
		status := "scheduled"
		updated, verdict, err := database.UpdateSale(ctx, detector, firstSaleID, database.SalePatch{
			Status: &status,
		})
		require.NoError(t, err)
		assert.Nil(t, updated)
		require.NotNil(t, verdict)
		assert.False(t, verdict.Valid)
		assert.Len(t, verdict.DirectConflicts, 1)

		current, err := database.GetSale(ctx, firstSaleID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", current.Status, "rejected revival must not change the status")

		deleted, err := database.DeleteSale(ctx, occupier.ID)
		require.NoError(t, err)
		require.True(t, deleted)
	})

	t.Run("UncancelIntoFreeSlot", func(t *testing.T) {
		status := "scheduled"
		updated, verdict, err := database.UpdateSale(ctx, detector, firstSaleID, database.SalePatch{
			Status: &status,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.NotNil(t, verdict)
		assert.True(t, verdict.Valid)
		assert.Equal(t, "scheduled", updated.Status)
	})

	t.Run("DeleteSale", func(t *testing.T) {
		deleted, err := database.DeleteSale(ctx, firstSaleID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = database.DeleteSale(ctx, firstSaleID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("SaleNotFound", func(t *testing.T) {
		_, err := database.GetSale(ctx, firstSaleID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, database.ErrSaleNotFound))

		status := "draft"
		_, _, err = database.UpdateSale(ctx, detector, firstSaleID, database.SalePatch{Status: &status})
		require.Error(t, err)
		assert.True(t, errors.Is(err, database.ErrSaleNotFound))
	})
}

// TestConcurrentCreateSerialized verifies that the advisory lock keeps two
// concurrent writers from both passing validation for the same slot.
func TestConcurrentCreateSerialized(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	postgresContainer, err := setupTestDatabase(ctx)
	require.NoError(t, err)
	defer postgresContainer.Terminate(ctx)

	connStr, err := postgresContainer.ConnectionString(ctx)
	require.NoError(t, err)

	require.NoError(t, database.Connect(ctx, connStr, database.PoolConfig{MaxConns: 10, MinConns: 2}))
	defer database.Close()

	setupTestSchema(ctx, t)

	detector := scheduling.NewDetector()

	const writers = 8
	var wg sync.WaitGroup
	results := make([]*database.SaleRecord, writers)
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _, errs[i] = database.CreateSale(ctx, detector, &database.SaleRecord{
				ProductID:  productID,
				PlatformID: platformID,
				StartDate:  date(t, "2026-06-01"),
				EndDate:    date(t, "2026-06-07"),
				SaleType:   "regular",
			})
		}(i)
	}
	wg.Wait()

	created := 0
	for i := 0; i < writers; i++ {
		require.NoError(t, errs[i])
		if results[i] != nil {
			created++
		}
	}
	assert.Equal(t, 1, created, "exactly one concurrent writer should win the slot")
}

// TestStatusSweeper verifies the calendar-date lifecycle transitions.
func TestStatusSweeper(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	postgresContainer, err := setupTestDatabase(ctx)
	require.NoError(t, err)
	defer postgresContainer.Terminate(ctx)

	connStr, err := postgresContainer.ConnectionString(ctx)
	require.NoError(t, err)

	require.NoError(t, database.Connect(ctx, connStr, database.PoolConfig{MaxConns: 10, MinConns: 2}))
	defer database.Close()

	setupTestSchema(ctx, t)

	pool := database.Pool()

	// A sale already underway and a sale already over, inserted directly
	// so their statuses are stale.
	_, err = pool.Exec(ctx, `
		INSERT INTO sales (id, product_id, platform_id, start_date, end_date, sale_type, status, created_at, updated_at)
		VALUES
			(gen_random_uuid(), $1, $2, CURRENT_DATE - 1, CURRENT_DATE + 1, 'regular', 'scheduled', NOW(), NOW()),
			(gen_random_uuid(), $1, $2, CURRENT_DATE - 10, CURRENT_DATE - 5, 'regular', 'active', NOW(), NOW())
	`, productID, platformID)
	require.NoError(t, err)

	logger := zerolog.Nop()
	sweeper := sweepers.NewStatusSweeper(&logger, time.Minute)
	require.NoError(t, sweeper.Sweep(ctx))

	var active, completed int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM sales WHERE status = 'active'`).Scan(&active))
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM sales WHERE status = 'completed'`).Scan(&completed))

	assert.Equal(t, 1, active)
	assert.Equal(t, 1, completed)
}

// Helper functions

func setupTestDatabase(ctx context.Context) (*postgres.PostgresContainer, error) {
	return postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForListeningPort("5432/tcp").
					WithStartupTimeout(60*time.Second),
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(1).
					WithStartupTimeout(60*time.Second),
			),
		),
	)
}

func setupTestSchema(ctx context.Context, t *testing.T) {
	pool := database.Pool()

	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id uuid PRIMARY KEY,
			title text NOT NULL,
			title_normalized text NOT NULL DEFAULT '',
			developer text,
			publisher text,
			created_at timestamptz NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS products (
			id uuid PRIMARY KEY,
			game_id uuid NOT NULL REFERENCES games(id),
			name text NOT NULL,
			name_normalized text NOT NULL DEFAULT '',
			sku text,
			base_price int,
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS platforms (
			id uuid PRIMARY KEY,
			name text NOT NULL,
			cooldown_days int NOT NULL DEFAULT 0,
			special_sales_exempt_from_cooldown boolean NOT NULL DEFAULT false,
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS sales (
			id uuid PRIMARY KEY,
			product_id uuid NOT NULL REFERENCES products(id),
			platform_id uuid NOT NULL REFERENCES platforms(id),
			start_date date NOT NULL,
			end_date date NOT NULL,
			sale_type text NOT NULL DEFAULT 'regular',
			status text NOT NULL DEFAULT 'scheduled',
			discount_pct int,
			notes text,
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW()
		);

		INSERT INTO games (id, title, title_normalized)
		VALUES ('` + gameID + `', 'Nebula Drift', 'nebula drift')
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO products (id, game_id, name, name_normalized)
		VALUES ('` + productID + `', '` + gameID + `', 'Nebula Drift Deluxe', 'nebula drift deluxe')
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO platforms (id, name, cooldown_days, special_sales_exempt_from_cooldown)
		VALUES ('` + platformID + `', 'Steam', 7, true)
		ON CONFLICT (id) DO NOTHING;
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := scheduling.ParseDate(s)
	require.NoError(t, err)
	return d
}
