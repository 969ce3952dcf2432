package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gamedrive/sales-service/internal/scheduling"
)

// GetPlatform fetches a platform and its cooldown rules by ID.
// Returns scheduling.ErrPlatformNotFound when no such platform exists.
func GetPlatform(ctx context.Context, platformID string) (*Platform, error) {
	pool := Pool()

	var p Platform
	err := pool.QueryRow(ctx, `
		SELECT id, name, cooldown_days, special_sales_exempt_from_cooldown,
		       created_at, updated_at
		FROM platforms
		WHERE id = $1
	`, platformID).Scan(
		&p.ID, &p.Name, &p.CooldownDays, &p.SpecialSalesExemptFromCooldown,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", scheduling.ErrPlatformNotFound, platformID)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying platform: %w", err)
	}
	return &p, nil
}

// ListPlatforms returns all platforms ordered by name.
func ListPlatforms(ctx context.Context) ([]Platform, error) {
	pool := Pool()

	rows, err := pool.Query(ctx, `
		SELECT id, name, cooldown_days, special_sales_exempt_from_cooldown,
		       created_at, updated_at
		FROM platforms
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying platforms: %w", err)
	}
	defer rows.Close()

	platforms := []Platform{}
	for rows.Next() {
		var p Platform
		if err := rows.Scan(
			&p.ID, &p.Name, &p.CooldownDays, &p.SpecialSalesExemptFromCooldown,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning platform: %w", err)
		}
		platforms = append(platforms, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating platforms: %w", rows.Err())
	}
	return platforms, nil
}
