package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetProduct fetches a product with its game joined in.
func GetProduct(ctx context.Context, productID string) (*Product, error) {
	pool := Pool()

	var p Product
	err := pool.QueryRow(ctx, `
		SELECT p.id, p.game_id, p.name, p.sku, p.base_price, p.created_at, p.updated_at,
		       g.id, g.title, g.developer, g.publisher, g.created_at
		FROM products p
		JOIN games g ON p.game_id = g.id
		WHERE p.id = $1
	`, productID).Scan(
		&p.ID, &p.GameID, &p.Name, &p.SKU, &p.BasePrice, &p.CreatedAt, &p.UpdatedAt,
		&p.Game.ID, &p.Game.Title, &p.Game.Developer, &p.Game.Publisher, &p.Game.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("product not found: %s", productID)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying product: %w", err)
	}
	return &p, nil
}

// SearchProducts finds products whose normalized name or game title
// matches the normalized query. Callers pass the query through
// catalog.NormalizeTitle so "pokémon" and "pokemon" hit the same rows.
func SearchProducts(ctx context.Context, normalizedQuery string, limit int) ([]Product, error) {
	pool := Pool()

	if limit <= 0 {
		limit = 25
	}

	rows, err := pool.Query(ctx, `
		SELECT p.id, p.game_id, p.name, p.sku, p.base_price, p.created_at, p.updated_at,
		       g.id, g.title, g.developer, g.publisher, g.created_at
		FROM products p
		JOIN games g ON p.game_id = g.id
		WHERE p.name_normalized LIKE '%' || $1 || '%'
		   OR g.title_normalized LIKE '%' || $1 || '%'
		ORDER BY g.title, p.name
		LIMIT $2
	`, normalizedQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching products: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.GameID, &p.Name, &p.SKU, &p.BasePrice, &p.CreatedAt, &p.UpdatedAt,
			&p.Game.ID, &p.Game.Title, &p.Game.Developer, &p.Game.Publisher, &p.Game.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating products: %w", rows.Err())
	}
	return products, nil
}
