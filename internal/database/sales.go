package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gamedrive/sales-service/internal/scheduling"
)

// querier is satisfied by both the pool and a transaction so scoped reads
// can run inside the advisory lock.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const saleColumns = `
	s.id, s.product_id, s.platform_id, s.start_date, s.end_date,
	s.sale_type, s.status, s.discount_pct, s.notes, s.created_at, s.updated_at`

// SaleFilter contains typed query parameters for listing sales. Every
// filterable field is declared here; there is no shared mutable filter
// state between requests.
type SaleFilter struct {
	ProductID  string     // Empty = all products
	PlatformID string     // Empty = all platforms
	Statuses   []string   // Empty = all statuses
	StartAfter *time.Time // Sales starting on/after this date
	EndBefore  *time.Time // Sales ending on/before this date
	Limit      int        // 0 = default 100
	Offset     int
}

// ListSales returns sales matching the filter, newest start date first.
func ListSales(ctx context.Context, filter SaleFilter) ([]SaleRecord, error) {
	pool := Pool()

	where := []string{}
	args := []any{}

	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		where = append(where, fmt.Sprintf("s.product_id = $%d", len(args)))
	}
	if filter.PlatformID != "" {
		args = append(args, filter.PlatformID)
		where = append(where, fmt.Sprintf("s.platform_id = $%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		args = append(args, filter.Statuses)
		where = append(where, fmt.Sprintf("s.status = ANY($%d)", len(args)))
	}
	if filter.StartAfter != nil {
		args = append(args, *filter.StartAfter)
		where = append(where, fmt.Sprintf("s.start_date >= $%d", len(args)))
	}
	if filter.EndBefore != nil {
		args = append(args, *filter.EndBefore)
		where = append(where, fmt.Sprintf("s.end_date <= $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := fmt.Sprintf(`SELECT %s FROM sales s`, saleColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY s.start_date DESC, s.id LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

// GetSale fetches a single sale with product, game, and platform joined.
func GetSale(ctx context.Context, saleID string) (*SaleRecord, error) {
	pool := Pool()

	var s SaleRecord
	var p Product
	var pl Platform
	err := pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s,
		       p.id, p.game_id, p.name, p.sku, p.base_price, p.created_at, p.updated_at,
		       g.id, g.title, g.developer, g.publisher, g.created_at,
		       pl.id, pl.name, pl.cooldown_days, pl.special_sales_exempt_from_cooldown,
		       pl.created_at, pl.updated_at
		FROM sales s
		JOIN products p ON s.product_id = p.id
		JOIN games g ON p.game_id = g.id
		JOIN platforms pl ON s.platform_id = pl.id
		WHERE s.id = $1
	`, saleColumns), saleID).Scan(
		&s.ID, &s.ProductID, &s.PlatformID, &s.StartDate, &s.EndDate,
		&s.SaleType, &s.Status, &s.DiscountPct, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
		&p.ID, &p.GameID, &p.Name, &p.SKU, &p.BasePrice, &p.CreatedAt, &p.UpdatedAt,
		&p.Game.ID, &p.Game.Title, &p.Game.Developer, &p.Game.Publisher, &p.Game.CreatedAt,
		&pl.ID, &pl.Name, &pl.CooldownDays, &pl.SpecialSalesExemptFromCooldown,
		&pl.CreatedAt, &pl.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrSaleNotFound, saleID)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying sale: %w", err)
	}
	s.Product = &p
	s.Platform = &pl
	return &s, nil
}

// ScopeSales returns the conflict candidate set for a product+platform
// pair: every sale in the scope that is not in a terminal state.
func ScopeSales(ctx context.Context, productID, platformID string) ([]SaleRecord, error) {
	return scopeSales(ctx, Pool(), productID, platformID)
}

func scopeSales(ctx context.Context, q querier, productID, platformID string) ([]SaleRecord, error) {
	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM sales s
		WHERE s.product_id = $1
		  AND s.platform_id = $2
		  AND s.status NOT IN ('rejected', 'cancelled')
		ORDER BY s.start_date
	`, saleColumns), productID, platformID)
	if err != nil {
		return nil, fmt.Errorf("error querying scope sales: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]SaleRecord, error) {
	sales := []SaleRecord{}
	for rows.Next() {
		var s SaleRecord
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.PlatformID, &s.StartDate, &s.EndDate,
			&s.SaleType, &s.Status, &s.DiscountPct, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sales: %w", rows.Err())
	}
	return sales, nil
}

func snapshots(records []SaleRecord) []scheduling.Sale {
	sales := make([]scheduling.Sale, 0, len(records))
	for i := range records {
		sales = append(sales, records[i].Snapshot())
	}
	return sales
}

// CreateSale validates and inserts a new sale inside a transaction holding
// the product+platform advisory lock. Validation runs after the lock is
// acquired, not merely before, so two concurrent writers cannot both pass
// against a stale candidate set. On an invalid verdict nothing is written
// and the verdict is returned for the caller to report.
func CreateSale(ctx context.Context, detector *scheduling.Detector, rec *SaleRecord) (*SaleRecord, *scheduling.Verdict, error) {
	pool := Pool()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockScope(ctx, tx, rec.ProductID, rec.PlatformID); err != nil {
		return nil, nil, err
	}

	verdict, _, err := validateInScope(ctx, tx, detector, scheduling.Proposal{
		ProductID:  rec.ProductID,
		PlatformID: rec.PlatformID,
		Start:      rec.StartDate,
		End:        rec.EndDate,
		Type:       scheduling.SaleType(rec.SaleType),
	})
	if err != nil {
		return nil, nil, err
	}
	if !verdict.Valid {
		return nil, verdict, nil
	}

	now := time.Now()
	created := *rec
	created.ID = uuid.New().String()
	if created.Status == "" {
		created.Status = string(scheduling.SaleStatusScheduled)
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO sales (
			id, product_id, platform_id, start_date, end_date,
			sale_type, status, discount_pct, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING created_at, updated_at
	`, created.ID, created.ProductID, created.PlatformID,
		scheduling.NormalizeDate(created.StartDate), scheduling.NormalizeDate(created.EndDate),
		created.SaleType, created.Status, created.DiscountPct, created.Notes, now,
	).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("error inserting sale: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("error committing sale: %w", err)
	}
	return &created, verdict, nil
}

// SalePatch is an explicit typed patch for sale updates. Every mutable
// field is declared here; nil means "leave unchanged".
type SalePatch struct {
	StartDate   *time.Time
	EndDate     *time.Time
	SaleType    *string
	Status      *string
	DiscountPct *int
	Notes       *string
}

// touchesSchedule reports whether the patch changes anything the conflict
// engine cares about.
func (p *SalePatch) touchesSchedule() bool {
	return p.StartDate != nil || p.EndDate != nil || p.SaleType != nil
}

// UpdateSale applies a patch to an existing sale. Patches that move the
// dates or change the sale type are re-validated under the advisory lock
// with the sale excluded from its own candidate set. A status change out
// of a terminal state re-validates too: while a sale is rejected or
// cancelled it is absent from every candidate set, so its old slot may
// have been legally taken and reviving it unchecked could double-book.
func UpdateSale(ctx context.Context, detector *scheduling.Detector, saleID string, patch SalePatch) (*SaleRecord, *scheduling.Verdict, error) {
	pool := Pool()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var current SaleRecord
	err = tx.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM sales s WHERE s.id = $1
	`, saleColumns), saleID).Scan(
		&current.ID, &current.ProductID, &current.PlatformID, &current.StartDate, &current.EndDate,
		&current.SaleType, &current.Status, &current.DiscountPct, &current.Notes,
		&current.CreatedAt, &current.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil, fmt.Errorf("%w: %s", ErrSaleNotFound, saleID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error querying sale: %w", err)
	}

	updated := current
	if patch.StartDate != nil {
		updated.StartDate = scheduling.NormalizeDate(*patch.StartDate)
	}
	if patch.EndDate != nil {
		updated.EndDate = scheduling.NormalizeDate(*patch.EndDate)
	}
	if patch.SaleType != nil {
		updated.SaleType = *patch.SaleType
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.DiscountPct != nil {
		updated.DiscountPct = patch.DiscountPct
	}
	if patch.Notes != nil {
		updated.Notes = patch.Notes
	}

	reentering := scheduling.SaleStatus(current.Status).Terminal() &&
		!scheduling.SaleStatus(updated.Status).Terminal()

	var verdict *scheduling.Verdict
	if patch.touchesSchedule() || reentering {
		if err := lockScope(ctx, tx, updated.ProductID, updated.PlatformID); err != nil {
			return nil, nil, err
		}
		verdict, _, err = validateInScope(ctx, tx, detector, scheduling.Proposal{
			ProductID:     updated.ProductID,
			PlatformID:    updated.PlatformID,
			Start:         updated.StartDate,
			End:           updated.EndDate,
			Type:          scheduling.SaleType(updated.SaleType),
			ExcludeSaleID: updated.ID,
		})
		if err != nil {
			return nil, nil, err
		}
		if !verdict.Valid {
			return nil, verdict, nil
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE sales
		SET start_date = $2, end_date = $3, sale_type = $4, status = $5,
		    discount_pct = $6, notes = $7, updated_at = NOW()
		WHERE id = $1
	`, updated.ID, scheduling.NormalizeDate(updated.StartDate), scheduling.NormalizeDate(updated.EndDate),
		updated.SaleType, updated.Status, updated.DiscountPct, updated.Notes)
	if err != nil {
		return nil, nil, fmt.Errorf("error updating sale: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("error committing sale update: %w", err)
	}
	return &updated, verdict, nil
}

// DeleteSale removes a sale. Returns true when a row was deleted.
func DeleteSale(ctx context.Context, saleID string) (bool, error) {
	pool := Pool()

	tag, err := pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, saleID)
	if err != nil {
		return false, fmt.Errorf("error deleting sale: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ActivateDueSales flips scheduled sales whose start date has arrived to
// active. Used by the status sweeper.
func ActivateDueSales(ctx context.Context) (int64, error) {
	pool := Pool()

	tag, err := pool.Exec(ctx, `
		UPDATE sales
		SET status = 'active', updated_at = NOW()
		WHERE status = 'scheduled' AND start_date <= CURRENT_DATE
	`)
	if err != nil {
		return 0, fmt.Errorf("error activating due sales: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CompleteEndedSales flips active sales whose end date has passed to
// completed. Used by the status sweeper.
func CompleteEndedSales(ctx context.Context) (int64, error) {
	pool := Pool()

	tag, err := pool.Exec(ctx, `
		UPDATE sales
		SET status = 'completed', updated_at = NOW()
		WHERE status = 'active' AND end_date < CURRENT_DATE
	`)
	if err != nil {
		return 0, fmt.Errorf("error completing ended sales: %w", err)
	}
	return tag.RowsAffected(), nil
}

// lockScope takes the per product+platform advisory lock that serializes
// writers for one scheduling scope.
func lockScope(ctx context.Context, tx pgx.Tx, productID, platformID string) error {
	_, err := tx.Exec(ctx, `
		SELECT pg_advisory_xact_lock(hashtext($1 || ':' || $2))
	`, productID, platformID)
	if err != nil {
		return fmt.Errorf("error acquiring scope lock: %w", err)
	}
	return nil
}

// validateInScope loads the policy and candidate set through q (a
// transaction holding the scope lock) and runs the detector.
func validateInScope(ctx context.Context, q querier, detector *scheduling.Detector, proposal scheduling.Proposal) (*scheduling.Verdict, *Platform, error) {
	if err := proposal.Validate(); err != nil {
		return nil, nil, err
	}

	var platform Platform
	err := q.QueryRow(ctx, `
		SELECT id, name, cooldown_days, special_sales_exempt_from_cooldown,
		       created_at, updated_at
		FROM platforms
		WHERE id = $1
	`, proposal.PlatformID).Scan(
		&platform.ID, &platform.Name, &platform.CooldownDays,
		&platform.SpecialSalesExemptFromCooldown, &platform.CreatedAt, &platform.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil, fmt.Errorf("%w: %s", scheduling.ErrPlatformNotFound, proposal.PlatformID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error querying platform: %w", err)
	}

	existing, err := scopeSales(ctx, q, proposal.ProductID, proposal.PlatformID)
	if err != nil {
		return nil, nil, err
	}

	verdict := detector.Validate(proposal, snapshots(existing), platform.Policy())
	return &verdict, &platform, nil
}

// ValidateProposal runs the conflict check without writing anything. Used
// by the validation endpoints and the CLI.
func ValidateProposal(ctx context.Context, detector *scheduling.Detector, proposal scheduling.Proposal) (*scheduling.Verdict, *Platform, error) {
	return validateInScope(ctx, Pool(), detector, proposal)
}
