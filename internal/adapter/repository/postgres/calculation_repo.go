package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gstmate/gstmate/internal/domain"
	"github.com/gstmate/gstmate/internal/usecase"
)

// CalculationRepository implements usecase.CalculationRepository on Postgres.
type CalculationRepository struct {
	pool  *pgxpool.Pool
	idGen usecase.IDGenerator
}

// NewCalculationRepository creates a new CalculationRepository.
func NewCalculationRepository(pool *pgxpool.Pool, idGen usecase.IDGenerator) *CalculationRepository {
	return &CalculationRepository{
		pool:  pool,
		idGen: idGen,
	}
}

// Append stores a calculation. The repository assigns the identifier and the
// database assigns the timestamp (now(), never a client clock, so ordering
// holds under clock skew). The assigned values are written back into calc.
func (r *CalculationRepository) Append(ctx context.Context, calc *domain.Calculation) error {
	id := r.idGen.Generate()

	query := `
		INSERT INTO calculations (id, user_id, amount, gst_rate, gst_amount, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING created_at
	`

	var createdAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, query,
		id,
		calc.UserID,
		decimalToNumeric(calc.Amount),
		decimalToNumeric(calc.GSTRate),
		decimalToNumeric(calc.GSTAmount),
		decimalToNumeric(calc.TotalAmount),
	).Scan(&createdAt)
	if err != nil {
		return fmt.Errorf("failed to append calculation: %w", err)
	}

	calc.ID = id
	calc.CreatedAt = createdAt.Time

	return nil
}

// ListRecent retrieves a user's most recent calculations, newest first. The
// user_id filter is a hard invariant: no query runs unscoped.
func (r *CalculationRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Calculation, error) {
	query := `
		SELECT id, user_id, amount, gst_rate, gst_amount, total_amount, created_at
		FROM calculations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	calculations := make([]*domain.Calculation, 0, limit)
	for rows.Next() {
		var (
			calc      domain.Calculation
			amount    pgtype.Numeric
			rate      pgtype.Numeric
			gst       pgtype.Numeric
			total     pgtype.Numeric
			createdAt pgtype.Timestamptz
		)

		if err := rows.Scan(&calc.ID, &calc.UserID, &amount, &rate, &gst, &total, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan calculation: %w", err)
		}

		calc.Amount = numericToDecimal(amount)
		calc.GSTRate = numericToDecimal(rate)
		calc.GSTAmount = numericToDecimal(gst)
		calc.TotalAmount = numericToDecimal(total)
		calc.CreatedAt = createdAt.Time

		calculations = append(calculations, &calc)
	}

	return calculations, rows.Err()
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}
