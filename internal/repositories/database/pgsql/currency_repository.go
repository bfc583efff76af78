package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/SscSPs/moneyparse/internal/core/domain"
	portsrepo "github.com/SscSPs/moneyparse/internal/core/ports/repositories"
	"github.com/SscSPs/moneyparse/internal/models"
	"github.com/SscSPs/moneyparse/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const upsertCurrencyQuery = `
	INSERT INTO currencies (currency_code, number, symbol, name, precision, created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (currency_code) DO UPDATE SET
		number = EXCLUDED.number,
		symbol = EXCLUDED.symbol,
		name = EXCLUDED.name,
		precision = EXCLUDED.precision,
		last_updated_at = EXCLUDED.last_updated_at,
		last_updated_by = EXCLUDED.last_updated_by;
`

const selectCurrencyColumns = `
	SELECT currency_code, COALESCE(number, ''), symbol, name, precision, created_at, created_by, last_updated_at, last_updated_by
	FROM currencies
`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

func upsertArgs(c models.Currency) []any {
	return []any{
		c.CurrencyCode,
		c.Number,
		c.Symbol,
		c.Name,
		c.Precision,
		c.CreatedAt,
		c.CreatedBy,
		c.LastUpdatedAt,
		c.LastUpdatedBy,
	}
}

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.CurrencyCode,
		&c.Number,
		&c.Symbol,
		&c.Name,
		&c.Precision,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// SaveCurrency inserts or updates a currency. Updates keep the creation columns.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	if _, err := r.Pool.Exec(ctx, upsertCurrencyQuery, upsertArgs(modelCurr)...); err != nil {
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.CurrencyCode, err)
	}
	return nil
}

// SaveCurrencies upserts currencies in one transaction using a single batch.
func (r *PgxCurrencyRepository) SaveCurrencies(ctx context.Context, currencies []domain.Currency) (err error) {
	if len(currencies) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	batch := &pgx.Batch{}
	for _, currency := range currencies {
		batch.Queue(upsertCurrencyQuery, upsertArgs(mapping.ToModelCurrency(currency))...)
	}

	results := tx.SendBatch(ctx, batch)
	for _, currency := range currencies {
		if _, execErr := results.Exec(); execErr != nil {
			_ = results.Close()
			return fmt.Errorf("failed to save currency %s: %w", currency.CurrencyCode, execErr)
		}
	}
	if err = results.Close(); err != nil {
		return fmt.Errorf("failed to close currency batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, selectCurrencyColumns+" WHERE currency_code = $1;", currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, selectCurrencyColumns+" ORDER BY currency_code;")
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// CountCurrencies returns the number of stored currencies.
func (r *PgxCurrencyRepository) CountCurrencies(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM currencies;").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count currencies: %w", err)
	}
	return count, nil
}
