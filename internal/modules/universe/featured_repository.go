package universe

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aristath/bazaar/internal/domain"
	"github.com/rs/zerolog"
)

// FeaturedStock is a curated entry shown on the landing page ahead of the
// default trending list.
type FeaturedStock struct {
	domain.Company
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// FeaturedRepository handles featured stock persistence in config.db
type FeaturedRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewFeaturedRepository creates a new featured stock repository
func NewFeaturedRepository(db *sql.DB, log zerolog.Logger) *FeaturedRepository {
	return &FeaturedRepository{
		db:  db,
		log: log.With().Str("repository", "featured_stocks").Logger(),
	}
}

// List returns featured stocks ordered by display order, then symbol
func (r *FeaturedRepository) List() ([]FeaturedStock, error) {
	rows, err := r.db.Query(`
		SELECT symbol, company_name, exchange, sector, display_order, created_at
		FROM featured_stocks
		ORDER BY display_order ASC, symbol ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured stocks: %w", err)
	}
	defer rows.Close()

	stocks := make([]FeaturedStock, 0)
	for rows.Next() {
		var fs FeaturedStock
		var exchange string
		var createdAt int64
		if err := rows.Scan(&fs.Symbol, &fs.Name, &exchange, &fs.Sector, &fs.DisplayOrder, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan featured stock: %w", err)
		}
		fs.Exchange = domain.Exchange(exchange)
		fs.CreatedAt = time.Unix(createdAt, 0).UTC()
		stocks = append(stocks, fs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating featured stocks: %w", err)
	}

	return stocks, nil
}

// Upsert adds or replaces a featured stock. The symbol is upper-cased and
// trimmed; exchange and sector default to NSE and General.
func (r *FeaturedRepository) Upsert(c domain.Company, displayOrder int) (FeaturedStock, error) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Symbol))
	name := strings.TrimSpace(c.Name)
	if symbol == "" || name == "" {
		return FeaturedStock{}, fmt.Errorf("symbol and company name are required")
	}

	exchange := c.Exchange
	if exchange == "" {
		exchange = domain.ExchangeNSE
	}
	sector := strings.TrimSpace(c.Sector)
	if sector == "" {
		sector = "General"
	}

	now := time.Now().UTC()
	_, err := r.db.Exec(`
		INSERT INTO featured_stocks (symbol, company_name, exchange, sector, display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(symbol) DO UPDATE SET
			company_name = excluded.company_name,
			exchange = excluded.exchange,
			sector = excluded.sector,
			display_order = excluded.display_order
	`, symbol, name, string(exchange), sector, displayOrder, now.Unix())
	if err != nil {
		return FeaturedStock{}, fmt.Errorf("failed to upsert featured stock %s: %w", symbol, err)
	}

	r.log.Info().Str("symbol", symbol).Int("display_order", displayOrder).Msg("Featured stock saved")

	return FeaturedStock{
		Company:      domain.Company{Name: name, Symbol: symbol, Exchange: exchange, Sector: sector},
		DisplayOrder: displayOrder,
		CreatedAt:    time.Unix(now.Unix(), 0).UTC(),
	}, nil
}

// Remove deletes a featured stock. Returns domain.ErrNotFound if absent.
func (r *FeaturedRepository) Remove(symbol string) error {
	result, err := r.db.Exec("DELETE FROM featured_stocks WHERE symbol = ?", strings.ToUpper(strings.TrimSpace(symbol)))
	if err != nil {
		return fmt.Errorf("failed to remove featured stock %s: %w", symbol, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("featured stock %s: %w", symbol, domain.ErrNotFound)
	}
	return nil
}
