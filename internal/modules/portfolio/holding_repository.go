package portfolio

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aristath/bazaar/internal/database"
	"github.com/aristath/bazaar/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HoldingRepository handles holding persistence in portfolio.db
type HoldingRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(db *sql.DB, log zerolog.Logger) *HoldingRepository {
	return &HoldingRepository{
		db:  db,
		log: log.With().Str("repository", "holdings").Logger(),
	}
}

// List returns the holdings of userID ordered by creation, then symbol
func (r *HoldingRepository) List(userID string) ([]Holding, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, symbol, company_name, exchange, sector, quantity, avg_buy_price, created_at, updated_at
		FROM holdings
		WHERE user_id = ?
		ORDER BY created_at ASC, symbol ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	holdings := make([]Holding, 0)
	for rows.Next() {
		var h Holding
		var createdAt, updatedAt int64
		if err := rows.Scan(&h.ID, &h.UserID, &h.Symbol, &h.CompanyName, &h.Exchange, &h.Sector,
			&h.Quantity, &h.AvgBuyPrice, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		h.CreatedAt = time.Unix(createdAt, 0).UTC()
		h.UpdatedAt = time.Unix(updatedAt, 0).UTC()
		holdings = append(holdings, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holdings: %w", err)
	}

	return holdings, nil
}

// Upsert validates and stores holdings for userID in one transaction. A holding
// for a symbol the user already owns replaces its quantity and average price.
func (r *HoldingRepository) Upsert(userID string, holdings []Holding) ([]Holding, error) {
	for _, h := range holdings {
		if err := Validate(h); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	saved := make([]Holding, 0, len(holdings))

	err := database.WithTransaction(r.db, func(tx *sql.Tx) error {
		for _, h := range holdings {
			h.UserID = userID
			h.Symbol = strings.ToUpper(strings.TrimSpace(h.Symbol))
			if h.ID == "" {
				h.ID = uuid.New().String()
			}
			if h.Exchange == "" {
				h.Exchange = string(domain.ExchangeNSE)
			}
			if h.Sector == "" {
				h.Sector = "General"
			}
			if h.CompanyName == "" {
				h.CompanyName = h.Symbol
			}

			_, err := tx.Exec(`
				INSERT INTO holdings (id, user_id, symbol, company_name, exchange, sector, quantity, avg_buy_price, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(user_id, symbol) DO UPDATE SET
					quantity = excluded.quantity,
					avg_buy_price = excluded.avg_buy_price,
					updated_at = excluded.updated_at
			`, h.ID, h.UserID, h.Symbol, h.CompanyName, h.Exchange, h.Sector, h.Quantity, h.AvgBuyPrice, now.Unix(), now.Unix())
			if err != nil {
				return fmt.Errorf("failed to upsert holding %s: %w", h.Symbol, err)
			}

			var createdAt int64
			if err := tx.QueryRow("SELECT id, created_at FROM holdings WHERE user_id = ? AND symbol = ?", h.UserID, h.Symbol).
				Scan(&h.ID, &createdAt); err != nil {
				return fmt.Errorf("failed to read back holding %s: %w", h.Symbol, err)
			}
			h.CreatedAt = time.Unix(createdAt, 0).UTC()
			h.UpdatedAt = time.Unix(now.Unix(), 0).UTC()
			saved = append(saved, h)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Debug().Str("user_id", userID).Int("count", len(saved)).Msg("Holdings saved")
	return saved, nil
}

// Delete removes holding id owned by userID. Returns domain.ErrNotFound if absent.
func (r *HoldingRepository) Delete(userID, id string) error {
	result, err := r.db.Exec("DELETE FROM holdings WHERE user_id = ? AND id = ?", userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete holding %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("holding %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
