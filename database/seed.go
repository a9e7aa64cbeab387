package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/blogem/customer-logs/models"
)

// Fixture is a set of documents loaded into the SQLite store for local development
type Fixture struct {
	Locations    []models.Location    `json:"locations"`
	Customers    []models.Customer    `json:"customers"`
	CustomerLogs []models.CustomerLog `json:"customerLogs"`
}

// LoadFixture reads a JSON fixture file
func LoadFixture(path string) (*Fixture, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	var fixture Fixture
	if err := json.Unmarshal(content, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return &fixture, nil
}

// Seed inserts the fixture in a single transaction. Existing locations and customers
// with the same id are replaced; logs are always appended.
func Seed(ctx context.Context, conn *sql.DB, fixture *Fixture) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, l := range fixture.Locations {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO locations (location_id, name, created_date) VALUES (?, ?, ?)`,
			l.LocationID, l.Name, l.CreatedDate,
		)
		if err != nil {
			return fmt.Errorf("failed to seed location %s: %w", l.LocationID, err)
		}
	}

	for _, c := range fixture.Customers {
		_, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO customers
			    (customer_id, location_id, first_name, last_name, email, phone, created_date)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, c.CustomerID, c.LocationID, c.FirstName, c.LastName, c.Email, c.Phone, c.CreatedDate)
		if err != nil {
			return fmt.Errorf("failed to seed customer %s: %w", c.CustomerID, err)
		}
	}

	for _, log := range fixture.CustomerLogs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO customer_logs (customer_id, type, text, date) VALUES (?, ?, ?, ?)`,
			log.CustomerID, log.Type, log.Text, log.Date,
		)
		if err != nil {
			return fmt.Errorf("failed to seed log for customer %s: %w", log.CustomerID, err)
		}
	}

	return tx.Commit()
}
