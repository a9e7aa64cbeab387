package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/blogem/customer-logs/models"
)

// CustomerLogRepository interface defines customer log lookups
type CustomerLogRepository interface {
	FindByCustomerID(ctx context.Context, customerID string) ([]models.CustomerLog, error)
}

// sqliteCustomerLogRepository implements CustomerLogRepository on SQLite
type sqliteCustomerLogRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewSQLiteCustomerLogRepository creates a new SQLite customer log repository
func NewSQLiteCustomerLogRepository(db *sql.DB, timeout time.Duration) CustomerLogRepository {
	return &sqliteCustomerLogRepository{db: db, timeout: timeout}
}

// FindByCustomerID retrieves every log of a customer, unfiltered by date
func (r *sqliteCustomerLogRepository) FindByCustomerID(ctx context.Context, customerID string) ([]models.CustomerLog, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT customer_id, type, text, date
		FROM customer_logs
		WHERE customer_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer logs: %w", err)
	}
	defer rows.Close()

	logs := []models.CustomerLog{}
	for rows.Next() {
		var l models.CustomerLog
		if err := rows.Scan(&l.CustomerID, &l.Type, &l.Text, &l.Date); err != nil {
			return nil, fmt.Errorf("failed to scan customer log: %w", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer logs: %w", err)
	}

	return logs, nil
}

// mongoCustomerLog mirrors a customerLogs document. Fields are kept raw because
// documents store the date as a string, a BSON datetime or epoch milliseconds.
type mongoCustomerLog struct {
	CustomerID bson.RawValue `bson:"customerId"`
	Type       bson.RawValue `bson:"type"`
	Text       bson.RawValue `bson:"text"`
	Date       bson.RawValue `bson:"date"`
}

// mongoCustomerLogRepository implements CustomerLogRepository on the customerLogs collection
type mongoCustomerLogRepository struct {
	coll    documentFinder
	timeout time.Duration
}

// NewMongoCustomerLogRepository creates a new Mongo customer log repository
func NewMongoCustomerLogRepository(coll documentFinder, timeout time.Duration) CustomerLogRepository {
	return &mongoCustomerLogRepository{coll: coll, timeout: timeout}
}

// FindByCustomerID retrieves every log whose customerId equals customerID
func (r *mongoCustomerLogRepository) FindByCustomerID(ctx context.Context, customerID string) ([]models.CustomerLog, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var docs []mongoCustomerLog
	filter := bson.D{{Key: "customerId", Value: customerID}}
	if err := findAll(ctx, r.coll, filter, &docs); err != nil {
		return nil, fmt.Errorf("failed to find customer logs: %w", err)
	}

	logs := make([]models.CustomerLog, 0, len(docs))
	for _, doc := range docs {
		logs = append(logs, models.CustomerLog{
			CustomerID: rawString(doc.CustomerID),
			Type:       rawString(doc.Type),
			Text:       rawString(doc.Text),
			Date:       storedDateString(doc.Date),
		})
	}

	return logs, nil
}
