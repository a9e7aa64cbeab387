package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/blogem/customer-logs/models"
)

// CustomerRepository interface defines customer lookups
type CustomerRepository interface {
	FindByLocationID(ctx context.Context, locationID string) ([]models.Customer, error)
}

// sqliteCustomerRepository implements CustomerRepository on SQLite
type sqliteCustomerRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewSQLiteCustomerRepository creates a new SQLite customer repository
func NewSQLiteCustomerRepository(db *sql.DB, timeout time.Duration) CustomerRepository {
	return &sqliteCustomerRepository{db: db, timeout: timeout}
}

// FindByLocationID retrieves all customers of a location in storage order
func (r *sqliteCustomerRepository) FindByLocationID(ctx context.Context, locationID string) ([]models.Customer, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT customer_id, location_id, first_name, last_name, email, phone, created_date
		FROM customers
		WHERE location_id = ?
		ORDER BY rowid
	`

	rows, err := r.db.QueryContext(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		err := rows.Scan(
			&c.CustomerID,
			&c.LocationID,
			&c.FirstName,
			&c.LastName,
			&c.Email,
			&c.Phone,
			&c.CreatedDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// mongoCustomer mirrors a customers document with every field kept raw
type mongoCustomer struct {
	CustomerID  bson.RawValue `bson:"customerId"`
	LocationID  bson.RawValue `bson:"locationId"`
	FirstName   bson.RawValue `bson:"firstName"`
	LastName    bson.RawValue `bson:"lastName"`
	Email       bson.RawValue `bson:"email"`
	Phone       bson.RawValue `bson:"phone"`
	CreatedDate bson.RawValue `bson:"createdDate"`
}

// mongoCustomerRepository implements CustomerRepository on the customers collection
type mongoCustomerRepository struct {
	coll    documentFinder
	timeout time.Duration
}

// NewMongoCustomerRepository creates a new Mongo customer repository
func NewMongoCustomerRepository(coll documentFinder, timeout time.Duration) CustomerRepository {
	return &mongoCustomerRepository{coll: coll, timeout: timeout}
}

// FindByLocationID retrieves all customers whose locationId equals locationID
func (r *mongoCustomerRepository) FindByLocationID(ctx context.Context, locationID string) ([]models.Customer, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var docs []mongoCustomer
	filter := bson.D{{Key: "locationId", Value: locationID}}
	if err := findAll(ctx, r.coll, filter, &docs); err != nil {
		return nil, fmt.Errorf("failed to find customers: %w", err)
	}

	customers := make([]models.Customer, 0, len(docs))
	for _, doc := range docs {
		customers = append(customers, models.Customer{
			CustomerID:  rawString(doc.CustomerID),
			LocationID:  rawString(doc.LocationID),
			FirstName:   rawString(doc.FirstName),
			LastName:    rawString(doc.LastName),
			Email:       rawString(doc.Email),
			Phone:       rawString(doc.Phone),
			CreatedDate: storedDateString(doc.CreatedDate),
		})
	}

	return customers, nil
}
