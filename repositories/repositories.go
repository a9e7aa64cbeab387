package repositories

import (
	"database/sql"
	"time"

	"github.com/blogem/customer-logs/database"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Customers    CustomerRepository
	CustomerLogs CustomerLogRepository
}

// NewSQLiteRepositories creates repositories backed by the SQLite store
func NewSQLiteRepositories(db *sql.DB, queryTimeout time.Duration) *Repositories {
	return &Repositories{
		Customers:    NewSQLiteCustomerRepository(db, queryTimeout),
		CustomerLogs: NewSQLiteCustomerLogRepository(db, queryTimeout),
	}
}

// NewMongoRepositories creates repositories backed by the Mongo document store
func NewMongoRepositories(store *database.MongoStore, queryTimeout time.Duration) *Repositories {
	return &Repositories{
		Customers:    NewMongoCustomerRepository(store.Collection(database.CustomersCollection), queryTimeout),
		CustomerLogs: NewMongoCustomerLogRepository(store.Collection(database.CustomerLogsCollection), queryTimeout),
	}
}
