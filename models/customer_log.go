package models

import "time"

// CustomerLog represents a timestamped interaction record belonging to one customer
type CustomerLog struct {
	CustomerID string `json:"customerId" db:"customer_id"`
	Type       string `json:"type" db:"type"`
	Text       string `json:"text" db:"text"`
	Date       string `json:"date" db:"date"`
}

// CustomerLogGroup is the per-customer aggregation of logs filtered to a date range
type CustomerLogGroup struct {
	CustomerID   string        `json:"customerId"`
	LogCount     int           `json:"logCount"`
	CustomerLogs []CustomerLog `json:"customerLogs"`
}

// NewCustomerLogGroup builds a group whose count always matches its logs.
// A nil slice is replaced by an empty one so it encodes as [].
func NewCustomerLogGroup(customerID string, logs []CustomerLog) *CustomerLogGroup {
	if logs == nil {
		logs = []CustomerLog{}
	}
	return &CustomerLogGroup{
		CustomerID:   customerID,
		LogCount:     len(logs),
		CustomerLogs: logs,
	}
}

// CustomerLogQuery holds the parameters of a customer log request
type CustomerLogQuery struct {
	LocationID string `json:"locationId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// FilterLogsInRange returns the logs whose date falls inside the range, keeping their order.
// A log date that cannot be parsed fails the whole filter.
func FilterLogsInRange(logs []CustomerLog, dateRange DateRange) ([]CustomerLog, error) {
	filtered := []CustomerLog{}
	for _, log := range logs {
		date, err := ParseDate(log.Date)
		if err != nil {
			return nil, NewInvalidDateError("date")
		}
		if dateRange.Contains(date) {
			filtered = append(filtered, log)
		}
	}
	return filtered, nil
}

// FormatStoredDate renders a stored timestamp the way string dates are kept in the store
func FormatStoredDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
