package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/blogem/customer-logs/models"
	"github.com/blogem/customer-logs/repositories"
)

var tracer = otel.Tracer("github.com/blogem/customer-logs/services")

// CustomerLogService interface defines the customer log lookups
type CustomerLogService interface {
	LookupCustomers(ctx context.Context, locationID string) ([]models.Customer, error)
	LookupLogs(ctx context.Context, customerID, startDate, endDate string) (*models.CustomerLogGroup, error)
	GetLogsByLocation(ctx context.Context, query models.CustomerLogQuery) ([]models.CustomerLogGroup, error)
}

// customerLogService implements CustomerLogService interface
type customerLogService struct {
	customerRepo repositories.CustomerRepository
	logRepo      repositories.CustomerLogRepository
}

// NewCustomerLogService creates a new customer log service
func NewCustomerLogService(customerRepo repositories.CustomerRepository, logRepo repositories.CustomerLogRepository) CustomerLogService {
	return &customerLogService{
		customerRepo: customerRepo,
		logRepo:      logRepo,
	}
}

// LookupCustomers retrieves all customers of a location in store order.
// An unknown location yields an empty slice.
func (s *customerLogService) LookupCustomers(ctx context.Context, locationID string) ([]models.Customer, error) {
	ctx, span := tracer.Start(ctx, "LookupCustomers", trace.WithAttributes(
		attribute.String("location.id", locationID),
	))
	defer span.End()

	customers, err := s.customerRepo.FindByLocationID(ctx, locationID)
	if err != nil {
		return nil, recordError(span, models.NewInfrastructureError("lookup customers", err))
	}
	if customers == nil {
		customers = []models.Customer{}
	}

	span.SetAttributes(attribute.Int("customer.count", len(customers)))
	return customers, nil
}

// LookupLogs retrieves a customer's logs dated within [startDate, endDate]
func (s *customerLogService) LookupLogs(ctx context.Context, customerID, startDate, endDate string) (*models.CustomerLogGroup, error) {
	dateRange, err := models.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.lookupLogsInRange(ctx, customerID, dateRange)
}

// GetLogsByLocation returns one log group per customer of the location, in the order
// the customers were found. Any failure aborts the whole request.
func (s *customerLogService) GetLogsByLocation(ctx context.Context, query models.CustomerLogQuery) ([]models.CustomerLogGroup, error) {
	// Dates are checked before touching the store so bad input is reported
	// even for locations without customers.
	dateRange, err := models.NewDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	customers, err := s.LookupCustomers(ctx, query.LocationID)
	if err != nil {
		return nil, err
	}

	groups := make([]models.CustomerLogGroup, 0, len(customers))
	for _, customer := range customers {
		group, err := s.lookupLogsInRange(ctx, customer.CustomerID, dateRange)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *group)
	}

	return groups, nil
}

func (s *customerLogService) lookupLogsInRange(ctx context.Context, customerID string, dateRange models.DateRange) (*models.CustomerLogGroup, error) {
	ctx, span := tracer.Start(ctx, "LookupLogs", trace.WithAttributes(
		attribute.String("customer.id", customerID),
		attribute.String("range.start", models.FormatDate(dateRange.Start)),
		attribute.String("range.end", models.FormatDate(dateRange.End)),
	))
	defer span.End()

	logs, err := s.logRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, recordError(span, models.NewInfrastructureError("lookup customer logs", err))
	}

	filtered, err := models.FilterLogsInRange(logs, dateRange)
	if err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(
		attribute.Int("log.total", len(logs)),
		attribute.Int("log.count", len(filtered)),
	)
	return models.NewCustomerLogGroup(customerID, filtered), nil
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
