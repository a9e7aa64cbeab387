package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/customer-logs/models"
	"github.com/blogem/customer-logs/repositories"
	"github.com/blogem/customer-logs/repositories/mocks"
)

// CustomerLogServiceTestSuite is a test suite for the customer log lookups
type CustomerLogServiceTestSuite struct {
	suite.Suite
	service          CustomerLogService
	mockCustomerRepo *mocks.MockCustomerRepository
	mockLogRepo      *mocks.MockCustomerLogRepository
	ctx              context.Context
}

// SetupTest sets up the test suite before each test
func (suite *CustomerLogServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = mocks.NewMockCustomerRepository(suite.T())
	suite.mockLogRepo = mocks.NewMockCustomerLogRepository(suite.T())
	suite.ctx = context.Background()

	suite.service = NewCustomerLogService(suite.mockCustomerRepo, suite.mockLogRepo)
}

func januaryQuery(locationID string) models.CustomerLogQuery {
	return models.CustomerLogQuery{LocationID: locationID, StartDate: "2021-01-01", EndDate: "2021-01-31"}
}

// TestGetLogsByLocation_GroupsPerCustomer covers the L1/C1/C2 scenario
func (suite *CustomerLogServiceTestSuite) TestGetLogsByLocation_GroupsPerCustomer() {
	// Setup: C1 has one log in range and one after it, C2 has none
	suite.mockCustomerRepo.EXPECT().FindByLocationID(mock.Anything, "L1").Return([]models.Customer{
		{CustomerID: "C1", LocationID: "L1"},
		{CustomerID: "C2", LocationID: "L1"},
	}, nil)
	suite.mockLogRepo.EXPECT().FindByCustomerID(mock.Anything, "C1").Return([]models.CustomerLog{
		{CustomerID: "C1", Type: "call", Text: "in range", Date: "2021-01-05"},
		{CustomerID: "C1", Type: "call", Text: "too late", Date: "2021-02-01"},
	}, nil)
	suite.mockLogRepo.EXPECT().FindByCustomerID(mock.Anything, "C2").Return([]models.CustomerLog{}, nil)

	// Act
	groups, err := suite.service.GetLogsByLocation(suite.ctx, januaryQuery("L1"))

	// Assert
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), groups, 2)

	assert.Equal(suite.T(), "C1", groups[0].CustomerID)
	assert.Equal(suite.T(), 1, groups[0].LogCount)
	assert.Equal(suite.T(), "2021-01-05", groups[0].CustomerLogs[0].Date)

	assert.Equal(suite.T(), "C2", groups[1].CustomerID)
	assert.Equal(suite.T(), 0, groups[1].LogCount)
	assert.NotNil(suite.T(), groups[1].CustomerLogs)
	assert.Empty(suite.T(), groups[1].CustomerLogs)
}

// TestGetLogsByLocation_PreservesCustomerOrder tests that groups follow the lookup order, not id order
func (suite *CustomerLogServiceTestSuite) TestGetLogsByLocation_PreservesCustomerOrder() {
	suite.mockCustomerRepo.EXPECT().FindByLocationID(mock.Anything, "L1").Return([]models.Customer{
		{CustomerID: "Z9"}, {CustomerID: "A1"}, {CustomerID: "M5"},
	}, nil)

	var calls []string
	suite.mockLogRepo.EXPECT().FindByCustomerID(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, customerID string) ([]models.CustomerLog, error) {
			calls = append(calls, customerID)
			return nil, nil
		}).Times(3)

	groups, err := suite.service.GetLogsByLocation(suite.ctx, januaryQuery("L1"))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"Z9", "A1", "M5"}, calls)
	assert.Equal(suite.T(), "Z9", groups[0].CustomerID)
	assert.Equal(suite.T(), "A1", groups[1].CustomerID)
	assert.Equal(suite.T(), "M5", groups[2].CustomerID)
}

// TestGetLogsByLocation_NoCustomers tests that an unknown location yields an empty, non-nil result
func (suite *CustomerLogServiceTestSuite) TestGetLogsByLocation_NoCustomers() {
	suite.mockCustomerRepo.EXPECT().FindByLocationID(mock.Anything, "nowhere").Return(nil, nil)

	groups, err := suite.service.GetLogsByLocation(suite.ctx, januaryQuery("nowhere"))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), groups)
	assert.Empty(suite.T(), groups)
}

// TestGetLogsByLocation_InvalidStartDate tests that bad dates fail before the store is queried
func (suite *CustomerLogServiceTestSuite) TestGetLogsByLocation_InvalidStartDate() {
	query := models.CustomerLogQuery{LocationID: "L1", StartDate: "not-a-date", EndDate: "2021-01-31"}

	groups, err := suite.service.GetLogsByLocation(suite.ctx, query)

	var ve *models.ValidationError
	assert.True(suite.T(), errors.As(err, &ve))
	assert.Equal(suite.T(), "startDate", ve.Field)
	assert.Equal(suite.T(), models.InvalidDateMessage, ve.Message)
	assert.Nil(suite.T(), groups)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindByLocationID", mock.Anything, mock.Anything)
}

// TestGetLogsByLocation_InvalidStoredDate tests that a corrupt log date is a validation failure
func (suite *CustomerLogServiceTestSuite) TestGetLogsByLocation_InvalidStoredDate() {
	suite.mockCustomerRepo.EXPECT().FindByLocationID(mock.Anything, "L1").Return([]models.Customer{{CustomerID: "C1"}}, nil)
	suite.mockLogRepo.EXPECT().FindByCustomerID(mock.Anything, "C1").Return([]models.CustomerLog{
		{CustomerID: "C1", Date: "sometime"},
	}, nil)

	groups, err := suite.service.GetLogsByLocation(suite.ctx, januaryQuery("L1"))

	var ve *models.ValidationError
	assert.True(suite.T(), errors.As(err, &ve))
	assert.Equal(suite.T(), "date", ve.Field)
	assert.Nil(suite.T(), groups)
}

// TestGetLogsByLocation_CustomerLookupFails tests error handling when the customer store fails
func (suite *CustomerLogServiceTestSuite) TestGetLogsByLocation_CustomerLookupFails() {
	expectedError := errors.New("database connection failed")
	suite.mockCustomerRepo.EXPECT().FindByLocationID(mock.Anything, "L1").Return(nil, expectedError)

	groups, err := suite.service.GetLogsByLocation(suite.ctx, januaryQuery("L1"))

	var ie *models.InfrastructureError
	assert.True(suite.T(), errors.As(err, &ie))
	assert.Equal(suite.T(), "lookup customers", ie.Op)
	assert.ErrorIs(suite.T(), err, expectedError)
	assert.Nil(suite.T(), groups)
}

// TestGetLogsByLocation_NoPartialResults tests that a failing log lookup aborts the request
func (suite *CustomerLogServiceTestSuite) TestGetLogsByLocation_NoPartialResults() {
	expectedError := errors.New("cursor killed")
	suite.mockCustomerRepo.EXPECT().FindByLocationID(mock.Anything, "L1").Return([]models.Customer{
		{CustomerID: "C1"}, {CustomerID: "C2"}, {CustomerID: "C3"},
	}, nil)
	suite.mockLogRepo.EXPECT().FindByCustomerID(mock.Anything, "C1").Return([]models.CustomerLog{}, nil)
	suite.mockLogRepo.EXPECT().FindByCustomerID(mock.Anything, "C2").Return(nil, expectedError)

	groups, err := suite.service.GetLogsByLocation(suite.ctx, januaryQuery("L1"))

	var ie *models.InfrastructureError
	assert.True(suite.T(), errors.As(err, &ie))
	assert.Equal(suite.T(), "lookup customer logs", ie.Op)
	assert.Nil(suite.T(), groups)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "FindByCustomerID", mock.Anything, "C3")
}

// TestLookupLogs_InclusiveBounds tests that logs dated exactly on either bound are kept
func (suite *CustomerLogServiceTestSuite) TestLookupLogs_InclusiveBounds() {
	suite.mockLogRepo.EXPECT().FindByCustomerID(mock.Anything, "C1").Return([]models.CustomerLog{
		{CustomerID: "C1", Text: "start", Date: "2021-01-01"},
		{CustomerID: "C1", Text: "end", Date: "2021-01-31T00:00:00Z"},
		{CustomerID: "C1", Text: "after end", Date: "2021-01-31T00:00:01Z"},
	}, nil)

	group, err := suite.service.LookupLogs(suite.ctx, "C1", "2021-01-01", "2021-01-31")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "C1", group.CustomerID)
	assert.Equal(suite.T(), 2, group.LogCount)
	assert.Equal(suite.T(), len(group.CustomerLogs), group.LogCount)
	assert.Equal(suite.T(), "start", group.CustomerLogs[0].Text)
	assert.Equal(suite.T(), "end", group.CustomerLogs[1].Text)
}

// TestLookupLogs_ReversedRange tests that start after end yields an empty group, not an error
func (suite *CustomerLogServiceTestSuite) TestLookupLogs_ReversedRange() {
	suite.mockLogRepo.EXPECT().FindByCustomerID(mock.Anything, "C1").Return([]models.CustomerLog{
		{CustomerID: "C1", Date: "2021-01-15"},
	}, nil)

	group, err := suite.service.LookupLogs(suite.ctx, "C1", "2021-01-31", "2021-01-01")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, group.LogCount)
	assert.Empty(suite.T(), group.CustomerLogs)
}

// TestLookupLogs_InvalidEndDate tests that the store is not queried for bad input
func (suite *CustomerLogServiceTestSuite) TestLookupLogs_InvalidEndDate() {
	group, err := suite.service.LookupLogs(suite.ctx, "C1", "2021-01-01", "31/01/2021")

	var ve *models.ValidationError
	assert.True(suite.T(), errors.As(err, &ve))
	assert.Equal(suite.T(), "endDate", ve.Field)
	assert.Nil(suite.T(), group)
}

// TestLookupCustomers_PassesThrough tests the customer lookup on its own
func (suite *CustomerLogServiceTestSuite) TestLookupCustomers_PassesThrough() {
	suite.mockCustomerRepo.EXPECT().FindByLocationID(mock.Anything, "L1").Return([]models.Customer{
		{CustomerID: "C1", FirstName: "Ada"},
	}, nil)

	customers, err := suite.service.LookupCustomers(suite.ctx, "L1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []models.Customer{{CustomerID: "C1", FirstName: "Ada"}}, customers)
}

// TestCustomerLogServiceTestSuite runs the test suite
func TestCustomerLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerLogServiceTestSuite))
}

func TestNewServices(t *testing.T) {
	repos := &repositories.Repositories{
		Customers:    mocks.NewMockCustomerRepository(t),
		CustomerLogs: mocks.NewMockCustomerLogRepository(t),
	}

	srvs := NewServices(repos)

	assert.NotNil(t, srvs.CustomerLogs)
}
