package services

import (
	"github.com/blogem/customer-logs/repositories"
)

// Services holds all service instances
type Services struct {
	CustomerLogs CustomerLogService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		CustomerLogs: NewCustomerLogService(repos.Customers, repos.CustomerLogs),
	}
}
