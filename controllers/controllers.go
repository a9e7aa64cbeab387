package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/blogem/customer-logs/services"
)

// writeJSON encodes data as the response body with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// Controllers holds all controller instances
type Controllers struct {
	CustomerLogs *CustomerLogController
	Health       *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, logger *slog.Logger, serviceName string, checks ...ReadyCheck) *Controllers {
	return &Controllers{
		CustomerLogs: NewCustomerLogController(services, logger),
		Health:       NewHealthController(serviceName, checks...),
	}
}
