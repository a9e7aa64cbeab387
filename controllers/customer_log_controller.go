package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/blogem/customer-logs/models"
	"github.com/blogem/customer-logs/services"
	"github.com/blogem/customer-logs/userctx"
)

// InternalErrorMessage is the only detail a client sees for a server-side failure
const InternalErrorMessage = "Internal server issue, check logs"

const maxBodyBytes = 1 << 20

// CustomerLogController handles customer log requests
type CustomerLogController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewCustomerLogController creates a new customer log controller
func NewCustomerLogController(services *services.Services, logger *slog.Logger) *CustomerLogController {
	return &CustomerLogController{
		services: services,
		logger:   logger,
	}
}

// Index handles GET /
func (c *CustomerLogController) Index(w http.ResponseWriter, r *http.Request) {
	query, err := decodeQuery(w, r)
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	groups, err := c.services.CustomerLogs.GetLogsByLocation(r.Context(), query)
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, groups)
}

// Ping handles POST /opiniionTest
func (c *CustomerLogController) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "Finished!")
}

// writeError maps validation failures to 400 and everything else to an opaque 500
func (c *CustomerLogController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, validationErr)
		return
	}

	c.logger.ErrorContext(r.Context(), "customer log lookup failed",
		"request_id", userctx.GetRequestID(r.Context()),
		"user_id", userctx.GetUserID(r.Context()),
		"user", userctx.GetUserEmail(r.Context()),
		"path", r.URL.Path,
		"query", r.URL.RawQuery,
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": InternalErrorMessage})
}

// decodeQuery reads the lookup parameters from the query string. Parameters missing
// there are taken from a JSON body when one is sent.
func decodeQuery(w http.ResponseWriter, r *http.Request) (models.CustomerLogQuery, error) {
	values := r.URL.Query()
	query := models.CustomerLogQuery{
		LocationID: values.Get("locationId"),
		StartDate:  values.Get("startDate"),
		EndDate:    values.Get("endDate"),
	}
	if query.LocationID != "" && query.StartDate != "" && query.EndDate != "" {
		return query, nil
	}
	if r.Body == nil || r.Body == http.NoBody {
		return query, nil
	}

	var body models.CustomerLogQuery
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body)
	if errors.Is(err, io.EOF) {
		return query, nil
	}
	if err != nil {
		return query, &models.ValidationError{Field: "body", Message: "Invalid request body"}
	}

	if query.LocationID == "" {
		query.LocationID = body.LocationID
	}
	if query.StartDate == "" {
		query.StartDate = body.StartDate
	}
	if query.EndDate == "" {
		query.EndDate = body.EndDate
	}
	return query, nil
}
