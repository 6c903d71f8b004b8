package errors

import (
	"net/http"
)

// DefaultSettlementMessage is shown when the order service gives no reason for a rejection.
const DefaultSettlementMessage = "Settlement failed, please retry"

// ValidationError reports a missing or malformed operator input. The operator is re-prompted.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}

	return e.Field + ": " + e.Reason
}

func (e *ValidationError) HTTPCode() int     { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string { return "VALIDATION_FAILED" }
func (e *ValidationError) Message() string   { return e.Error() }
func (e *ValidationError) Details() string   { return e.Field }

// RedemptionError reports loyalty points that cannot be redeemed.
// The checkout stays on the customer step so the operator can retry or skip.
type RedemptionError struct {
	CustomerID string
	Points     int
	Reason     string
}

func (e *RedemptionError) Error() string {
	return "loyalty redemption rejected: " + e.Reason
}

func (e *RedemptionError) HTTPCode() int     { return http.StatusUnprocessableEntity }
func (e *RedemptionError) ErrorCode() string { return "REDEMPTION_REJECTED" }
func (e *RedemptionError) Message() string   { return e.Reason }
func (e *RedemptionError) Details() string   { return e.CustomerID }

// SettlementError reports an order submission that was rejected or never reached the backend.
// The draft is preserved and the payment step re-opens.
type SettlementError struct {
	ServerMessage string
	StatusCode    int
	Cause         error
}

func (e *SettlementError) Error() string {
	if e.Cause != nil {
		return "settlement failed: " + e.Message() + ": " + e.Cause.Error()
	}

	return "settlement failed: " + e.Message()
}

func (e *SettlementError) Unwrap() error { return e.Cause }

func (e *SettlementError) HTTPCode() int     { return http.StatusBadGateway }
func (e *SettlementError) ErrorCode() string { return "SETTLEMENT_FAILED" }
func (e *SettlementError) Details() string   { return "" }

// Message returns the server's message, or a generic fallback.
func (e *SettlementError) Message() string {
	if e.ServerMessage != "" {
		return e.ServerMessage
	}

	return DefaultSettlementMessage
}

// ReconciliationWarning reports a post-settlement customer re-fetch failure.
// It is never returned to the caller as a failure; the receipt proceeds with zero points earned.
type ReconciliationWarning struct {
	CustomerID string
	Cause      error
}

func (w *ReconciliationWarning) Error() string {
	msg := "loyalty balance could not be refreshed for customer " + w.CustomerID
	if w.Cause != nil {
		msg += ": " + w.Cause.Error()
	}

	return msg
}

func (w *ReconciliationWarning) Unwrap() error { return w.Cause }
