package dto

import "github.com/SscSPs/bill_tracker/internal/core/domain"

// RecurrenceRequest defines the writable fields of a recurrence pattern.
type RecurrenceRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Calculation string `json:"calculation" binding:"max=100"` // Optional, may be blank
	Archived    bool   `json:"archived"`
}

// NewRecurrenceRequest builds a request holding the current values of r.
func NewRecurrenceRequest(r *domain.Recurrence) RecurrenceRequest {
	return RecurrenceRequest{
		Name:        r.Name,
		Calculation: r.Calculation,
		Archived:    r.Archived,
	}
}

func (r RecurrenceRequest) ToDomain() domain.Recurrence {
	return domain.Recurrence{
		Name:        r.Name,
		Calculation: r.Calculation,
		Archived:    r.Archived,
	}
}
