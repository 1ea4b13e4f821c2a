package dto

import "github.com/SscSPs/bill_tracker/internal/core/domain"

// DueBillRequest defines the writable fields of a due bill.
type DueBillRequest struct {
	Bill           *Int          `json:"bill" binding:"required"`
	Priority       Int           `json:"priority" binding:"min=0,max=2147483647"`
	DueDate        *domain.Date  `json:"due_date" binding:"required"`
	PayDate        *domain.Date  `json:"pay_date"`
	MinAmountDue   *domain.Money `json:"min_amount_due"`
	TotalAmountDue *domain.Money `json:"total_amount_due"`
	Status         *Int          `json:"status" binding:"required"`
	Archived       bool          `json:"archived"`
	Confirmation   *string       `json:"confirmation" binding:"omitempty,max=100"`
	Notes          *string       `json:"notes"`
	DraftAccount   *Int          `json:"draft_account"`
	Recurrence     *Int          `json:"recurrence"`
}

func NewDueBillRequest(d *domain.DueBill) DueBillRequest {
	bill, status, due := Int(d.Bill), Int(d.Status), d.DueDate
	return DueBillRequest{
		Bill:           &bill,
		Priority:       Int(d.Priority),
		DueDate:        &due,
		PayDate:        clone(d.PayDate),
		MinAmountDue:   clone(d.MinAmountDue),
		TotalAmountDue: clone(d.TotalAmountDue),
		Status:         &status,
		Archived:       d.Archived,
		Confirmation:   clone(d.Confirmation),
		Notes:          clone(d.Notes),
		DraftAccount:   fromID(d.DraftAccount),
		Recurrence:     fromID(d.Recurrence),
	}
}

func (r DueBillRequest) ToDomain() domain.DueBill {
	return domain.DueBill{
		Bill:           int64(deref(r.Bill)),
		Priority:       int32(r.Priority),
		DueDate:        deref(r.DueDate),
		PayDate:        clone(r.PayDate),
		MinAmountDue:   clone(r.MinAmountDue),
		TotalAmountDue: clone(r.TotalAmountDue),
		Status:         int64(deref(r.Status)),
		Archived:       r.Archived,
		Confirmation:   clone(r.Confirmation),
		Notes:          clone(r.Notes),
		DraftAccount:   toID(r.DraftAccount),
		Recurrence:     toID(r.Recurrence),
	}
}
