package dto

import "github.com/SscSPs/bill_tracker/internal/core/domain"

// BillRequest defines the writable fields of a bill definition.
type BillRequest struct {
	Name                string        `json:"name" binding:"required,max=100"`
	DefaultAmountDue    *domain.Money `json:"default_amount_due" binding:"required"`
	URL                 *string       `json:"url" binding:"omitempty,max=100"`
	Archived            bool          `json:"archived"`
	DefaultDraftAccount *Int          `json:"default_draft_account"` // Optional FK to bank_accounts
}

func NewBillRequest(b *domain.Bill) BillRequest {
	amount := b.DefaultAmountDue
	return BillRequest{
		Name:                b.Name,
		DefaultAmountDue:    &amount,
		URL:                 clone(b.URL),
		Archived:            b.Archived,
		DefaultDraftAccount: fromID(b.DefaultDraftAccount),
	}
}

func (r BillRequest) ToDomain() domain.Bill {
	return domain.Bill{
		Name:                r.Name,
		DefaultAmountDue:    deref(r.DefaultAmountDue),
		URL:                 clone(r.URL),
		Archived:            r.Archived,
		DefaultDraftAccount: toID(r.DefaultDraftAccount),
	}
}
