package dto

import "github.com/SscSPs/bill_tracker/internal/core/domain"

// BankAccountInstanceRequest defines the writable fields of a bank account
// instance.
type BankAccountInstanceRequest struct {
	BankAccount    *Int          `json:"bank_account" binding:"required"`
	Priority       Int           `json:"priority" binding:"min=-2147483648,max=2147483647"`
	DueDate        *domain.Date  `json:"due_date" binding:"required"`
	PayDate        *domain.Date  `json:"pay_date"`
	Name           string        `json:"name" binding:"required,max=100"`
	Status         *Int          `json:"status" binding:"required"`
	Archived       bool          `json:"archived"`
	CurrentBalance *domain.Money `json:"current_balance"`
	Recurrence     *Int          `json:"recurrence"`
}

func NewBankAccountInstanceRequest(i *domain.BankAccountInstance) BankAccountInstanceRequest {
	account, status, due := Int(i.BankAccount), Int(i.Status), i.DueDate
	return BankAccountInstanceRequest{
		BankAccount:    &account,
		Priority:       Int(i.Priority),
		DueDate:        &due,
		PayDate:        clone(i.PayDate),
		Name:           i.Name,
		Status:         &status,
		Archived:       i.Archived,
		CurrentBalance: clone(i.CurrentBalance),
		Recurrence:     fromID(i.Recurrence),
	}
}

func (r BankAccountInstanceRequest) ToDomain() domain.BankAccountInstance {
	return domain.BankAccountInstance{
		BankAccount:    int64(deref(r.BankAccount)),
		Priority:       int32(r.Priority),
		DueDate:        deref(r.DueDate),
		PayDate:        clone(r.PayDate),
		Name:           r.Name,
		Status:         int64(deref(r.Status)),
		Archived:       r.Archived,
		CurrentBalance: clone(r.CurrentBalance),
		Recurrence:     toID(r.Recurrence),
	}
}
