package dto

import "github.com/SscSPs/bill_tracker/internal/core/domain"

// BankAccountRequest defines the writable fields of a bank account.
type BankAccountRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Archived     bool   `json:"archived"`
	FontColorHex string `json:"font_color_hex" binding:"required,max=7"`
}

func NewBankAccountRequest(a *domain.BankAccount) BankAccountRequest {
	return BankAccountRequest{
		Name:         a.Name,
		Archived:     a.Archived,
		FontColorHex: a.FontColorHex,
	}
}

func (r BankAccountRequest) ToDomain() domain.BankAccount {
	return domain.BankAccount{
		Name:         r.Name,
		Archived:     r.Archived,
		FontColorHex: r.FontColorHex,
	}
}
