package dto

import "github.com/SscSPs/bill_tracker/internal/core/domain"

// BillStatusRequest defines the writable fields of a bill status.
type BillStatusRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	Archived          bool   `json:"archived"`
	HighlightColorHex string `json:"highlight_color_hex" binding:"required,max=7"`
}

func NewBillStatusRequest(s *domain.BillStatus) BillStatusRequest {
	return BillStatusRequest{
		Name:              s.Name,
		Archived:          s.Archived,
		HighlightColorHex: s.HighlightColorHex,
	}
}

func (r BillStatusRequest) ToDomain() domain.BillStatus {
	return domain.BillStatus{
		Name:              r.Name,
		Archived:          r.Archived,
		HighlightColorHex: r.HighlightColorHex,
	}
}
