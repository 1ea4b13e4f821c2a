package domain

// Entity is satisfied by pointers to the six stored row types.
type Entity[T any] interface {
	*T
	GetID() int64
	SetID(id int64)
}

// Recurrence is a named recurrence pattern such as "Monthly".
type Recurrence struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`        // unique
	Calculation string `json:"calculation"` // free-text description, may be blank
	Archived    bool   `json:"archived"`
}

// BillStatus is a payment-state label such as "Confirmed" or "Paid".
type BillStatus struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"` // unique
	Archived          bool   `json:"archived"`
	HighlightColorHex string `json:"highlight_color_hex"` // not format-checked
}

// BankAccount is a checking, savings or credit account.
type BankAccount struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Archived     bool   `json:"archived"`
	FontColorHex string `json:"font_color_hex"` // not format-checked
}

// Bill is a recurring bill definition (Rent, Phone, ...).
type Bill struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	DefaultAmountDue    Money   `json:"default_amount_due"`
	URL                 *string `json:"url"`
	Archived            bool    `json:"archived"`
	DefaultDraftAccount *int64  `json:"default_draft_account"` // FK bank_accounts, nulled on delete
}

// DueBill is one concrete occurrence of a Bill.
type DueBill struct {
	ID             int64   `json:"id"`
	Bill           int64   `json:"bill"` // FK bills, cascade
	Priority       int32   `json:"priority"`
	DueDate        Date    `json:"due_date"`
	PayDate        *Date   `json:"pay_date"`
	MinAmountDue   *Money  `json:"min_amount_due"`
	TotalAmountDue *Money  `json:"total_amount_due"`
	Status         int64   `json:"status"` // FK bill_statuses, protect
	Archived       bool    `json:"archived"`
	Confirmation   *string `json:"confirmation"`
	Notes          *string `json:"notes"`
	DraftAccount   *int64  `json:"draft_account"` // FK bank_accounts, nulled on delete
	Recurrence     *int64  `json:"recurrence"`    // FK recurrences, nulled on delete
}

// BankAccountInstance is a scheduled or past transaction, or a balance
// snapshot, on a bank account.
type BankAccountInstance struct {
	ID          int64  `json:"id"`
	BankAccount int64  `json:"bank_account"` // FK bank_accounts, cascade
	Priority    int32  `json:"priority"`
	DueDate     Date   `json:"due_date"`
	PayDate     *Date  `json:"pay_date"`
	Name        string `json:"name"`
	Status      int64  `json:"status"` // FK bill_statuses, protect
	Archived    bool   `json:"archived"`
	// CurrentBalance is either a transaction amount or a balance snapshot;
	// it is stored as an opaque optional amount.
	CurrentBalance *Money `json:"current_balance"`
	Recurrence     *int64 `json:"recurrence"` // FK recurrences, nulled on delete
}

func (r *Recurrence) GetID() int64 { return r.ID }
func (r *Recurrence) SetID(id int64) { r.ID = id }
func (s *BillStatus) GetID() int64 { return s.ID }
func (s *BillStatus) SetID(id int64) { s.ID = id }
func (a *BankAccount) GetID() int64 { return a.ID }
func (a *BankAccount) SetID(id int64) { a.ID = id }
func (b *Bill) GetID() int64 { return b.ID }
func (b *Bill) SetID(id int64) { b.ID = id }
func (d *DueBill) GetID() int64 { return d.ID }
func (d *DueBill) SetID(id int64) { d.ID = id }
func (i *BankAccountInstance) GetID() int64 { return i.ID }
func (i *BankAccountInstance) SetID(id int64) { i.ID = id }
