package sqlstore

import "github.com/SscSPs/bill_tracker/internal/core/domain"

var recurrenceTable = table[domain.Recurrence]{
	name:    domain.TableRecurrences,
	columns: []string{"name", "calculation", "archived"},
	orderBy: "name, id",
	values: func(r *domain.Recurrence) []any {
		return []any{r.Name, r.Calculation, r.Archived}
	},
	fields: func(r *domain.Recurrence) []any {
		return []any{&r.ID, &r.Name, &r.Calculation, &r.Archived}
	},
}

var billStatusTable = table[domain.BillStatus]{
	name:    domain.TableBillStatuses,
	columns: []string{"name", "archived", "highlight_color_hex"},
	orderBy: "name, id",
	values: func(s *domain.BillStatus) []any {
		return []any{s.Name, s.Archived, s.HighlightColorHex}
	},
	fields: func(s *domain.BillStatus) []any {
		return []any{&s.ID, &s.Name, &s.Archived, &s.HighlightColorHex}
	},
}

var bankAccountTable = table[domain.BankAccount]{
	name:    domain.TableBankAccounts,
	columns: []string{"name", "archived", "font_color_hex"},
	orderBy: "name, id",
	values: func(a *domain.BankAccount) []any {
		return []any{a.Name, a.Archived, a.FontColorHex}
	},
	fields: func(a *domain.BankAccount) []any {
		return []any{&a.ID, &a.Name, &a.Archived, &a.FontColorHex}
	},
}

var billTable = table[domain.Bill]{
	name:    domain.TableBills,
	columns: []string{"name", "default_amount_due", "url", "archived", "default_draft_account_id"},
	orderBy: "name, id",
	values: func(b *domain.Bill) []any {
		return []any{b.Name, b.DefaultAmountDue, b.URL, b.Archived, b.DefaultDraftAccount}
	},
	fields: func(b *domain.Bill) []any {
		return []any{&b.ID, &b.Name, &b.DefaultAmountDue, &b.URL, &b.Archived, &b.DefaultDraftAccount}
	},
}

var dueBillTable = table[domain.DueBill]{
	name: domain.TableDueBills,
	columns: []string{
		"bill_id", "priority", "due_date", "pay_date", "min_amount_due", "total_amount_due",
		"status_id", "archived", "confirmation", "notes", "draft_account_id", "recurrence_id",
	},
	orderBy: "due_date, priority, id",
	values: func(d *domain.DueBill) []any {
		return []any{
			d.Bill, d.Priority, d.DueDate, d.PayDate, d.MinAmountDue, d.TotalAmountDue,
			d.Status, d.Archived, d.Confirmation, d.Notes, d.DraftAccount, d.Recurrence,
		}
	},
	fields: func(d *domain.DueBill) []any {
		return []any{
			&d.ID, &d.Bill, &d.Priority, &d.DueDate, &d.PayDate, &d.MinAmountDue, &d.TotalAmountDue,
			&d.Status, &d.Archived, &d.Confirmation, &d.Notes, &d.DraftAccount, &d.Recurrence,
		}
	},
}

var bankAccountInstanceTable = table[domain.BankAccountInstance]{
	name: domain.TableBankAccountInstances,
	columns: []string{
		"bank_account_id", "priority", "due_date", "pay_date", "name",
		"status_id", "archived", "current_balance", "recurrence_id",
	},
	orderBy: "due_date, priority, id",
	values: func(i *domain.BankAccountInstance) []any {
		return []any{
			i.BankAccount, i.Priority, i.DueDate, i.PayDate, i.Name,
			i.Status, i.Archived, i.CurrentBalance, i.Recurrence,
		}
	},
	fields: func(i *domain.BankAccountInstance) []any {
		return []any{
			&i.ID, &i.BankAccount, &i.Priority, &i.DueDate, &i.PayDate, &i.Name,
			&i.Status, &i.Archived, &i.CurrentBalance, &i.Recurrence,
		}
	},
}
