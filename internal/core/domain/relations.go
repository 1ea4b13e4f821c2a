package domain

// Table names of the six stored entities.
const (
	TableRecurrences          = "recurrences"
	TableBillStatuses         = "bill_statuses"
	TableBankAccounts         = "bank_accounts"
	TableBills                = "bills"
	TableDueBills             = "due_bills"
	TableBankAccountInstances = "bank_account_instances"
)

// DeletePolicy decides what happens to child rows when their parent is deleted.
type DeletePolicy int

const (
	// Cascade deletes the children.
	Cascade DeletePolicy = iota
	// Protect rejects the delete while children exist.
	Protect
	// SetNull clears the child's reference.
	SetNull
)

func (p DeletePolicy) String() string {
	switch p {
	case Cascade:
		return "cascade"
	case Protect:
		return "protect"
	case SetNull:
		return "set null"
	default:
		return "unknown"
	}
}

// Relation is a foreign key from Table.Column to Parent.id.
type Relation struct {
	Table    string
	Column   string
	Parent   string
	OnDelete DeletePolicy
}

// Relations lists every foreign key in the schema.
var Relations = []Relation{
	{Table: TableBills, Column: "default_draft_account_id", Parent: TableBankAccounts, OnDelete: SetNull},
	{Table: TableDueBills, Column: "bill_id", Parent: TableBills, OnDelete: Cascade},
	{Table: TableDueBills, Column: "status_id", Parent: TableBillStatuses, OnDelete: Protect},
	{Table: TableDueBills, Column: "draft_account_id", Parent: TableBankAccounts, OnDelete: SetNull},
	{Table: TableDueBills, Column: "recurrence_id", Parent: TableRecurrences, OnDelete: SetNull},
	{Table: TableBankAccountInstances, Column: "bank_account_id", Parent: TableBankAccounts, OnDelete: Cascade},
	{Table: TableBankAccountInstances, Column: "status_id", Parent: TableBillStatuses, OnDelete: Protect},
	{Table: TableBankAccountInstances, Column: "recurrence_id", Parent: TableRecurrences, OnDelete: SetNull},
}

// InboundRelations returns the relations whose parent is table, protect
// relations first so a blocked delete fails before any row is touched.
func InboundRelations(table string) []Relation {
	var protect, rest []Relation
	for _, rel := range Relations {
		if rel.Parent != table {
			continue
		}
		if rel.OnDelete == Protect {
			protect = append(protect, rel)
		} else {
			rest = append(rest, rel)
		}
	}
	return append(protect, rest...)
}

// IsTable reports whether name is one of the six entity tables.
func IsTable(name string) bool {
	switch name {
	case TableRecurrences, TableBillStatuses, TableBankAccounts, TableBills, TableDueBills, TableBankAccountInstances:
		return true
	}
	return false
}
