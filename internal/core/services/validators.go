package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/bill_tracker/internal/apperrors"
	"github.com/SscSPs/bill_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker/internal/core/ports/repositories"
)

// Client-facing validation messages.
const (
	msgMinZero = "Ensure this value is greater than or equal to 0."
)

func msgDoesNotExist(id int64) string {
	return fmt.Sprintf(`Invalid pk "%d" - object does not exist.`, id)
}

func msgNameTaken(label string) string {
	return label + " with this name already exists."
}

// checker accumulates field errors for one payload. After the first lookup
// failure it stops issuing queries.
type checker struct {
	ctx    context.Context
	refs   portsrepo.ReferenceChecker
	fields apperrors.FieldErrors
	err    error
}

func newChecker(ctx context.Context, refs portsrepo.ReferenceChecker) *checker {
	return &checker{ctx: ctx, refs: refs, fields: apperrors.FieldErrors{}}
}

func (c *checker) reference(field, table string, id int64) {
	if c.err != nil {
		return
	}
	ok, err := c.refs.Exists(c.ctx, table, id)
	if err != nil {
		c.err = fmt.Errorf("failed to check %s reference: %w", field, err)
		return
	}
	if !ok {
		c.fields.Add(field, msgDoesNotExist(id))
	}
}

func (c *checker) optionalReference(field, table string, id *int64) {
	if id != nil {
		c.reference(field, table, *id)
	}
}

func (c *checker) uniqueName(table, label, name string, exceptID int64) {
	if c.err != nil {
		return
	}
	taken, err := c.refs.NameTaken(c.ctx, table, name, exceptID)
	if err != nil {
		c.err = fmt.Errorf("failed to check name uniqueness: %w", err)
		return
	}
	if taken {
		c.fields.Add("name", msgNameTaken(label))
	}
}

func (c *checker) money(field string, m domain.Money) {
	if !m.HasValidPrecision() {
		c.fields.Add(field, fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", domain.MoneyMaxDigits-domain.MoneyDecimalPlaces))
	}
	if !m.HasValidScale() {
		c.fields.Add(field, fmt.Sprintf("Ensure that there are no more than %d decimal places.", domain.MoneyDecimalPlaces))
	}
}

func (c *checker) optionalMoney(field string, m *domain.Money) {
	if m != nil {
		c.money(field, *m)
	}
}

func (c *checker) nonNegative(field string, v int64) {
	if v < 0 {
		c.fields.Add(field, msgMinZero)
	}
}

func (c *checker) result() (apperrors.FieldErrors, error) {
	if c.err != nil {
		return nil, c.err
	}
	if len(c.fields) == 0 {
		return nil, nil
	}
	return c.fields, nil
}

func validateRecurrence(ctx context.Context, refs portsrepo.ReferenceChecker, r *domain.Recurrence) (apperrors.FieldErrors, error) {
	c := newChecker(ctx, refs)
	c.uniqueName(domain.TableRecurrences, "recurrence pattern", r.Name, r.ID)
	return c.result()
}

func validateBillStatus(ctx context.Context, refs portsrepo.ReferenceChecker, s *domain.BillStatus) (apperrors.FieldErrors, error) {
	c := newChecker(ctx, refs)
	c.uniqueName(domain.TableBillStatuses, "bill status", s.Name, s.ID)
	return c.result()
}

// Bank accounts have no rules beyond the request binding tags.
func validateBankAccount(context.Context, portsrepo.ReferenceChecker, *domain.BankAccount) (apperrors.FieldErrors, error) {
	return nil, nil
}

func validateBill(ctx context.Context, refs portsrepo.ReferenceChecker, b *domain.Bill) (apperrors.FieldErrors, error) {
	c := newChecker(ctx, refs)
	c.money("default_amount_due", b.DefaultAmountDue)
	c.optionalReference("default_draft_account", domain.TableBankAccounts, b.DefaultDraftAccount)
	return c.result()
}

func validateDueBill(ctx context.Context, refs portsrepo.ReferenceChecker, d *domain.DueBill) (apperrors.FieldErrors, error) {
	c := newChecker(ctx, refs)
	c.nonNegative("priority", int64(d.Priority))
	c.optionalMoney("min_amount_due", d.MinAmountDue)
	c.optionalMoney("total_amount_due", d.TotalAmountDue)
	c.reference("bill", domain.TableBills, d.Bill)
	c.reference("status", domain.TableBillStatuses, d.Status)
	c.optionalReference("draft_account", domain.TableBankAccounts, d.DraftAccount)
	c.optionalReference("recurrence", domain.TableRecurrences, d.Recurrence)
	return c.result()
}

func validateBankAccountInstance(ctx context.Context, refs portsrepo.ReferenceChecker, i *domain.BankAccountInstance) (apperrors.FieldErrors, error) {
	c := newChecker(ctx, refs)
	c.optionalMoney("current_balance", i.CurrentBalance)
	c.reference("bank_account", domain.TableBankAccounts, i.BankAccount)
	c.reference("status", domain.TableBillStatuses, i.Status)
	c.optionalReference("recurrence", domain.TableRecurrences, i.Recurrence)
	return c.result()
}
