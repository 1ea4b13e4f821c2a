package sqlstore_test

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"testing"

	"github.com/SscSPs/bill_tracker/internal/adapters/database/sqlstore"
	"github.com/SscSPs/bill_tracker/internal/apperrors"
	"github.com/SscSPs/bill_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/bill_tracker/pkg/database"
	"github.com/stretchr/testify/suite"
)

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	db      *sql.DB
	closeDB func()
	repos   portsrepo.RepositoryProvider
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()

	db, closeDB, err := database.OpenSQLite(suite.ctx, database.MemoryPath)
	suite.Require().NoError(err)
	suite.Require().NoError(database.MigrateUp(suite.ctx, db, database.DriverSQLite, slog.Default()))

	suite.db = db
	suite.closeDB = closeDB
	suite.repos = sqlstore.NewRepositoryProvider(db, sqlstore.SQLite)
}

func (suite *RepositoryTestSuite) TearDownTest() {
	suite.closeDB()
}

// --- fixtures ---

func (suite *RepositoryTestSuite) createStatus(name string) *domain.BillStatus {
	s := &domain.BillStatus{Name: name, HighlightColorHex: "#00FF00"}
	suite.Require().NoError(suite.repos.BillStatusRepo.Create(suite.ctx, s))
	return s
}

func (suite *RepositoryTestSuite) createAccount(name string) *domain.BankAccount {
	a := &domain.BankAccount{Name: name, FontColorHex: "#000000"}
	suite.Require().NoError(suite.repos.BankAccountRepo.Create(suite.ctx, a))
	return a
}

func (suite *RepositoryTestSuite) createRecurrence(name string) *domain.Recurrence {
	r := &domain.Recurrence{Name: name}
	suite.Require().NoError(suite.repos.RecurrenceRepo.Create(suite.ctx, r))
	return r
}

func (suite *RepositoryTestSuite) createBill(name string, account *int64) *domain.Bill {
	b := &domain.Bill{Name: name, DefaultAmountDue: domain.MustMoney("1200.00"), DefaultDraftAccount: account}
	suite.Require().NoError(suite.repos.BillRepo.Create(suite.ctx, b))
	return b
}

func (suite *RepositoryTestSuite) createDueBill(d domain.DueBill) *domain.DueBill {
	suite.Require().NoError(suite.repos.DueBillRepo.Create(suite.ctx, &d))
	return &d
}

func (suite *RepositoryTestSuite) createInstance(i domain.BankAccountInstance) *domain.BankAccountInstance {
	suite.Require().NoError(suite.repos.BankAccountInstanceRepo.Create(suite.ctx, &i))
	return &i
}

// --- Test Cases ---

func (suite *RepositoryTestSuite) TestCreate_AssignsSequentialIDs() {
	first := suite.createStatus("Confirmed")
	second := suite.createStatus("Paid")

	suite.Equal(int64(1), first.ID)
	suite.Equal(int64(2), second.ID)
}

func (suite *RepositoryTestSuite) TestDueBill_RoundTrip() {
	status := suite.createStatus("Confirmed")
	account := suite.createAccount("Checking")
	recurrence := suite.createRecurrence("Monthly")
	bill := suite.createBill("Rent", nil)

	created := suite.createDueBill(domain.DueBill{
		Bill:           bill.ID,
		Priority:       3,
		DueDate:        domain.MustDate("2024-06-01"),
		PayDate:        domain.DatePtr("2024-06-03"),
		MinAmountDue:   domain.MoneyPtr("100.5"),
		TotalAmountDue: domain.MoneyPtr("1200.00"),
		Status:         status.ID,
		Confirmation:   strPtr("CONF-1"),
		Notes:          strPtr("autopay"),
		DraftAccount:   int64Ptr(account.ID),
		Recurrence:     int64Ptr(recurrence.ID),
	})

	got, err := suite.repos.DueBillRepo.FindByID(suite.ctx, created.ID)
	suite.Require().NoError(err)
	suite.Equal(bill.ID, got.Bill)
	suite.Equal(int32(3), got.Priority)
	suite.Equal("2024-06-01", got.DueDate.String())
	suite.Require().NotNil(got.PayDate)
	suite.Equal("2024-06-03", got.PayDate.String())
	suite.Equal("100.50", got.MinAmountDue.StringFixed(2))
	suite.Equal("1200.00", got.TotalAmountDue.StringFixed(2))
	suite.Equal(status.ID, got.Status)
	suite.Equal("CONF-1", *got.Confirmation)
	suite.Equal("autopay", *got.Notes)
	suite.Equal(account.ID, *got.DraftAccount)
	suite.Equal(recurrence.ID, *got.Recurrence)
	suite.False(got.Archived)
}

func (suite *RepositoryTestSuite) TestList_EmptyTable() {
	items, err := suite.repos.BillRepo.List(suite.ctx)
	suite.Require().NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
}

func (suite *RepositoryTestSuite) TestList_DefaultOrder() {
	status := suite.createStatus("Confirmed")
	bill := suite.createBill("Rent", nil)
	suite.createDueBill(domain.DueBill{Bill: bill.ID, Status: status.ID, DueDate: domain.MustDate("2024-07-01"), Priority: 0})
	suite.createDueBill(domain.DueBill{Bill: bill.ID, Status: status.ID, DueDate: domain.MustDate("2024-06-01"), Priority: 2})
	suite.createDueBill(domain.DueBill{Bill: bill.ID, Status: status.ID, DueDate: domain.MustDate("2024-06-01"), Priority: 1})

	dueBills, err := suite.repos.DueBillRepo.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(dueBills, 3)
	suite.Equal([]int64{3, 2, 1}, []int64{dueBills[0].ID, dueBills[1].ID, dueBills[2].ID})

	suite.createRecurrence("Weekly")
	suite.createRecurrence("Annually")
	recurrences, err := suite.repos.RecurrenceRepo.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("Annually", recurrences[0].Name)
	suite.Equal("Weekly", recurrences[1].Name)
}

func (suite *RepositoryTestSuite) TestFindByID_NotFound() {
	_, err := suite.repos.RecurrenceRepo.FindByID(suite.ctx, 42)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoryTestSuite) TestUpdate() {
	account := suite.createAccount("Checking")
	account.Name = "Joint Checking"
	account.Archived = true
	suite.Require().NoError(suite.repos.BankAccountRepo.Update(suite.ctx, account))

	got, err := suite.repos.BankAccountRepo.FindByID(suite.ctx, account.ID)
	suite.Require().NoError(err)
	suite.Equal("Joint Checking", got.Name)
	suite.True(got.Archived)

	missing := &domain.BankAccount{ID: 99, Name: "Ghost", FontColorHex: "#FFFFFF"}
	suite.ErrorIs(suite.repos.BankAccountRepo.Update(suite.ctx, missing), apperrors.ErrNotFound)
}

func (suite *RepositoryTestSuite) TestDeleteBill_CascadesToDueBills() {
	status := suite.createStatus("Confirmed")
	bill := suite.createBill("Rent", nil)
	other := suite.createBill("Phone", nil)
	dueBill := suite.createDueBill(domain.DueBill{Bill: bill.ID, Status: status.ID, DueDate: domain.MustDate("2024-06-01")})
	kept := suite.createDueBill(domain.DueBill{Bill: other.ID, Status: status.ID, DueDate: domain.MustDate("2024-06-01")})

	suite.Require().NoError(suite.repos.BillRepo.Delete(suite.ctx, bill.ID))

	_, err := suite.repos.DueBillRepo.FindByID(suite.ctx, dueBill.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.repos.DueBillRepo.FindByID(suite.ctx, kept.ID)
	suite.NoError(err)
}

func (suite *RepositoryTestSuite) TestDeleteStatus_ProtectedByDueBill() {
	status := suite.createStatus("Confirmed")
	bill := suite.createBill("Rent", nil)
	suite.createDueBill(domain.DueBill{Bill: bill.ID, Status: status.ID, DueDate: domain.MustDate("2024-06-01")})

	err := suite.repos.BillStatusRepo.Delete(suite.ctx, status.ID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), "due_bills.status_id")
	_, err = suite.repos.BillStatusRepo.FindByID(suite.ctx, status.ID)
	suite.NoError(err)
}

func (suite *RepositoryTestSuite) TestDeleteStatus_ProtectedByInstance() {
	status := suite.createStatus("Scheduled")
	account := suite.createAccount("Savings")
	suite.createInstance(domain.BankAccountInstance{
		BankAccount: account.ID, Status: status.ID, Name: "Transfer", DueDate: domain.MustDate("2024-06-15"),
	})

	err := suite.repos.BillStatusRepo.Delete(suite.ctx, status.ID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), "bank_account_instances.status_id")
}

func (suite *RepositoryTestSuite) TestDeleteBankAccount_NullifiesAndCascades() {
	status := suite.createStatus("Confirmed")
	account := suite.createAccount("Checking")
	bill := suite.createBill("Rent", int64Ptr(account.ID))
	dueBill := suite.createDueBill(domain.DueBill{
		Bill: bill.ID, Status: status.ID, DueDate: domain.MustDate("2024-06-01"), DraftAccount: int64Ptr(account.ID),
	})
	instance := suite.createInstance(domain.BankAccountInstance{
		BankAccount: account.ID, Status: status.ID, Name: "Payday", DueDate: domain.MustDate("2024-06-15"),
		CurrentBalance: domain.MoneyPtr("2500.00"),
	})

	suite.Require().NoError(suite.repos.BankAccountRepo.Delete(suite.ctx, account.ID))

	gotBill, err := suite.repos.BillRepo.FindByID(suite.ctx, bill.ID)
	suite.Require().NoError(err)
	suite.Nil(gotBill.DefaultDraftAccount)

	gotDueBill, err := suite.repos.DueBillRepo.FindByID(suite.ctx, dueBill.ID)
	suite.Require().NoError(err)
	suite.Nil(gotDueBill.DraftAccount)

	_, err = suite.repos.BankAccountInstanceRepo.FindByID(suite.ctx, instance.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoryTestSuite) TestDeleteRecurrence_Nullifies() {
	status := suite.createStatus("Confirmed")
	account := suite.createAccount("Checking")
	recurrence := suite.createRecurrence("Monthly")
	bill := suite.createBill("Rent", nil)
	dueBill := suite.createDueBill(domain.DueBill{
		Bill: bill.ID, Status: status.ID, DueDate: domain.MustDate("2024-06-01"), Recurrence: int64Ptr(recurrence.ID),
	})
	instance := suite.createInstance(domain.BankAccountInstance{
		BankAccount: account.ID, Status: status.ID, Name: "Payday", DueDate: domain.MustDate("2024-06-15"),
		Recurrence: int64Ptr(recurrence.ID),
	})

	suite.Require().NoError(suite.repos.RecurrenceRepo.Delete(suite.ctx, recurrence.ID))

	gotDueBill, err := suite.repos.DueBillRepo.FindByID(suite.ctx, dueBill.ID)
	suite.Require().NoError(err)
	suite.Nil(gotDueBill.Recurrence)
	gotInstance, err := suite.repos.BankAccountInstanceRepo.FindByID(suite.ctx, instance.ID)
	suite.Require().NoError(err)
	suite.Nil(gotInstance.Recurrence)
}

func (suite *RepositoryTestSuite) TestDelete_NotFound() {
	suite.ErrorIs(suite.repos.BillRepo.Delete(suite.ctx, 5), apperrors.ErrNotFound)
}

func (suite *RepositoryTestSuite) TestConstraintViolationsAreIntegrityErrors() {
	suite.createRecurrence("Monthly")
	err := suite.repos.RecurrenceRepo.Create(suite.ctx, &domain.Recurrence{Name: "Monthly"})
	suite.ErrorIs(err, apperrors.ErrIntegrity)

	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusBadRequest, appErr.Code)
	suite.NotContains(appErr.Message, "recurrences")
	suite.Contains(err.Error(), "recurrences.name")

	status := suite.createStatus("Confirmed")
	bill := suite.createBill("Rent", nil)
	err = suite.repos.DueBillRepo.Create(suite.ctx, &domain.DueBill{
		Bill: bill.ID, Status: status.ID, DueDate: domain.MustDate("2024-06-01"), Priority: -1,
	})
	suite.ErrorIs(err, apperrors.ErrIntegrity)

	err = suite.repos.DueBillRepo.Create(suite.ctx, &domain.DueBill{
		Bill: 99, Status: status.ID, DueDate: domain.MustDate("2024-06-01"),
	})
	suite.ErrorIs(err, apperrors.ErrIntegrity)
}

func (suite *RepositoryTestSuite) TestReferenceChecks() {
	status := suite.createStatus("Confirmed")

	exists, err := suite.repos.References.Exists(suite.ctx, domain.TableBillStatuses, status.ID)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repos.References.Exists(suite.ctx, domain.TableBillStatuses, status.ID+1)
	suite.Require().NoError(err)
	suite.False(exists)

	taken, err := suite.repos.References.NameTaken(suite.ctx, domain.TableBillStatuses, "Confirmed", 0)
	suite.Require().NoError(err)
	suite.True(taken)

	taken, err = suite.repos.References.NameTaken(suite.ctx, domain.TableBillStatuses, "Confirmed", status.ID)
	suite.Require().NoError(err)
	suite.False(taken)

	_, err = suite.repos.References.Exists(suite.ctx, "users; DROP TABLE bills", 1)
	suite.Error(err)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
