package services

import (
	"github.com/SscSPs/bill_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bill_tracker/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Recurrence: NewCRUDService[domain.Recurrence, *domain.Recurrence](
			"recurrence", repos.RecurrenceRepo, repos.References, validateRecurrence),
		BillStatus: NewCRUDService[domain.BillStatus, *domain.BillStatus](
			"bill status", repos.BillStatusRepo, repos.References, validateBillStatus),
		BankAccount: NewCRUDService[domain.BankAccount, *domain.BankAccount](
			"bank account", repos.BankAccountRepo, repos.References, validateBankAccount),
		Bill: NewCRUDService[domain.Bill, *domain.Bill](
			"bill", repos.BillRepo, repos.References, validateBill),
		DueBill: NewCRUDService[domain.DueBill, *domain.DueBill](
			"due bill", repos.DueBillRepo, repos.References, validateDueBill),
		BankAccountInstance: NewCRUDService[domain.BankAccountInstance, *domain.BankAccountInstance](
			"bank account instance", repos.BankAccountInstanceRepo, repos.References, validateBankAccountInstance),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CRUDSvcFacade[domain.Recurrence] = (*crudService[domain.Recurrence, *domain.Recurrence])(nil)
	_ portssvc.CRUDSvcFacade[domain.DueBill]    = (*crudService[domain.DueBill, *domain.DueBill])(nil)
)
