package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/bill_tracker/internal/apperrors"
	"github.com/SscSPs/bill_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/bill_tracker/internal/core/ports/services"
	"github.com/SscSPs/bill_tracker/internal/handlers"
	"github.com/SscSPs/bill_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CRUD service ---
type MockCRUDService[T any] struct {
	mock.Mock
}

func (m *MockCRUDService[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCRUDService[T]) Get(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDService[T]) Create(ctx context.Context, item T) (*T, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDService[T]) Update(ctx context.Context, id int64, item T) (*T, error) {
	args := m.Called(ctx, id, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDService[T]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CRUDSvcFacade[domain.Bill] = (*MockCRUDService[domain.Bill])(nil)

// --- Test Suite ---
type ResourceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	statuses    *MockCRUDService[domain.BillStatus]
	bills       *MockCRUDService[domain.Bill]
	dueBills    *MockCRUDService[domain.DueBill]
	recurrences *MockCRUDService[domain.Recurrence]
}

func (suite *ResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.statuses = new(MockCRUDService[domain.BillStatus])
	suite.bills = new(MockCRUDService[domain.Bill])
	suite.dueBills = new(MockCRUDService[domain.DueBill])
	suite.recurrences = new(MockCRUDService[domain.Recurrence])

	container := &portssvc.ServiceContainer{
		Recurrence:          suite.recurrences,
		BillStatus:          suite.statuses,
		BankAccount:         new(MockCRUDService[domain.BankAccount]),
		Bill:                suite.bills,
		DueBill:             suite.dueBills,
		BankAccountInstance: new(MockCRUDService[domain.BankAccountInstance]),
	}
	cfg := &config.Config{APIBasePath: "/api", IsProduction: true}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *ResourceHandlerTestSuite) TearDownTest() {
	suite.statuses.AssertExpectations(suite.T())
	suite.bills.AssertExpectations(suite.T())
	suite.dueBills.AssertExpectations(suite.T())
	suite.recurrences.AssertExpectations(suite.T())
}

func (suite *ResourceHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ResourceHandlerTestSuite) decodeFields(w *httptest.ResponseRecorder) map[string][]string {
	var fields map[string][]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &fields), w.Body.String())
	return fields
}

func (suite *ResourceHandlerTestSuite) decodeDetail(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body["detail"]
}

// --- Test Cases ---

func (suite *ResourceHandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *ResourceHandlerTestSuite) TestAPIRoot_ListsResources() {
	w := suite.do(http.MethodGet, "/api/", "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var links map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &links))
	suite.Len(links, 6)
	suite.Equal("http://example.com/api/due-bills/", links["due-bills"])
	suite.Equal("http://example.com/api/bank-account-instances/", links["bank-account-instances"])
}

func (suite *ResourceHandlerTestSuite) TestList_RedirectsWithoutTrailingSlash() {
	w := suite.do(http.MethodGet, "/api/bills", "")
	suite.Equal(http.StatusMovedPermanently, w.Code)
	suite.Equal("/api/bills/", w.Header().Get("Location"))
}

func (suite *ResourceHandlerTestSuite) TestList_Success() {
	suite.bills.On("List", mock.Anything).Return([]domain.Bill{
		{ID: 1, Name: "Rent", DefaultAmountDue: domain.MustMoney("1200")},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/bills/", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{"id":1,"name":"Rent","default_amount_due":"1200.00","url":null,"archived":false,"default_draft_account":null}]`, w.Body.String())
}

func (suite *ResourceHandlerTestSuite) TestRetrieve_InvalidIDIsNotFound() {
	w := suite.do(http.MethodGet, "/api/bills/abc/", "")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Not found.", suite.decodeDetail(w))
	suite.bills.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything)
}

func (suite *ResourceHandlerTestSuite) TestRetrieve_NotFound() {
	suite.bills.On("Get", mock.Anything, int64(7)).Return(nil, apperrors.NewNotFoundError("Not found.")).Once()

	w := suite.do(http.MethodGet, "/api/bills/7/", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Not found.", suite.decodeDetail(w))
}

func (suite *ResourceHandlerTestSuite) TestCreate_Success() {
	expected := domain.BillStatus{Name: "Confirmed", HighlightColorHex: "#00FF00"}
	suite.statuses.On("Create", mock.Anything, expected).
		Return(&domain.BillStatus{ID: 1, Name: "Confirmed", HighlightColorHex: "#00FF00"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/bill-statuses/", `{"id": 99, "name": "Confirmed", "highlight_color_hex": "#00FF00", "unknown": 1}`)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.JSONEq(`{"id":1,"name":"Confirmed","archived":false,"highlight_color_hex":"#00FF00"}`, w.Body.String())
}

func (suite *ResourceHandlerTestSuite) TestCreate_MissingRequiredFields() {
	w := suite.do(http.MethodPost, "/api/bill-statuses/", "")

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	fields := suite.decodeFields(w)
	suite.Equal([]string{"This field is required."}, fields["name"])
	suite.Equal([]string{"This field is required."}, fields["highlight_color_hex"])
}

func (suite *ResourceHandlerTestSuite) TestCreate_LengthLimits() {
	body := `{"name": "` + strings.Repeat("x", 101) + `", "highlight_color_hex": "#00FF00AA"}`
	w := suite.do(http.MethodPost, "/api/bill-statuses/", body)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	fields := suite.decodeFields(w)
	suite.Equal([]string{"Ensure this field has no more than 100 characters."}, fields["name"])
	suite.Equal([]string{"Ensure this field has no more than 7 characters."}, fields["highlight_color_hex"])
}

func (suite *ResourceHandlerTestSuite) TestCreate_BadFieldTypes() {
	w := suite.do(http.MethodPost, "/api/due-bills/", `{"bill": "one", "due_date": "06/01/2024", "min_amount_due": "lots", "status": 1}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	fields := suite.decodeFields(w)
	suite.Equal([]string{"A valid integer is required."}, fields["bill"])
	suite.Equal([]string{"Date has wrong format. Use one of these formats instead: YYYY-MM-DD."}, fields["due_date"])
	suite.Equal([]string{"A valid number is required."}, fields["min_amount_due"])
	suite.NotContains(fields, "status")
}

func (suite *ResourceHandlerTestSuite) TestCreate_NegativePriority() {
	w := suite.do(http.MethodPost, "/api/due-bills/", `{"bill": 1, "due_date": "2024-06-01", "status": 1, "priority": -1}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"Ensure this value is greater than or equal to 0."}, suite.decodeFields(w)["priority"])
}

func (suite *ResourceHandlerTestSuite) TestCreate_RejectsNullOnNonNullableFields() {
	w := suite.do(http.MethodPost, "/api/due-bills/",
		`{"bill": null, "status": 1, "due_date": "2024-06-01", "priority": null, "pay_date": null, "notes": null}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	fields := suite.decodeFields(w)
	suite.Equal([]string{"This field may not be null."}, fields["bill"])
	suite.Equal([]string{"This field may not be null."}, fields["priority"])
	suite.NotContains(fields, "pay_date")
	suite.NotContains(fields, "notes")

	w = suite.do(http.MethodPost, "/api/bills/", `{"name": "Rent", "default_amount_due": "1200", "archived": null}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal(map[string][]string{"archived": {"This field may not be null."}}, suite.decodeFields(w))
}

func (suite *ResourceHandlerTestSuite) TestCreate_NullAlongsideBadType() {
	w := suite.do(http.MethodPost, "/api/due-bills/", `{"bill": "one", "status": null, "due_date": "2024-06-01"}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	fields := suite.decodeFields(w)
	suite.Equal([]string{"A valid integer is required."}, fields["bill"])
	suite.Equal([]string{"This field may not be null."}, fields["status"])
}

func (suite *ResourceHandlerTestSuite) TestCreate_BlankRequiredString() {
	w := suite.do(http.MethodPost, "/api/bill-statuses/", `{"name": "", "highlight_color_hex": "#FFF"}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal(map[string][]string{"name": {"This field may not be blank."}}, suite.decodeFields(w))
}

func (suite *ResourceHandlerTestSuite) TestCreate_AcceptsNumericStrings() {
	expected := domain.DueBill{Bill: 1, Status: 2, Priority: 3, DueDate: domain.MustDate("2024-06-01")}
	created := expected
	created.ID = 1
	suite.dueBills.On("Create", mock.Anything, expected).Return(&created, nil).Once()

	w := suite.do(http.MethodPost, "/api/due-bills/", `{"bill": "1", "status": "2", "priority": "3", "due_date": "2024-06-01"}`)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *ResourceHandlerTestSuite) TestCreate_ServiceValidationError() {
	suite.recurrences.On("Create", mock.Anything, domain.Recurrence{Name: "Monthly"}).
		Return(nil, apperrors.NewFieldError("name", "recurrence pattern with this name already exists.")).Once()

	w := suite.do(http.MethodPost, "/api/recurrences/", `{"name": "Monthly"}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"recurrence pattern with this name already exists."}, suite.decodeFields(w)["name"])
}

func (suite *ResourceHandlerTestSuite) TestCreate_NotAnObject() {
	w := suite.do(http.MethodPost, "/api/recurrences/", `["Monthly"]`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"Invalid data. Expected a dictionary, but got list."}, suite.decodeFields(w)["non_field_errors"])
}

func (suite *ResourceHandlerTestSuite) TestCreate_MalformedJSON() {
	w := suite.do(http.MethodPost, "/api/recurrences/", `{"name": `)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeDetail(w), "JSON parse error")
}

func (suite *ResourceHandlerTestSuite) TestUpdate_MissingRowWinsOverValidation() {
	suite.recurrences.On("Get", mock.Anything, int64(5)).Return(nil, apperrors.NewNotFoundError("Not found.")).Once()

	w := suite.do(http.MethodPut, "/api/recurrences/5/", `{}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ResourceHandlerTestSuite) TestUpdate_ReplacesRow() {
	suite.recurrences.On("Get", mock.Anything, int64(2)).
		Return(&domain.Recurrence{ID: 2, Name: "Monthly", Calculation: "Every 1st"}, nil).Once()
	suite.recurrences.On("Update", mock.Anything, int64(2), domain.Recurrence{Name: "Weekly"}).
		Return(&domain.Recurrence{ID: 2, Name: "Weekly"}, nil).Once()

	w := suite.do(http.MethodPut, "/api/recurrences/2/", `{"name": "Weekly"}`)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.JSONEq(`{"id":2,"name":"Weekly","calculation":"","archived":false}`, w.Body.String())
}

func (suite *ResourceHandlerTestSuite) TestPartialUpdate_KeepsOmittedFields() {
	suite.recurrences.On("Get", mock.Anything, int64(2)).
		Return(&domain.Recurrence{ID: 2, Name: "Monthly", Calculation: "Every 1st"}, nil).Once()
	suite.recurrences.On("Update", mock.Anything, int64(2), domain.Recurrence{Name: "Monthly", Calculation: "Every 1st", Archived: true}).
		Return(&domain.Recurrence{ID: 2, Name: "Monthly", Calculation: "Every 1st", Archived: true}, nil).Once()

	w := suite.do(http.MethodPatch, "/api/recurrences/2/", `{"archived": true}`)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.JSONEq(`{"id":2,"name":"Monthly","calculation":"Every 1st","archived":true}`, w.Body.String())
}

func (suite *ResourceHandlerTestSuite) TestPartialUpdate_RejectsNull() {
	suite.recurrences.On("Get", mock.Anything, int64(1)).
		Return(&domain.Recurrence{ID: 1, Name: "Monthly"}, nil).Once()

	w := suite.do(http.MethodPatch, "/api/recurrences/1/", `{"name": null, "archived": null}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code, w.Body.String())
	suite.Equal(map[string][]string{
		"name":     {"This field may not be null."},
		"archived": {"This field may not be null."},
	}, suite.decodeFields(w))
	suite.recurrences.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ResourceHandlerTestSuite) TestPartialUpdate_BlankName() {
	suite.recurrences.On("Get", mock.Anything, int64(1)).
		Return(&domain.Recurrence{ID: 1, Name: "Monthly"}, nil).Once()

	w := suite.do(http.MethodPatch, "/api/recurrences/1/", `{"name": ""}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"This field may not be blank."}, suite.decodeFields(w)["name"])
}

func (suite *ResourceHandlerTestSuite) TestDelete_Success() {
	suite.bills.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/bills/1/", "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *ResourceHandlerTestSuite) TestDelete_ProtectedIsConflict() {
	suite.statuses.On("Delete", mock.Anything, int64(1)).
		Return(apperrors.NewConflictError("Cannot delete bill_statuses 1: referenced by 1 due_bills row(s) through protected foreign key due_bills.status_id")).Once()

	w := suite.do(http.MethodDelete, "/api/bill-statuses/1/", "")

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.decodeDetail(w), "due_bills.status_id")
}

func (suite *ResourceHandlerTestSuite) TestUnexpectedErrorIsServerError() {
	suite.bills.On("List", mock.Anything).Return(nil, context.DeadlineExceeded).Once()

	w := suite.do(http.MethodGet, "/api/bills/", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("A server error occurred.", suite.decodeDetail(w))
}

func TestResourceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}
