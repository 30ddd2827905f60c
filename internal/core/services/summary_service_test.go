package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/hlmsouza/home_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock entry reader services ---
type MockBillReaderSvc struct {
	mock.Mock
}

func (m *MockBillReaderSvc) GetBillByID(ctx context.Context, ownerID, billID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, ownerID, billID)
	var entry *domain.LedgerEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.LedgerEntry)
	}
	return entry, args.Error(1)
}

func (m *MockBillReaderSvc) ListBills(ctx context.Context, ownerID string, params portsrepo.ListEntriesParams) (*domain.Page[domain.LedgerEntry], error) {
	args := m.Called(ctx, ownerID, params)
	var page *domain.Page[domain.LedgerEntry]
	if args.Get(0) != nil {
		page = args.Get(0).(*domain.Page[domain.LedgerEntry])
	}
	return page, args.Error(1)
}

func (m *MockBillReaderSvc) ListBillsByPayableMonth(ctx context.Context, ownerID string, start, end time.Time, page, size int) (*domain.Page[domain.LedgerEntry], error) {
	args := m.Called(ctx, ownerID, start, end, page, size)
	var result *domain.Page[domain.LedgerEntry]
	if args.Get(0) != nil {
		result = args.Get(0).(*domain.Page[domain.LedgerEntry])
	}
	return result, args.Error(1)
}

type MockReceivableReaderSvc struct {
	mock.Mock
}

func (m *MockReceivableReaderSvc) GetReceivableByID(ctx context.Context, ownerID, receivableID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, ownerID, receivableID)
	var entry *domain.LedgerEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.LedgerEntry)
	}
	return entry, args.Error(1)
}

func (m *MockReceivableReaderSvc) ListReceivables(ctx context.Context, ownerID string, params portsrepo.ListEntriesParams) (*domain.Page[domain.LedgerEntry], error) {
	args := m.Called(ctx, ownerID, params)
	var page *domain.Page[domain.LedgerEntry]
	if args.Get(0) != nil {
		page = args.Get(0).(*domain.Page[domain.LedgerEntry])
	}
	return page, args.Error(1)
}

func (m *MockReceivableReaderSvc) ListReceivablesByReceivableMonth(ctx context.Context, ownerID string, start, end time.Time, page, size int) (*domain.Page[domain.LedgerEntry], error) {
	args := m.Called(ctx, ownerID, start, end, page, size)
	var result *domain.Page[domain.LedgerEntry]
	if args.Get(0) != nil {
		result = args.Get(0).(*domain.Page[domain.LedgerEntry])
	}
	return result, args.Error(1)
}

// --- Test Suite ---
type SummaryServiceTestSuite struct {
	suite.Suite
	mockBills       *MockBillReaderSvc
	mockReceivables *MockReceivableReaderSvc
	service         portssvc.SummarySvcFacade
	start, end      time.Time
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockBills = new(MockBillReaderSvc)
	suite.mockReceivables = new(MockReceivableReaderSvc)
	suite.service = services.NewSummaryService(suite.mockBills, suite.mockReceivables)
	suite.start = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	suite.end = time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)
}

func entry(kind domain.EntryKind, categoryCode, amount string, settled bool) domain.LedgerEntry {
	return domain.LedgerEntry{
		Kind:         kind,
		CategoryCode: categoryCode,
		Amount:       decimal.RequireFromString(amount),
		Settled:      settled,
	}
}

func (suite *SummaryServiceTestSuite) TestCategorySummary_DrainsEveryPage() {
	ctx := context.Background()
	firstPage := domain.NewPage([]domain.LedgerEntry{
		entry(domain.KindBill, "HOUSING", "600.00", true),
		entry(domain.KindBill, "FOOD", "300.00", false),
	}, 0, 200, 201, "")
	secondPage := domain.NewPage([]domain.LedgerEntry{
		entry(domain.KindBill, "HOUSING", "100.00", false),
	}, 1, 200, 201, "")

	suite.mockBills.On("ListBillsByPayableMonth", ctx, "user-1", suite.start, suite.end, 0, 200).
		Return(firstPage, nil).Once()
	suite.mockBills.On("ListBillsByPayableMonth", ctx, "user-1", suite.start, suite.end, 1, 200).
		Return(secondPage, nil).Once()

	aggregates, err := suite.service.CategorySummary(ctx, "user-1", suite.start, suite.end)

	suite.Require().NoError(err)
	suite.Require().Len(aggregates, 2)
	suite.Equal("HOUSING", aggregates[0].Code)
	suite.True(aggregates[0].Total.Equal(decimal.RequireFromString("700.00")))
	suite.True(aggregates[0].Percentage.Equal(decimal.RequireFromString("70")))
	suite.Equal("FOOD", aggregates[1].Code)
	suite.True(aggregates[1].Percentage.Equal(decimal.RequireFromString("30")))
	suite.mockBills.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestCategorySummary_EmptyPeriod() {
	ctx := context.Background()
	empty := domain.NewPage([]domain.LedgerEntry{}, 0, 200, 0, "")

	suite.mockBills.On("ListBillsByPayableMonth", ctx, "user-1", suite.start, suite.end, 0, 200).
		Return(empty, nil).Once()

	aggregates, err := suite.service.CategorySummary(ctx, "user-1", suite.start, suite.end)

	suite.Require().NoError(err)
	suite.Empty(aggregates)
}

func (suite *SummaryServiceTestSuite) TestCashFlow_SplitsSettledSubsets() {
	ctx := context.Background()
	bills := domain.NewPage([]domain.LedgerEntry{
		entry(domain.KindBill, "HOUSING", "300.00", true),
		entry(domain.KindBill, "FOOD", "200.00", false),
	}, 0, 200, 2, "")
	receivables := domain.NewPage([]domain.LedgerEntry{
		entry(domain.KindReceivable, "SALARY", "1000.00", true),
		entry(domain.KindReceivable, "EXTRA", "250.00", false),
	}, 0, 200, 2, "")

	suite.mockBills.On("ListBillsByPayableMonth", ctx, "user-1", suite.start, suite.end, 0, 200).
		Return(bills, nil).Once()
	suite.mockReceivables.On("ListReceivablesByReceivableMonth", ctx, "user-1", suite.start, suite.end, 0, 200).
		Return(receivables, nil).Once()

	summary, err := suite.service.CashFlow(ctx, "user-1", suite.start, suite.end)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.True(summary.GeneralExpenses.Equal(decimal.RequireFromString("500.00")))
	suite.True(summary.PaidExpenses.Equal(decimal.RequireFromString("300.00")))
	suite.True(summary.GeneralIncomes.Equal(decimal.RequireFromString("1250.00")))
	suite.True(summary.PaidIncomes.Equal(decimal.RequireFromString("1000.00")))
	suite.True(summary.GeneralProfit.Equal(decimal.RequireFromString("750.00")))
	suite.True(summary.PaidProfit.Equal(decimal.RequireFromString("700.00")))
}

func (suite *SummaryServiceTestSuite) TestCashFlow_EmptyPeriodYieldsZeros() {
	ctx := context.Background()
	empty := domain.NewPage([]domain.LedgerEntry{}, 0, 200, 0, "")

	suite.mockBills.On("ListBillsByPayableMonth", ctx, "user-1", suite.start, suite.end, 0, 200).
		Return(empty, nil).Once()
	suite.mockReceivables.On("ListReceivablesByReceivableMonth", ctx, "user-1", suite.start, suite.end, 0, 200).
		Return(empty, nil).Once()

	summary, err := suite.service.CashFlow(ctx, "user-1", suite.start, suite.end)

	suite.Require().NoError(err)
	suite.True(summary.GeneralExpenses.IsZero())
	suite.True(summary.PaidProfit.IsZero())
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
