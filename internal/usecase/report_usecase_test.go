package usecase

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ReportRepoMock struct{ mock.Mock }

func (m *ReportRepoMock) InventoryValue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *ReportRepoMock) SalesPerMonth(ctx context.Context, year int) ([]repo.MonthlySales, error) {
	args := m.Called(ctx, year)
	rows, _ := args.Get(0).([]repo.MonthlySales)
	return rows, args.Error(1)
}

func (m *ReportRepoMock) SalesPerCategory(ctx context.Context, from, to *time.Time) ([]repo.CategorySales, error) {
	args := m.Called(ctx, from, to)
	rows, _ := args.Get(0).([]repo.CategorySales)
	return rows, args.Error(1)
}

func (m *ReportRepoMock) LowStock(ctx context.Context, threshold int64) ([]repo.LowStockProduct, error) {
	args := m.Called(ctx, threshold)
	rows, _ := args.Get(0).([]repo.LowStockProduct)
	return rows, args.Error(1)
}

func (m *ReportRepoMock) TopProducts(ctx context.Context, limit int) ([]repo.ProductSales, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]repo.ProductSales)
	return rows, args.Error(1)
}

type ReportTransactionRepoMock struct{ mock.Mock }

func (m *ReportTransactionRepoMock) Create(ctx context.Context, t model.Transaction) error {
	panic("not used in ReportUsecase tests")
}

func (m *ReportTransactionRepoMock) ListByProductID(ctx context.Context, productID string) ([]model.Transaction, error) {
	args := m.Called(ctx, productID)
	ts, _ := args.Get(0).([]model.Transaction)
	return ts, args.Error(1)
}

func newReportUC(r repo.ReportRepository, tr repo.TransactionRepository, p repo.ProductRepository) *ReportUsecase {
	return NewReportUsecase(r, tr, p)
}

// 商品ゼロ件でもエラーではなく 0 を返す
func TestReportUsecase_InventoryValue_EmptyIsZero(t *testing.T) {
	rRepo := new(ReportRepoMock)
	rRepo.On("InventoryValue", mock.Anything).Return(float64(0), nil)

	uc := newReportUC(rRepo, new(ReportTransactionRepoMock), new(CatProductRepoMock))

	out, err := uc.InventoryValue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, float64(0), out.TotalValue)
}

// 変更が無ければ同じ引数の読み取りは同じ結果を返す
func TestReportUsecase_InventoryValue_Idempotent(t *testing.T) {
	rRepo := new(ReportRepoMock)
	rRepo.On("InventoryValue", mock.Anything).Return(125.5, nil)

	uc := newReportUC(rRepo, new(ReportTransactionRepoMock), new(CatProductRepoMock))

	first, err := uc.InventoryValue(context.Background())
	assert.NoError(t, err)
	second, err := uc.InventoryValue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReportUsecase_SalesPerMonth_PassesYear(t *testing.T) {
	rRepo := new(ReportRepoMock)
	rRepo.On("SalesPerMonth", mock.Anything, 2026).Return([]repo.MonthlySales{}, nil)

	uc := newReportUC(rRepo, new(ReportTransactionRepoMock), new(CatProductRepoMock))

	out, err := uc.SalesPerMonth(context.Background(), 2026)
	assert.NoError(t, err)
	assert.Equal(t, 2026, out.Year)
	assert.NotNil(t, out.Rows)

	rRepo.AssertExpectations(t)
}

func TestReportUsecase_SalesPerMonth_NegativeYear(t *testing.T) {
	uc := newReportUC(new(ReportRepoMock), new(ReportTransactionRepoMock), new(CatProductRepoMock))

	_, err := uc.SalesPerMonth(context.Background(), -1)
	assertErrStatus(t, err, 422)
}

func TestReportUsecase_SalesPerCategory_PassesRange(t *testing.T) {
	rRepo := new(ReportRepoMock)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	rows := []repo.CategorySales{{Category: "minuman", TotalSales: 42}}
	rRepo.On("SalesPerCategory", mock.Anything, &from, &to).Return(rows, nil)

	uc := newReportUC(rRepo, new(ReportTransactionRepoMock), new(CatProductRepoMock))

	out, err := uc.SalesPerCategory(context.Background(), &from, &to)
	assert.NoError(t, err)
	assert.Equal(t, rows, out.Rows)
}

// threshold=0は在庫切れのみの問い合わせ。既定値に化けずにそのまま届く。
func TestReportUsecase_LowStock_ZeroThresholdPassesThrough(t *testing.T) {
	rRepo := new(ReportRepoMock)
	rRepo.On("LowStock", mock.Anything, int64(0)).Return([]repo.LowStockProduct{}, nil)

	uc := newReportUC(rRepo, new(ReportTransactionRepoMock), new(CatProductRepoMock))

	out, err := uc.LowStock(context.Background(), 0)
	assert.NoError(t, err)
	assert.NotNil(t, out.Items)

	rRepo.AssertExpectations(t)
}

func TestReportUsecase_LowStock_NegativeThreshold(t *testing.T) {
	uc := newReportUC(new(ReportRepoMock), new(ReportTransactionRepoMock), new(CatProductRepoMock))

	_, err := uc.LowStock(context.Background(), -1)
	assertErrStatus(t, err, 422)
}

// limit=0も同様に素通し（0件返し）
func TestReportUsecase_TopProducts_ZeroLimitPassesThrough(t *testing.T) {
	rRepo := new(ReportRepoMock)
	rRepo.On("TopProducts", mock.Anything, 0).Return([]repo.ProductSales{}, nil)

	uc := newReportUC(rRepo, new(ReportTransactionRepoMock), new(CatProductRepoMock))

	out, err := uc.TopProducts(context.Background(), 0)
	assert.NoError(t, err)
	assert.NotNil(t, out.Rows)

	rRepo.AssertExpectations(t)
}

func TestReportUsecase_TopProducts_NegativeLimit(t *testing.T) {
	uc := newReportUC(new(ReportRepoMock), new(ReportTransactionRepoMock), new(CatProductRepoMock))

	_, err := uc.TopProducts(context.Background(), -5)
	assertErrStatus(t, err, 422)
}

func TestReportUsecase_ProductHistory_NotFound(t *testing.T) {
	pRepo := new(CatProductRepoMock)
	pRepo.On("FindByID", mock.Anything, "missing").Return(model.Product{}, repo.ErrNotFound)

	uc := newReportUC(new(ReportRepoMock), new(ReportTransactionRepoMock), pRepo)

	_, err := uc.ProductHistory(context.Background(), "missing")
	assertErrStatus(t, err, 404)
}

func TestReportUsecase_ProductHistory_NewestFirstFromRepo(t *testing.T) {
	pRepo := new(CatProductRepoMock)
	tRepo := new(ReportTransactionRepoMock)

	pRepo.On("FindByID", mock.Anything, "p-1").Return(model.Product{ID: "p-1"}, nil)
	ts := []model.Transaction{{ID: "t-2"}, {ID: "t-1"}}
	tRepo.On("ListByProductID", mock.Anything, "p-1").Return(ts, nil)

	uc := newReportUC(new(ReportRepoMock), tRepo, pRepo)

	out, err := uc.ProductHistory(context.Background(), "p-1")
	assert.NoError(t, err)
	assert.Equal(t, ts, out)
}
