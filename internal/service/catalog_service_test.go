package service_test

import (
	"testing"

	"go-catalog-backend/internal/model"
	"go-catalog-backend/internal/service"
	"go-catalog-backend/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll() ([]model.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(id uuid.UUID) (*model.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) CreateWithRelations(product *model.Product, categoryIDs []uuid.UUID) error {
	args := m.Called(product, categoryIDs)
	return args.Error(0)
}

func (m *MockProductRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindAll() ([]model.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(id uuid.UUID) (*model.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) CreateWithProducts(category *model.Category, productIDs []uuid.UUID) error {
	args := m.Called(category, productIDs)
	return args.Error(0)
}

func (m *MockCategoryRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockInventoryRepository is a mock implementation of repository.InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindAll() ([]model.Inventory, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) Create(inv *model.Inventory) error {
	args := m.Called(inv)
	return args.Error(0)
}

func (m *MockInventoryRepository) SumAvailable() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateProductRejectsInvalidInputBeforeStore(t *testing.T) {
	cases := []struct {
		name  string
		input service.CreateProductInput
	}{
		{"empty name", service.CreateProductInput{Name: "", Price: 10, Stock: 1, Categories: []string{uuid.NewString()}}},
		{"negative price", service.CreateProductInput{Name: "Widget", Price: -1, Stock: 1, Categories: []string{uuid.NewString()}}},
		{"negative stock", service.CreateProductInput{Name: "Widget", Price: 10, Stock: -1, Categories: []string{uuid.NewString()}}},
		{"empty categories", service.CreateProductInput{Name: "Widget", Price: 10, Stock: 1, Categories: []string{}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			productRepo := new(MockProductRepository)
			categoryRepo := new(MockCategoryRepository)
			svc := service.NewCatalogService(productRepo, categoryRepo, nil)

			resp, err := svc.CreateProduct(&tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrInvalidInput)
			assert.Nil(t, resp)
			productRepo.AssertNotCalled(t, "CreateWithRelations", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateProductMalformedCategoryIDIsNotFound(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := service.NewCatalogService(productRepo, categoryRepo, nil)

	resp, err := svc.CreateProduct(&service.CreateProductInput{
		Name: "Widget", Price: 10, Stock: 1, Categories: []string{"missing-id"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, resp)
	productRepo.AssertNotCalled(t, "CreateWithRelations", mock.Anything, mock.Anything)
}

func TestCreateProductDeduplicatesCategoryIDs(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := service.NewCatalogService(productRepo, categoryRepo, nil)

	catID := uuid.New()
	created := &model.Product{
		Name:      "Widget",
		Inventory: &model.Inventory{Available: 5, Sold: 0},
		Categories: []model.Category{
			{Name: "Gadgets"},
		},
	}
	created.Categories[0].ID = catID

	productRepo.On("CreateWithRelations", mock.Anything, []uuid.UUID{catID}).
		Run(func(args mock.Arguments) {
			args.Get(0).(*model.Product).ID = created.ID
		}).Return(nil).Once()
	productRepo.On("FindByID", mock.Anything).Return(created, nil).Once()

	resp, err := svc.CreateProduct(&service.CreateProductInput{
		Name:       "Widget",
		Price:      10,
		Stock:      5,
		Categories: []string{catID.String(), catID.String()},
	})
	require.NoError(t, err)
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, catID.String(), resp.Categories[0].ID)
	productRepo.AssertExpectations(t)
}

func TestCreateCategoryRejectsInvalidInput(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := service.NewCatalogService(productRepo, categoryRepo, nil)

	_, err := svc.CreateCategory(&service.CreateCategoryInput{Name: "", Products: []string{uuid.NewString()}})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.CreateCategory(&service.CreateCategoryInput{Name: "Featured", Products: nil})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	categoryRepo.AssertNotCalled(t, "CreateWithProducts", mock.Anything, mock.Anything)
}

func TestCreateInventoryValidation(t *testing.T) {
	inventoryRepo := new(MockInventoryRepository)
	svc := service.NewInventoryService(inventoryRepo, nil)

	_, err := svc.CreateInventory(&service.CreateInventoryInput{ProductID: uuid.NewString(), Available: -1})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.CreateInventory(&service.CreateInventoryInput{ProductID: uuid.NewString(), Sold: -1})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.CreateInventory(&service.CreateInventoryInput{ProductID: "not-a-product"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	inventoryRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDashboardStatsAggregatesRepos(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	inventoryRepo := new(MockInventoryRepository)
	svc := service.NewDashboardService(productRepo, categoryRepo, inventoryRepo)

	productRepo.On("Count").Return(int64(3), nil).Once()
	categoryRepo.On("Count").Return(int64(2), nil).Once()
	inventoryRepo.On("SumAvailable").Return(int64(17), nil).Once()

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.TotalCategories)
	assert.Equal(t, int64(17), stats.TotalInventory)

	productRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
}

func TestDashboardStatsPropagatesStoreFailure(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	inventoryRepo := new(MockInventoryRepository)
	svc := service.NewDashboardService(productRepo, categoryRepo, inventoryRepo)

	productRepo.On("Count").Return(int64(0), apperr.Storef("boom")).Once()

	stats, err := svc.Stats()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrStore)
	assert.Nil(t, stats)
}
