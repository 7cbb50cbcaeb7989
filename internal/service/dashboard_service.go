package service

import (
	"go-catalog-backend/internal/repository"
)

// DashboardStats are the summary counters shown on the admin dashboard.
type DashboardStats struct {
	TotalProducts   int64 `json:"totalProducts"`
	TotalCategories int64 `json:"totalCategories"`
	TotalInventory  int64 `json:"totalInventory"`
}

type DashboardService interface {
	Stats() (*DashboardStats, error)
}

type dashboardService struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	inventoryRepo repository.InventoryRepository
}

func NewDashboardService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, iRepo repository.InventoryRepository) DashboardService {
	return &dashboardService{
		productRepo:   pRepo,
		categoryRepo:  cRepo,
		inventoryRepo: iRepo,
	}
}

func (s *dashboardService) Stats() (*DashboardStats, error) {
	totalProducts, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}

	totalCategories, err := s.categoryRepo.Count()
	if err != nil {
		return nil, err
	}

	totalInventory, err := s.inventoryRepo.SumAvailable()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProducts:   totalProducts,
		TotalCategories: totalCategories,
		TotalInventory:  totalInventory,
	}, nil
}
