package repository

import (
	"errors"

	"go-catalog-backend/internal/model"
	"go-catalog-backend/pkg/apperr"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	FindAll() ([]model.Inventory, error)
	// Create inserts a standalone inventory row for an existing product.
	// apperr.ErrNotFound if the product does not exist, apperr.ErrConflict
	// if the product already has a row. On success inv.Product is resolved.
	Create(inv *model.Inventory) error
	// SumAvailable returns SUM(available) over all rows, 0 for an empty
	// store.
	SumAvailable() (int64, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) FindAll() ([]model.Inventory, error) {
	var rows []model.Inventory
	err := r.db.Preload("Product").
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Storef("list inventory: %v", err)
	}
	return rows, nil
}

func (r *inventoryRepo) Create(inv *model.Inventory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", inv.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("product %s does not exist", inv.ProductID)
			}
			return apperr.Storef("find product %s: %v", inv.ProductID, err)
		}

		var existing int64
		if err := tx.Model(&model.Inventory{}).Where("product_id = ?", inv.ProductID).Count(&existing).Error; err != nil {
			return apperr.Storef("check existing inventory: %v", err)
		}
		if existing > 0 {
			return apperr.Conflictf("inventory already exists for product %s", inv.ProductID)
		}

		if err := tx.Create(inv).Error; err != nil {
			return apperr.Storef("create inventory: %v", err)
		}

		inv.Product = &product
		return nil
	})
}

func (r *inventoryRepo) SumAvailable() (int64, error) {
	var total int64
	err := r.db.Model(&model.Inventory{}).
		Select("COALESCE(SUM(available), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperr.Storef("sum inventory: %v", err)
	}
	return total, nil
}
