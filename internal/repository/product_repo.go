package repository

import (
	"errors"

	"go-catalog-backend/internal/model"
	"go-catalog-backend/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	// CreateWithRelations persists the product, its inventory row
	// (available = stock, sold = 0), and one join row per category id as a
	// single transaction. If any category id does not exist, nothing is
	// persisted and apperr.ErrNotFound is returned.
	CreateWithRelations(product *model.Product, categoryIDs []uuid.UUID) error
	Count() (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Categories").Preload("Inventory").
		Order("created_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, apperr.Storef("list products: %v", err)
	}
	return products, nil
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Categories").Preload("Inventory").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("product %s does not exist", id)
		}
		return nil, apperr.Storef("find product %s: %v", id, err)
	}
	return &product, nil
}

func (r *productRepo) CreateWithRelations(product *model.Product, categoryIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := requireCategories(tx, categoryIDs); err != nil {
			return err
		}

		if err := tx.Create(product).Error; err != nil {
			return apperr.Storef("create product: %v", err)
		}

		inv := model.Inventory{
			ProductID: product.ID,
			Available: product.Stock,
			Sold:      0,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return apperr.Storef("create inventory for product %s: %v", product.ID, err)
		}

		for _, categoryID := range categoryIDs {
			link := model.ProductCategory{ProductID: product.ID, CategoryID: categoryID}
			if err := tx.Create(&link).Error; err != nil {
				return apperr.Storef("link product %s to category %s: %v", product.ID, categoryID, err)
			}
		}

		product.Inventory = &inv
		return nil
	})
}

func (r *productRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, apperr.Storef("count products: %v", err)
	}
	return count, nil
}

// requireCategories fails the enclosing transaction unless every id
// references an existing category. categoryIDs must already be de-duplicated
// (the service layer does this) so the count comparison is exact.
func requireCategories(tx *gorm.DB, categoryIDs []uuid.UUID) error {
	var count int64
	if err := tx.Model(&model.Category{}).Where("id IN ?", categoryIDs).Count(&count).Error; err != nil {
		return apperr.Storef("check categories: %v", err)
	}
	if count != int64(len(categoryIDs)) {
		return apperr.NotFoundf("one or more categories do not exist")
	}
	return nil
}
