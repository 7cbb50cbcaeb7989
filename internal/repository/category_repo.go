package repository

import (
	"errors"

	"go-catalog-backend/internal/model"
	"go-catalog-backend/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAll() ([]model.Category, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	// CreateWithProducts persists the category plus one join row per product
	// id atomically; apperr.ErrNotFound if any product id is unknown.
	CreateWithProducts(category *model.Category, productIDs []uuid.UUID) error
	Count() (int64, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Preload("Products").
		Order("created_at ASC").
		Find(&categories).Error
	if err != nil {
		return nil, apperr.Storef("list categories: %v", err)
	}
	return categories, nil
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.Preload("Products").First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("category %s does not exist", id)
		}
		return nil, apperr.Storef("find category %s: %v", id, err)
	}
	return &category, nil
}

func (r *categoryRepo) CreateWithProducts(category *model.Category, productIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Product{}).Where("id IN ?", productIDs).Count(&count).Error; err != nil {
			return apperr.Storef("check products: %v", err)
		}
		if count != int64(len(productIDs)) {
			return apperr.NotFoundf("one or more products do not exist")
		}

		if err := tx.Create(category).Error; err != nil {
			return apperr.Storef("create category: %v", err)
		}

		for _, productID := range productIDs {
			link := model.ProductCategory{ProductID: productID, CategoryID: category.ID}
			if err := tx.Create(&link).Error; err != nil {
				return apperr.Storef("link category %s to product %s: %v", category.ID, productID, err)
			}
		}

		return nil
	})
}

func (r *categoryRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return 0, apperr.Storef("count categories: %v", err)
	}
	return count, nil
}
