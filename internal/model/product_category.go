package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductCategory is the join row behind the product/category many-to-many
// relation. It is a first-class model (rather than GORM's implicit join
// table) so the composite uniqueness and cascade rules live in the schema.
type ProductCategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_category" json:"productId"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_category" json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (pc *ProductCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if pc.ID == uuid.Nil {
		pc.ID = uuid.New()
	}
	return
}
