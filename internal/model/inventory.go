package model

import (
	"time"

	"github.com/google/uuid"
)

// Inventory is the per-product counter pair. Exactly one row may exist per
// product (enforced by the unique index and re-checked transactionally on
// the standalone create path).
type Inventory struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Available int       `gorm:"not null;default:0" json:"available" validate:"gte=0"`
	Sold      int       `gorm:"not null;default:0" json:"sold" validate:"gte=0"`
}

// InventoryResponse is the wire shape for inventory listings: the counters
// joined with the owning product summary.
type InventoryResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Product   *ProductSummary `json:"product"`
	Available int             `json:"available"`
	Sold      int             `json:"sold"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (i *Inventory) ToResponse() InventoryResponse {
	resp := InventoryResponse{
		ID:        i.ID.String(),
		ProductID: i.ProductID.String(),
		Available: i.Available,
		Sold:      i.Sold,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}

	if i.Product != nil {
		summary := i.Product.ToSummary()
		resp.Product = &summary
	}

	return resp
}
