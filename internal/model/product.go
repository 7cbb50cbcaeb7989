package model

import "time"

type Product struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	// Denormalized convenience count; the source of truth for availability
	// is the Inventory row created alongside the product.
	Stock int `gorm:"not null;default:0" json:"stock" validate:"gte=0"`

	// Deleting a product must cascade to its inventory row and join rows
	// if a delete path is ever added.
	Inventory  *Inventory `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"inventory,omitempty"`
	Categories []Category `gorm:"many2many:product_categories;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
}

// ProductSummary is the `{id, name}` shape nested inside category and
// inventory responses.
type ProductSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductResponse is the wire shape for product listings and creations:
// the product plus its resolved inventory row and category summaries.
type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Stock       int               `json:"stock"`
	Inventory   *Inventory        `json:"inventory"`
	Categories  []CategorySummary `json:"categories"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func (p *Product) ToResponse() ProductResponse {
	categories := make([]CategorySummary, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, CategorySummary{ID: c.ID.String(), Name: c.Name})
	}

	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Inventory:   p.Inventory,
		Categories:  categories,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *Product) ToSummary() ProductSummary {
	return ProductSummary{ID: p.ID.String(), Name: p.Name}
}
