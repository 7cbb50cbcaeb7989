package model

import "time"

type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`

	Products []Product `gorm:"many2many:product_categories;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

// CategorySummary is the `{id, name}` shape nested inside product responses.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryResponse is the wire shape for category listings and creations.
type CategoryResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Products    []ProductSummary `json:"products"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func (c *Category) ToResponse() CategoryResponse {
	products := make([]ProductSummary, 0, len(c.Products))
	for i := range c.Products {
		products = append(products, c.Products[i].ToSummary())
	}

	return CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Products:    products,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
