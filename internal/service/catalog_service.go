package service

import (
	"fmt"

	"go-catalog-backend/internal/model"
	"go-catalog-backend/internal/repository"
	"go-catalog-backend/internal/ws"
	"go-catalog-backend/pkg/apperr"
	"go-catalog-backend/pkg/validator"

	"github.com/google/uuid"
)

// CreateProductInput is the POST /api/product body.
type CreateProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Categories  []string `json:"categories" validate:"required,min=1"`
}

// CreateCategoryInput is the POST /api/categories body.
type CreateCategoryInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Products    []string `json:"products" validate:"required,min=1"`
}

type CatalogService interface {
	ListProducts() ([]model.ProductResponse, error)
	CreateProduct(in *CreateProductInput) (*model.ProductResponse, error)
	ListCategories() ([]model.CategoryResponse, error)
	CreateCategory(in *CreateCategoryInput) (*model.CategoryResponse, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	hub          *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		hub:          hub,
	}
}

func (s *catalogService) ListProducts() ([]model.ProductResponse, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, products[i].ToResponse())
	}
	return responses, nil
}

func (s *catalogService) CreateProduct(in *CreateProductInput) (*model.ProductResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	categoryIDs, err := parseIDSet(in.Categories, "category")
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
	}

	if err := s.productRepo.CreateWithRelations(product, categoryIDs); err != nil {
		return nil, err
	}

	// Reload so the response carries resolved category names, not just ids.
	created, err := s.productRepo.FindByID(product.ID)
	if err != nil {
		return nil, err
	}

	resp := created.ToResponse()
	go s.hub.Publish(ws.Event{
		Type:    "catalog_update",
		Action:  "product_created",
		Payload: resp,
		Message: fmt.Sprintf("product %q created", created.Name),
	})

	return &resp, nil
}

func (s *catalogService) ListCategories() ([]model.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, categories[i].ToResponse())
	}
	return responses, nil
}

func (s *catalogService) CreateCategory(in *CreateCategoryInput) (*model.CategoryResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	productIDs, err := parseIDSet(in.Products, "product")
	if err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:        in.Name,
		Description: in.Description,
	}

	if err := s.categoryRepo.CreateWithProducts(category, productIDs); err != nil {
		return nil, err
	}

	created, err := s.categoryRepo.FindByID(category.ID)
	if err != nil {
		return nil, err
	}

	resp := created.ToResponse()
	go s.hub.Publish(ws.Event{
		Type:    "catalog_update",
		Action:  "category_created",
		Payload: resp,
		Message: fmt.Sprintf("category %q created", created.Name),
	})

	return &resp, nil
}

// validateInput runs struct validation and reports the first failure as an
// invalid-input error.
func validateInput(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return apperr.InvalidInputf("field %s failed on %s", first.FailedField, first.Tag)
	}
	return nil
}

// parseIDSet parses and de-duplicates related-entity ids. A malformed id
// cannot reference an existing row, so it reports not-found, keeping the
// status contract identical to a well-formed-but-unknown id.
func parseIDSet(raw []string, kind string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, apperr.NotFoundf("%s %q does not exist", kind, value)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}
