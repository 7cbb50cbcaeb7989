package service

import (
	"fmt"

	"go-catalog-backend/internal/model"
	"go-catalog-backend/internal/repository"
	"go-catalog-backend/internal/ws"
	"go-catalog-backend/pkg/apperr"

	"github.com/google/uuid"
)

// CreateInventoryInput is the POST /api/inventory body.
type CreateInventoryInput struct {
	ProductID string `json:"productId" validate:"required"`
	Available int    `json:"available" validate:"gte=0"`
	Sold      int    `json:"sold" validate:"gte=0"`
}

type InventoryService interface {
	ListInventory() ([]model.InventoryResponse, error)
	CreateInventory(in *CreateInventoryInput) (*model.InventoryResponse, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	hub           *ws.Hub
}

func NewInventoryService(iRepo repository.InventoryRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		inventoryRepo: iRepo,
		hub:           hub,
	}
}

func (s *inventoryService) ListInventory() ([]model.InventoryResponse, error) {
	rows, err := s.inventoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.InventoryResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, rows[i].ToResponse())
	}
	return responses, nil
}

func (s *inventoryService) CreateInventory(in *CreateInventoryInput) (*model.InventoryResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	productID, err := uuid.Parse(in.ProductID)
	if err != nil {
		return nil, apperr.NotFoundf("product %q does not exist", in.ProductID)
	}

	inv := &model.Inventory{
		ProductID: productID,
		Available: in.Available,
		Sold:      in.Sold,
	}

	if err := s.inventoryRepo.Create(inv); err != nil {
		return nil, err
	}

	resp := inv.ToResponse()
	go s.hub.Publish(ws.Event{
		Type:    "catalog_update",
		Action:  "inventory_created",
		Payload: resp,
		Message: fmt.Sprintf("inventory created for product %s", productID),
	})

	return &resp, nil
}
