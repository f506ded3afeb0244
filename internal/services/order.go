package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/auth"
	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
	"github.com/marketops/backoffice/internal/pagination"
)

var orderColumns = []string{
	"id", "full_name", "address", "target", "status", "description",
	"product_id", "staff_id", "city_id", "contact_id", "created_at",
}

type OrderService struct {
	access
}

func NewOrderService(acc access) *OrderService {
	return &OrderService{access: acc}
}

type CreateOrderInput struct {
	FullName    string `json:"full_name" binding:"required"`
	Address     string `json:"address"`
	Target      string `json:"target"`
	Status      string `json:"status"`
	Description string `json:"description"`
	ProductID   string `json:"product_id" binding:"required"`
	CityID      string `json:"city_id" binding:"required"`
	ContactID   string `json:"contact_id" binding:"required"`
}

type UpdateOrderInput struct {
	FullName    *string `json:"full_name"`
	Address     *string `json:"address"`
	Target      *string `json:"target"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
	ProductID   *string `json:"product_id"`
	CityID      *string `json:"city_id"`
	ContactID   *string `json:"contact_id"`
}

// Create registers an order. References are checked at entry; afterwards the
// order is a historical record and survives removal of what it points at.
func (s *OrderService) Create(in CreateOrderInput, authHeader string) (*models.Order, error) {
	claims, err := s.allow(authHeader, auth.EntityOrder, auth.OpCreate)
	if err != nil {
		return nil, err
	}
	if in.Status != "" && !models.ValidOrderStatus(in.Status) {
		return nil, httperr.InvalidEnumValue("status", models.OrderStatuses)
	}
	if err := s.ensureExists(&models.Product{}, "Product", in.ProductID); err != nil {
		return nil, err
	}
	if err := s.ensureExists(&models.City{}, "City", in.CityID); err != nil {
		return nil, err
	}
	if err := s.ensureExists(&models.Contact{}, "Contact", in.ContactID); err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:          uuid.NewString(),
		FullName:    in.FullName,
		Address:     in.Address,
		Target:      in.Target,
		Status:      in.Status,
		Description: in.Description,
		ProductID:   in.ProductID,
		StaffID:     claims.ID,
		CityID:      in.CityID,
		ContactID:   in.ContactID,
	}
	if err := s.db.Create(order).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return s.fetch(order.ID)
}

// List pages through orders, newest first, after re-reading the caller's
// staff row.
func (s *OrderService) List(page int, authHeader string) ([]models.Order, pagination.Meta, error) {
	claims, err := s.verify(authHeader)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if _, err := s.requireCaller(claims); err != nil {
		return nil, pagination.Meta{}, err
	}

	var total int64
	if err := s.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, pagination.Meta{}, httperr.Storage(err)
	}
	win := pagination.Paginate(page, pagination.DefaultPageSize, total)

	var records []models.Order
	if err := s.db.Select(orderColumns).Order("created_at DESC").
		Offset(win.Offset).Limit(win.Limit).Find(&records).Error; err != nil {
		return nil, pagination.Meta{}, httperr.Storage(err)
	}
	return records, win.Meta, nil
}

func (s *OrderService) Get(id, authHeader string) (*models.Order, error) {
	if _, err := s.verify(authHeader); err != nil {
		return nil, err
	}
	return s.fetch(id)
}

func (s *OrderService) Update(id string, in UpdateOrderInput, authHeader string) (*models.Order, error) {
	if _, err := s.allow(authHeader, auth.EntityOrder, auth.OpUpdate); err != nil {
		return nil, err
	}
	if _, err := s.fetch(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.Target != nil {
		updates["target"] = *in.Target
	}
	if in.Status != nil {
		if *in.Status != "" && !models.ValidOrderStatus(*in.Status) {
			return nil, httperr.InvalidEnumValue("status", models.OrderStatuses)
		}
		updates["status"] = *in.Status
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.ProductID != nil {
		if err := s.ensureExists(&models.Product{}, "Product", *in.ProductID); err != nil {
			return nil, err
		}
		updates["product_id"] = *in.ProductID
	}
	if in.CityID != nil {
		if err := s.ensureExists(&models.City{}, "City", *in.CityID); err != nil {
			return nil, err
		}
		updates["city_id"] = *in.CityID
	}
	if in.ContactID != nil {
		if err := s.ensureExists(&models.Contact{}, "Contact", *in.ContactID); err != nil {
			return nil, err
		}
		updates["contact_id"] = *in.ContactID
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, httperr.Storage(err)
		}
	}
	return s.fetch(id)
}

func (s *OrderService) Remove(id, authHeader string) (*models.Order, error) {
	if _, err := s.allow(authHeader, auth.EntityOrder, auth.OpDelete); err != nil {
		return nil, err
	}
	order, err := s.fetch(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Where("id = ?", id).Delete(&models.Order{}).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return order, nil
}

func (s *OrderService) fetch(id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Select(orderColumns).Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.EntityNotFound("Order")
		}
		return nil, httperr.Storage(err)
	}
	return &order, nil
}
