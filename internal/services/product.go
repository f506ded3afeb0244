package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/auth"
	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
	"github.com/marketops/backoffice/internal/pagination"
)

var productColumns = []string{"id", "name", "price", "description", "category_id", "staff_id", "created_at"}

type ProductService struct {
	access
	images  *ImageService
	cascade *cascade
}

func NewProductService(acc access, images *ImageService, casc *cascade) *ProductService {
	return &ProductService{access: acc, images: images, cascade: casc}
}

// CreateProductInput arrives as multipart form fields; the files travel
// separately. Price is parsed here so a bad value fails before any file is
// written.
type CreateProductInput struct {
	Name        string `form:"name" binding:"required"`
	Price       string `form:"price" binding:"required"`
	Description string `form:"description"`
	CategoryID  string `form:"category_id" binding:"required"`
}

type UpdateProductInput struct {
	Name        *string `json:"name"`
	Price       *string `json:"price"`
	Description *string `json:"description"`
	CategoryID  *string `json:"category_id"`
}

// Create registers a product with its uploaded images. Files are written to
// the store first; if the row transaction fails they are unlinked again.
func (s *ProductService) Create(in CreateProductInput, files [][]byte, authHeader string) (*models.Product, error) {
	claims, err := s.allow(authHeader, auth.EntityProduct, auth.OpCreate)
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	if err := s.ensureExists(&models.Category{}, "Category", in.CategoryID); err != nil {
		return nil, err
	}

	names, err := s.images.saveFiles(files)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Price:       price,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		StaffID:     claims.ID,
	}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images").Create(product).Error; err != nil {
			return translateWrite(err, "", "Category")
		}
		_, err := s.images.createRows(tx, product.ID, names)
		return err
	}); err != nil {
		s.images.unlinkFiles(names)
		return nil, err
	}
	return s.fetch(product.ID)
}

// List pages through products with their images preloaded. The caller's row
// is re-read so stale tokens of removed staff cannot browse the catalog.
func (s *ProductService) List(page int, authHeader string) ([]models.Product, pagination.Meta, error) {
	claims, err := s.verify(authHeader)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if _, err := s.requireCaller(claims); err != nil {
		return nil, pagination.Meta{}, err
	}

	var total int64
	if err := s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, pagination.Meta{}, httperr.Storage(err)
	}
	win := pagination.Paginate(page, pagination.DefaultPageSize, total)

	var records []models.Product
	if err := s.db.Select(productColumns).Preload("Images").
		Offset(win.Offset).Limit(win.Limit).Find(&records).Error; err != nil {
		return nil, pagination.Meta{}, httperr.Storage(err)
	}
	return records, win.Meta, nil
}

func (s *ProductService) Get(id, authHeader string) (*models.Product, error) {
	if _, err := s.verify(authHeader); err != nil {
		return nil, err
	}
	return s.fetch(id)
}

func (s *ProductService) Update(id string, in UpdateProductInput, authHeader string) (*models.Product, error) {
	if _, err := s.allow(authHeader, auth.EntityProduct, auth.OpUpdate); err != nil {
		return nil, err
	}
	if _, err := s.fetch(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Price != nil {
		price, err := parsePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		updates["price"] = price
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.CategoryID != nil {
		if err := s.ensureExists(&models.Category{}, "Category", *in.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *in.CategoryID
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, translateWrite(err, "", "Category")
		}
	}
	return s.fetch(id)
}

// Remove deletes the product and its image rows in one transaction, then
// unlinks the image files. Orders referencing the product keep their id.
func (s *ProductService) Remove(id, authHeader string) (*models.Product, error) {
	if _, err := s.allow(authHeader, auth.EntityProduct, auth.OpDelete); err != nil {
		return nil, err
	}
	product, err := s.fetch(id)
	if err != nil {
		return nil, err
	}

	rm := &removed{}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.removeTx(tx, id, rm)
	}); err != nil {
		return nil, err
	}

	s.images.unlinkFiles(rm.files)
	return product, nil
}

// removeTx is the transactional remove used both directly and by the
// category cascade. Image rows go first so the FK constraint never trips.
func (s *ProductService) removeTx(tx *gorm.DB, id string, rm *removed) error {
	if err := s.cascade.deleteDependents(tx, auth.EntityProduct, id, rm); err != nil {
		return err
	}
	if err := tx.Where("id = ?", id).Delete(&models.Product{}).Error; err != nil {
		return httperr.Storage(err)
	}
	return nil
}

func (s *ProductService) fetch(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Select(productColumns).Preload("Images").
		Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.EntityNotFound("Product")
		}
		return nil, httperr.Storage(err)
	}
	return &product, nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, httperr.InvalidFieldValue("price", "price must be a decimal number")
	}
	if price.IsNegative() {
		return decimal.Zero, httperr.InvalidFieldValue("price", "price must not be negative")
	}
	return price, nil
}
