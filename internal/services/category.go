package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/auth"
	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
)

var categoryColumns = []string{"id", "name", "created_at"}

type CategoryService struct {
	access
	cascade *cascade
	images  *ImageService
}

func NewCategoryService(acc access, casc *cascade, images *ImageService) *CategoryService {
	return &CategoryService{access: acc, cascade: casc, images: images}
}

type CreateCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCategoryInput struct {
	Name *string `json:"name"`
}

func (s *CategoryService) Create(in CreateCategoryInput, authHeader string) (*models.Category, error) {
	if _, err := s.allow(authHeader, auth.EntityCategory, auth.OpCreate); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(&models.Category{}, "name", in.Name, ""); err != nil {
		return nil, err
	}

	category := &models.Category{ID: uuid.NewString(), Name: in.Name}
	if err := s.db.Create(category).Error; err != nil {
		return nil, translateWrite(err, "name", "")
	}
	return s.fetch(category.ID)
}

func (s *CategoryService) List(authHeader string) ([]models.Category, error) {
	if _, err := s.verify(authHeader); err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := s.db.Select(categoryColumns).Find(&categories).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return categories, nil
}

func (s *CategoryService) Get(id, authHeader string) (*models.Category, error) {
	if _, err := s.verify(authHeader); err != nil {
		return nil, err
	}
	return s.fetch(id)
}

func (s *CategoryService) Update(id string, in UpdateCategoryInput, authHeader string) (*models.Category, error) {
	if _, err := s.allow(authHeader, auth.EntityCategory, auth.OpUpdate); err != nil {
		return nil, err
	}
	if _, err := s.fetch(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		if err := s.ensureUnique(&models.Category{}, "name", *in.Name, id); err != nil {
			return nil, err
		}
		updates["name"] = *in.Name
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.Category{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, translateWrite(err, "name", "")
		}
	}
	return s.fetch(id)
}

// Remove deletes the category, its products and their images in one
// transaction, then unlinks the image files the cascade collected.
func (s *CategoryService) Remove(id, authHeader string) (*models.Category, error) {
	if _, err := s.allow(authHeader, auth.EntityCategory, auth.OpDelete); err != nil {
		return nil, err
	}
	category, err := s.fetch(id)
	if err != nil {
		return nil, err
	}

	rm := &removed{}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.cascade.deleteDependents(tx, auth.EntityCategory, id, rm); err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&models.Category{}).Error; err != nil {
			return httperr.Storage(err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	s.images.unlinkFiles(rm.files)
	return category, nil
}

func (s *CategoryService) fetch(id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Select(categoryColumns).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.EntityNotFound("Category")
		}
		return nil, httperr.Storage(err)
	}
	return &category, nil
}
