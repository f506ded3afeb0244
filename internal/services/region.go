package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/auth"
	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
)

var regionColumns = []string{"id", "name", "created_at"}

type RegionService struct {
	access
	cascade *cascade
}

func NewRegionService(acc access, casc *cascade) *RegionService {
	return &RegionService{access: acc, cascade: casc}
}

type CreateRegionInput struct {
	Name string `json:"name" binding:"required"`
}

type UpdateRegionInput struct {
	Name *string `json:"name"`
}

func (s *RegionService) Create(in CreateRegionInput, authHeader string) (*models.Region, error) {
	if _, err := s.allow(authHeader, auth.EntityRegion, auth.OpCreate); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(&models.Region{}, "name", in.Name, ""); err != nil {
		return nil, err
	}

	region := &models.Region{ID: uuid.NewString(), Name: in.Name}
	if err := s.db.Create(region).Error; err != nil {
		return nil, translateWrite(err, "name", "")
	}
	return s.fetch(region.ID)
}

func (s *RegionService) List(authHeader string) ([]models.Region, error) {
	if _, err := s.verify(authHeader); err != nil {
		return nil, err
	}

	var regions []models.Region
	if err := s.db.Select(regionColumns).Find(&regions).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return regions, nil
}

func (s *RegionService) Get(id, authHeader string) (*models.Region, error) {
	if _, err := s.verify(authHeader); err != nil {
		return nil, err
	}
	return s.fetch(id)
}

func (s *RegionService) Update(id string, in UpdateRegionInput, authHeader string) (*models.Region, error) {
	if _, err := s.allow(authHeader, auth.EntityRegion, auth.OpUpdate); err != nil {
		return nil, err
	}
	if _, err := s.fetch(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		if err := s.ensureUnique(&models.Region{}, "name", *in.Name, id); err != nil {
			return nil, err
		}
		updates["name"] = *in.Name
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.Region{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, translateWrite(err, "name", "")
		}
	}
	return s.fetch(id)
}

// Remove deletes the region together with all its cities in one transaction.
func (s *RegionService) Remove(id, authHeader string) (*models.Region, error) {
	if _, err := s.allow(authHeader, auth.EntityRegion, auth.OpDelete); err != nil {
		return nil, err
	}
	region, err := s.fetch(id)
	if err != nil {
		return nil, err
	}

	rm := &removed{}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.cascade.deleteDependents(tx, auth.EntityRegion, id, rm); err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&models.Region{}).Error; err != nil {
			return httperr.Storage(err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return region, nil
}

func (s *RegionService) fetch(id string) (*models.Region, error) {
	var region models.Region
	if err := s.db.Select(regionColumns).Where("id = ?", id).First(&region).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.EntityNotFound("Region")
		}
		return nil, httperr.Storage(err)
	}
	return &region, nil
}
