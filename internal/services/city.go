package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/auth"
	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
)

var cityColumns = []string{"id", "name", "region_id", "created_at"}

type CityService struct {
	access
	cascade *cascade
}

func NewCityService(acc access, casc *cascade) *CityService {
	return &CityService{access: acc, cascade: casc}
}

type CreateCityInput struct {
	Name     string `json:"name" binding:"required"`
	RegionID string `json:"region_id" binding:"required"`
}

type UpdateCityInput struct {
	Name     *string `json:"name"`
	RegionID *string `json:"region_id"`
}

func (s *CityService) Create(in CreateCityInput, authHeader string) (*models.City, error) {
	if _, err := s.allow(authHeader, auth.EntityCity, auth.OpCreate); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(&models.City{}, "name", in.Name, ""); err != nil {
		return nil, err
	}
	if err := s.ensureExists(&models.Region{}, "Region", in.RegionID); err != nil {
		return nil, err
	}

	city := &models.City{ID: uuid.NewString(), Name: in.Name, RegionID: in.RegionID}
	if err := s.db.Create(city).Error; err != nil {
		return nil, translateWrite(err, "name", "Region")
	}
	return s.fetch(city.ID)
}

// List returns cities, optionally narrowed to one region.
func (s *CityService) List(regionID, authHeader string) ([]models.City, error) {
	if _, err := s.verify(authHeader); err != nil {
		return nil, err
	}

	q := s.db.Select(cityColumns)
	if regionID != "" {
		q = q.Where("region_id = ?", regionID)
	}

	var cities []models.City
	if err := q.Find(&cities).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return cities, nil
}

func (s *CityService) Get(id, authHeader string) (*models.City, error) {
	if _, err := s.verify(authHeader); err != nil {
		return nil, err
	}
	return s.fetch(id)
}

func (s *CityService) Update(id string, in UpdateCityInput, authHeader string) (*models.City, error) {
	if _, err := s.allow(authHeader, auth.EntityCity, auth.OpUpdate); err != nil {
		return nil, err
	}
	if _, err := s.fetch(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		if err := s.ensureUnique(&models.City{}, "name", *in.Name, id); err != nil {
			return nil, err
		}
		updates["name"] = *in.Name
	}
	if in.RegionID != nil {
		if err := s.ensureExists(&models.Region{}, "Region", *in.RegionID); err != nil {
			return nil, err
		}
		updates["region_id"] = *in.RegionID
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.City{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, translateWrite(err, "name", "Region")
		}
	}
	return s.fetch(id)
}

func (s *CityService) Remove(id, authHeader string) (*models.City, error) {
	if _, err := s.allow(authHeader, auth.EntityCity, auth.OpDelete); err != nil {
		return nil, err
	}
	city, err := s.fetch(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.removeTx(tx, id, &removed{})
	}); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CityService) removeTx(tx *gorm.DB, id string, _ *removed) error {
	if err := tx.Where("id = ?", id).Delete(&models.City{}).Error; err != nil {
		return httperr.Storage(err)
	}
	return nil
}

func (s *CityService) fetch(id string) (*models.City, error) {
	var city models.City
	if err := s.db.Select(cityColumns).Where("id = ?", id).First(&city).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.EntityNotFound("City")
		}
		return nil, httperr.Storage(err)
	}
	return &city, nil
}
