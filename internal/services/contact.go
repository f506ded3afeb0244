package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/auth"
	"github.com/marketops/backoffice/internal/codegen"
	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
	"github.com/marketops/backoffice/internal/pagination"
)

var contactColumns = []string{"id", "phone_number", "unique_id", "status", "is_old", "staff_id", "created_at"}

type ContactService struct {
	access
}

func NewContactService(acc access) *ContactService {
	return &ContactService{access: acc}
}

type CreateContactInput struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Status      string `json:"status"`
	IsOld       bool   `json:"is_old"`
}

type UpdateContactInput struct {
	PhoneNumber *string `json:"phone_number"`
	Status      *string `json:"status"`
	IsOld       *bool   `json:"is_old"`
}

// Create registers a contact under a generated unique id and stamps it with
// the operator who entered it.
func (s *ContactService) Create(in CreateContactInput, authHeader string) (*models.Contact, error) {
	claims, err := s.allow(authHeader, auth.EntityContact, auth.OpCreate)
	if err != nil {
		return nil, err
	}
	if in.Status != "" && !models.ValidContactStatus(in.Status) {
		return nil, httperr.InvalidEnumValue("status", models.ContactStatuses)
	}
	if err := s.ensureUnique(&models.Contact{}, "phone_number", in.PhoneNumber, ""); err != nil {
		return nil, err
	}

	uniqueID, err := codegen.Generate(codegen.ContactCode, func(candidate string) (bool, error) {
		var count int64
		if err := s.db.Model(&models.Contact{}).Where("unique_id = ?", candidate).Count(&count).Error; err != nil {
			return false, httperr.Storage(err)
		}
		return count > 0, nil
	})
	if err != nil {
		if errors.Is(err, codegen.ErrSpaceExhausted) {
			return nil, httperr.Storage(err)
		}
		return nil, err
	}

	contact := &models.Contact{
		ID:          uuid.NewString(),
		PhoneNumber: in.PhoneNumber,
		UniqueID:    uniqueID,
		Status:      in.Status,
		IsOld:       in.IsOld,
		StaffID:     claims.ID,
	}
	if err := s.db.Create(contact).Error; err != nil {
		return nil, translateWrite(err, "phone_number", "")
	}
	return s.fetch(contact.ID)
}

// List pages through contacts, newest first, after re-reading the caller's
// staff row.
func (s *ContactService) List(page int, authHeader string) ([]models.Contact, pagination.Meta, error) {
	claims, err := s.verify(authHeader)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if _, err := s.requireCaller(claims); err != nil {
		return nil, pagination.Meta{}, err
	}

	var total int64
	if err := s.db.Model(&models.Contact{}).Count(&total).Error; err != nil {
		return nil, pagination.Meta{}, httperr.Storage(err)
	}
	win := pagination.Paginate(page, pagination.DefaultPageSize, total)

	var records []models.Contact
	if err := s.db.Select(contactColumns).Order("created_at DESC").
		Offset(win.Offset).Limit(win.Limit).Find(&records).Error; err != nil {
		return nil, pagination.Meta{}, httperr.Storage(err)
	}
	return records, win.Meta, nil
}

// Search matches contacts whose phone number contains the fragment.
func (s *ContactService) Search(phoneFragment, authHeader string) ([]models.Contact, error) {
	if _, err := s.verify(authHeader); err != nil {
		return nil, err
	}

	var records []models.Contact
	if err := s.db.Select(contactColumns).
		Where("phone_number LIKE ?", "%"+phoneFragment+"%").
		Find(&records).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return records, nil
}

// GetByUniqueID looks a contact up by its human-facing code.
func (s *ContactService) GetByUniqueID(uniqueID, authHeader string) (*models.Contact, error) {
	if _, err := s.verify(authHeader); err != nil {
		return nil, err
	}

	var contact models.Contact
	if err := s.db.Select(contactColumns).Where("unique_id = ?", uniqueID).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.EntityNotFound("Contact")
		}
		return nil, httperr.Storage(err)
	}
	return &contact, nil
}

func (s *ContactService) Get(id, authHeader string) (*models.Contact, error) {
	if _, err := s.verify(authHeader); err != nil {
		return nil, err
	}
	return s.fetch(id)
}

func (s *ContactService) Update(id string, in UpdateContactInput, authHeader string) (*models.Contact, error) {
	if _, err := s.allow(authHeader, auth.EntityContact, auth.OpUpdate); err != nil {
		return nil, err
	}
	if _, err := s.fetch(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.PhoneNumber != nil {
		if err := s.ensureUnique(&models.Contact{}, "phone_number", *in.PhoneNumber, id); err != nil {
			return nil, err
		}
		updates["phone_number"] = *in.PhoneNumber
	}
	if in.Status != nil {
		if *in.Status != "" && !models.ValidContactStatus(*in.Status) {
			return nil, httperr.InvalidEnumValue("status", models.ContactStatuses)
		}
		updates["status"] = *in.Status
	}
	if in.IsOld != nil {
		updates["is_old"] = *in.IsOld
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.Contact{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, translateWrite(err, "phone_number", "")
		}
	}
	return s.fetch(id)
}

// Remove deletes the contact. Its orders keep the contact id as a dangling
// historical reference.
func (s *ContactService) Remove(id, authHeader string) (*models.Contact, error) {
	if _, err := s.allow(authHeader, auth.EntityContact, auth.OpDelete); err != nil {
		return nil, err
	}
	contact, err := s.fetch(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Where("id = ?", id).Delete(&models.Contact{}).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return contact, nil
}

func (s *ContactService) fetch(id string) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.Select(contactColumns).Where("id = ?", id).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.EntityNotFound("Contact")
		}
		return nil, httperr.Storage(err)
	}
	return &contact, nil
}
