package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/auth"
	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
	"github.com/marketops/backoffice/internal/pagination"
)

const bcryptCost = 7

var staffColumns = []string{"id", "login", "full_name", "phone_number", "role", "card", "is_active"}

type StaffService struct {
	access
}

func NewStaffService(acc access) *StaffService {
	return &StaffService{access: acc}
}

type CreateStaffInput struct {
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Card        string `json:"card"`
	Role        string `json:"role" binding:"required"`
	Login       string `json:"login" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type LoginStaffInput struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateStaffInput struct {
	FullName    *string `json:"full_name"`
	PhoneNumber *string `json:"phone_number"`
	Card        *string `json:"card"`
	Role        *string `json:"role"`
	Login       *string `json:"login"`
	Password    *string `json:"password"`
}

type ActivateStaffInput struct {
	ID       string `json:"id" binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// AuthStaff is the projection returned by signup and login.
type AuthStaff struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type AuthResult struct {
	Token string    `json:"token"`
	Staff AuthStaff `json:"staff"`
}

// Signup registers a staff member and signs them in. Open endpoint.
func (s *StaffService) Signup(in CreateStaffInput) (*AuthResult, error) {
	if !models.ValidRole(in.Role) {
		return nil, httperr.InvalidEnumValue("role", models.StaffRoles)
	}
	if err := s.ensureUnique(&models.Staff{}, "login", in.Login, ""); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(&models.Staff{}, "phone_number", in.PhoneNumber, ""); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, httperr.Storage(err)
	}

	staff := &models.Staff{
		ID:             uuid.NewString(),
		FullName:       in.FullName,
		PhoneNumber:    in.PhoneNumber,
		Card:           in.Card,
		Role:           in.Role,
		Login:          in.Login,
		HashedPassword: string(hashed),
		IsActive:       true,
	}
	if err := s.db.Create(staff).Error; err != nil {
		return nil, translateWrite(err, "login", "")
	}
	return s.issueSession(staff)
}

// Login authenticates by login and password. Deactivated staff are refused
// even with correct credentials.
func (s *StaffService) Login(in LoginStaffInput) (*AuthResult, error) {
	var staff models.Staff
	if err := s.db.Where("login = ?", in.Login).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.InvalidCredentials()
		}
		return nil, httperr.Storage(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.HashedPassword), []byte(in.Password)) != nil {
		return nil, httperr.InvalidCredentials()
	}
	if !staff.IsActive {
		return nil, httperr.InactiveStaff()
	}
	return s.issueSession(&staff)
}

// issueSession signs a token pair and persists the refresh-token hash. The
// refresh token is digested before bcrypt since signed JWTs exceed bcrypt's
// 72-byte input limit.
func (s *StaffService) issueSession(staff *models.Staff) (*AuthResult, error) {
	tokens, err := s.tokens.Issue(staff)
	if err != nil {
		return nil, httperr.Storage(err)
	}

	digest := sha256.Sum256([]byte(tokens.RefreshToken))
	hashedRefresh, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(digest[:])), bcryptCost)
	if err != nil {
		return nil, httperr.Storage(err)
	}
	if err := s.db.Model(&models.Staff{}).Where("id = ?", staff.ID).
		Update("hashed_refresh_token", string(hashedRefresh)).Error; err != nil {
		return nil, httperr.Storage(err)
	}

	return &AuthResult{
		Token: tokens.AccessToken,
		Staff: AuthStaff{ID: staff.ID, Role: staff.Role, IsActive: staff.IsActive},
	}, nil
}

// List pages through staff. The caller's row is re-read so a deleted or
// demoted account cannot keep listing on a stale token.
func (s *StaffService) List(page int, authHeader string) ([]models.Staff, pagination.Meta, error) {
	claims, err := s.verify(authHeader)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	caller, err := s.requireCaller(claims)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if err := auth.Authorize(auth.EntityStaff, auth.OpListAll, caller.Role); err != nil {
		return nil, pagination.Meta{}, err
	}

	var total int64
	if err := s.db.Model(&models.Staff{}).Count(&total).Error; err != nil {
		return nil, pagination.Meta{}, httperr.Storage(err)
	}
	win := pagination.Paginate(page, pagination.DefaultPageSize, total)

	var records []models.Staff
	if err := s.db.Select(staffColumns).Offset(win.Offset).Limit(win.Limit).Find(&records).Error; err != nil {
		return nil, pagination.Meta{}, httperr.Storage(err)
	}
	return records, win.Meta, nil
}

func (s *StaffService) Get(id, authHeader string) (*models.Staff, error) {
	if _, err := s.allow(authHeader, auth.EntityStaff, auth.OpListAll); err != nil {
		return nil, err
	}
	return s.fetch(id)
}

func (s *StaffService) Update(id string, in UpdateStaffInput, authHeader string) (*models.Staff, error) {
	if _, err := s.allow(authHeader, auth.EntityStaff, auth.OpUpdate); err != nil {
		return nil, err
	}
	if _, err := s.fetch(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Login != nil {
		if err := s.ensureUnique(&models.Staff{}, "login", *in.Login, id); err != nil {
			return nil, err
		}
		updates["login"] = *in.Login
	}
	if in.PhoneNumber != nil {
		if err := s.ensureUnique(&models.Staff{}, "phone_number", *in.PhoneNumber, id); err != nil {
			return nil, err
		}
		updates["phone_number"] = *in.PhoneNumber
	}
	if in.Role != nil {
		if !models.ValidRole(*in.Role) {
			return nil, httperr.InvalidEnumValue("role", models.StaffRoles)
		}
		updates["role"] = *in.Role
	}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.Card != nil {
		updates["card"] = *in.Card
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, httperr.Storage(err)
		}
		updates["hashed_password"] = string(hashed)
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.Staff{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, translateWrite(err, "login", "")
		}
	}
	return s.fetch(id)
}

// Activate sets the account's active flag to the requested value; the same
// endpoint serves activation and deactivation.
func (s *StaffService) Activate(in ActivateStaffInput, authHeader string) (*models.Staff, error) {
	if _, err := s.allow(authHeader, auth.EntityStaff, auth.OpUpdate); err != nil {
		return nil, err
	}
	if _, err := s.fetch(in.ID); err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Staff{}).Where("id = ?", in.ID).
		Update("is_active", *in.IsActive).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return s.fetch(in.ID)
}

// Remove deletes the staff row. Contacts, products and orders registered by
// them stay in place with a dangling staff reference.
func (s *StaffService) Remove(id, authHeader string) (*models.Staff, error) {
	if _, err := s.allow(authHeader, auth.EntityStaff, auth.OpDelete); err != nil {
		return nil, err
	}
	staff, err := s.fetch(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Where("id = ?", id).Delete(&models.Staff{}).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return staff, nil
}

func (s *StaffService) fetch(id string) (*models.Staff, error) {
	var staff models.Staff
	if err := s.db.Select(staffColumns).Where("id = ?", id).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.EntityNotFound("Staff")
		}
		return nil, httperr.Storage(err)
	}
	return &staff, nil
}
