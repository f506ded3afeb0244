// Package services implements the entity lifecycle: token verification, role
// authorization, pre-write validation, persistence and cascade deletion.
// Handlers stay thin and delegate here.
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/auth"
	"github.com/marketops/backoffice/internal/guard"
	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/logger"
	"github.com/marketops/backoffice/internal/models"
	"github.com/marketops/backoffice/internal/storage"
)

// Set wires every entity service over one DB handle and one token authority.
type Set struct {
	Staff    *StaffService
	Region   *RegionService
	City     *CityService
	Category *CategoryService
	Product  *ProductService
	Image    *ImageService
	Contact  *ContactService
	Order    *OrderService
}

func NewSet(db *gorm.DB, log *logger.Logger, tokens *auth.TokenAuthority, store storage.Store) *Set {
	acc := access{db: db, log: log, tokens: tokens}
	casc := newCascade()

	image := NewImageService(acc, store)
	product := NewProductService(acc, image, casc)
	city := NewCityService(acc, casc)
	region := NewRegionService(acc, casc)
	category := NewCategoryService(acc, casc, image)
	staff := NewStaffService(acc)
	contact := NewContactService(acc)
	order := NewOrderService(acc)

	// Declared FK edges. Cascade edges delete dependents deepest-first
	// through the dependent's own transactional remove; detach edges leave
	// dangling references in place, matching the historical-record policy
	// for orders and staff-owned rows.
	casc.register(auth.EntityRegion, edge{child: auth.EntityCity, table: "cities", fk: "region_id", policy: policyCascade, remove: city.removeTx})
	casc.register(auth.EntityCategory, edge{child: auth.EntityProduct, table: "products", fk: "category_id", policy: policyCascade, remove: product.removeTx})
	casc.register(auth.EntityProduct, edge{child: auth.EntityImage, table: "images", fk: "product_id", policy: policyCascade, remove: image.removeTx})
	casc.register(auth.EntityStaff, edge{child: auth.EntityContact, table: "contacts", fk: "staff_id", policy: policyDetach})
	casc.register(auth.EntityStaff, edge{child: auth.EntityProduct, table: "products", fk: "staff_id", policy: policyDetach})
	casc.register(auth.EntityStaff, edge{child: auth.EntityOrder, table: "orders", fk: "staff_id", policy: policyDetach})
	casc.register(auth.EntityContact, edge{child: auth.EntityOrder, table: "orders", fk: "contact_id", policy: policyDetach})
	casc.register(auth.EntityProduct, edge{child: auth.EntityOrder, table: "orders", fk: "product_id", policy: policyDetach})
	casc.register(auth.EntityCity, edge{child: auth.EntityOrder, table: "orders", fk: "city_id", policy: policyDetach})

	return &Set{
		Staff:    staff,
		Region:   region,
		City:     city,
		Category: category,
		Product:  product,
		Image:    image,
		Contact:  contact,
		Order:    order,
	}
}

// access bundles the dependencies every service shares.
type access struct {
	db     *gorm.DB
	log    *logger.Logger
	tokens *auth.TokenAuthority
}

func (a access) verify(authHeader string) (*auth.Claims, error) {
	return a.tokens.Verify(authHeader)
}

// allow verifies the token and consults the policy table with the claimed
// role. Claims are trusted as issued here; operations that need the
// authoritative row use requireCaller instead.
func (a access) allow(authHeader string, entity auth.Entity, op auth.Operation) (*auth.Claims, error) {
	claims, err := a.tokens.Verify(authHeader)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(entity, op, claims.Role); err != nil {
		return nil, err
	}
	return claims, nil
}

// requireCaller re-fetches the caller's staff row, so deleted staff lose
// access immediately regardless of token claims.
func (a access) requireCaller(claims *auth.Claims) (*models.Staff, error) {
	var st models.Staff
	if err := a.db.Where("id = ?", claims.ID).First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.EntityNotFound("Staff")
		}
		return nil, httperr.Storage(err)
	}
	return &st, nil
}

// translateWrite maps constraint violations raised by the database onto the
// same error kinds the pre-checks produce, so callers see one contract no
// matter which layer caught the conflict.
func translateWrite(err error, uniqueField, fkEntity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey) && uniqueField != "":
		return httperr.DuplicateField(uniqueField)
	case errors.Is(err, gorm.ErrForeignKeyViolated) && fkEntity != "":
		return httperr.EntityNotFound(fkEntity)
	default:
		return httperr.Storage(err)
	}
}

// ensureUnique / ensureExists are thin indirections kept so every service
// reads the same way.
func (a access) ensureUnique(model any, field, value, excludeID string) error {
	return guard.EnsureUnique(a.db, model, field, value, excludeID)
}

func (a access) ensureExists(model any, entity, id string) error {
	return guard.EnsureExists(a.db, model, entity, id)
}
