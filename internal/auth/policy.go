package auth

import (
	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
)

type Entity string

const (
	EntityStaff    Entity = "Staff"
	EntityRegion   Entity = "Region"
	EntityCity     Entity = "City"
	EntityCategory Entity = "Category"
	EntityProduct  Entity = "Product"
	EntityImage    Entity = "Image"
	EntityContact  Entity = "Contact"
	EntityOrder    Entity = "Order"
)

type Operation string

const (
	OpCreate  Operation = "create"
	OpUpdate  Operation = "update"
	OpDelete  Operation = "delete"
	OpListAll Operation = "listAll"
)

// policy is the single source of truth for which roles may perform write
// operations on each entity. Reads of non-staff entities need only a valid
// token and are not listed here; staff reads are gated separately because
// they also require a live row check.
var policy = map[Entity]map[Operation][]string{
	EntityStaff: {
		OpUpdate:  {models.RoleSuperAdmin},
		OpDelete:  {models.RoleSuperAdmin},
		OpListAll: {models.RoleSuperAdmin},
	},
	EntityRegion: {
		OpCreate: {models.RoleSuperAdmin, models.RoleAdmin},
		OpUpdate: {models.RoleSuperAdmin, models.RoleAdmin},
		OpDelete: {models.RoleSuperAdmin, models.RoleAdmin},
	},
	EntityCity: {
		OpCreate: {models.RoleSuperAdmin, models.RoleAdmin},
		OpUpdate: {models.RoleSuperAdmin, models.RoleAdmin},
		OpDelete: {models.RoleSuperAdmin, models.RoleAdmin},
	},
	EntityCategory: {
		OpCreate: {models.RoleSuperAdmin, models.RoleAdmin},
		OpUpdate: {models.RoleSuperAdmin, models.RoleAdmin},
		OpDelete: {models.RoleSuperAdmin, models.RoleAdmin},
	},
	EntityProduct: {
		OpCreate: {models.RoleSuperAdmin, models.RoleAdmin, models.RoleOperator},
		OpUpdate: {models.RoleSuperAdmin, models.RoleAdmin, models.RoleOperator},
		OpDelete: {models.RoleSuperAdmin, models.RoleAdmin, models.RoleOperator},
	},
	EntityContact: {
		OpCreate: {models.RoleSuperAdmin, models.RoleOperator},
		OpUpdate: {models.RoleSuperAdmin, models.RoleOperator},
		OpDelete: {models.RoleSuperAdmin, models.RoleOperator},
	},
	EntityOrder: {
		OpCreate: {models.RoleSuperAdmin, models.RoleAdmin, models.RoleOperator},
		OpUpdate: {models.RoleSuperAdmin, models.RoleAdmin, models.RoleOperator},
		OpDelete: {models.RoleSuperAdmin, models.RoleAdmin, models.RoleOperator},
	},
}

// Authorize consults the policy table. An entity/operation pair without an
// entry denies every role, so a missing table row fails closed.
func Authorize(entity Entity, op Operation, role string) error {
	for _, allowed := range policy[entity][op] {
		if allowed == role {
			return nil
		}
	}
	return httperr.RoleNotPermitted(role)
}
