// Package guard holds the pre-write validation checks: field uniqueness and
// foreign-key existence. Both are fast-fail optimizations that produce
// precise errors before a write is attempted; the database constraints
// remain the final arbiter under concurrency.
package guard

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/httperr"
)

// EnsureUnique fails with DuplicateField when another row of model already
// holds value in field. excludeID lets an update keep its own current value.
func EnsureUnique(tx *gorm.DB, model any, field, value, excludeID string) error {
	q := tx.Model(model).Where(fmt.Sprintf("%s = ?", field), value)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return httperr.Storage(err)
	}
	if count > 0 {
		return httperr.DuplicateField(field)
	}
	return nil
}

// EnsureExists fails with EntityNotFound when no row of model has the given
// id. Invoked once per foreign key present in a write.
func EnsureExists(tx *gorm.DB, model any, entity, id string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return httperr.Storage(err)
	}
	if count == 0 {
		return httperr.EntityNotFound(entity)
	}
	return nil
}
