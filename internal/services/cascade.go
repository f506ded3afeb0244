package services

import (
	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/auth"
	"github.com/marketops/backoffice/internal/httperr"
)

type edgePolicy int

const (
	// policyCascade removes dependent rows through their own remove, so
	// nested side effects (image file cleanup) run at every level.
	policyCascade edgePolicy = iota
	// policyDetach leaves dependents in place with a dangling reference.
	policyDetach
)

// removeFunc is an entity's transactional remove. It must only touch rows
// through tx so the whole cascade commits or rolls back as a unit.
type removeFunc func(tx *gorm.DB, id string, rm *removed) error

type edge struct {
	child  auth.Entity
	table  string
	fk     string
	policy edgePolicy
	remove removeFunc
}

// removed accumulates side effects that cannot join the transaction. Backing
// files are unlinked only after a successful commit.
type removed struct {
	files []string
}

type cascade struct {
	edges map[auth.Entity][]edge
}

func newCascade() *cascade {
	return &cascade{edges: make(map[auth.Entity][]edge)}
}

func (c *cascade) register(parent auth.Entity, e edge) {
	c.edges[parent] = append(c.edges[parent], e)
}

// deleteDependents walks the declared edges of parent and removes every
// cascade-policy dependent inside tx, recursing through each dependent's own
// remove before the caller deletes the parent row.
func (c *cascade) deleteDependents(tx *gorm.DB, parent auth.Entity, parentID string, rm *removed) error {
	for _, e := range c.edges[parent] {
		if e.policy != policyCascade {
			continue
		}
		var ids []string
		if err := tx.Table(e.table).Where(e.fk+" = ?", parentID).Pluck("id", &ids).Error; err != nil {
			return httperr.Storage(err)
		}
		for _, id := range ids {
			if err := e.remove(tx, id, rm); err != nil {
				return err
			}
		}
	}
	return nil
}
