package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/auth"
	dbpkg "github.com/marketops/backoffice/internal/db"
	"github.com/marketops/backoffice/internal/logger"
	"github.com/marketops/backoffice/internal/models"
	"github.com/marketops/backoffice/internal/storage"
)

type testEnv struct {
	set    *Set
	db     *gorm.DB
	tokens *auth.TokenAuthority
	store  *storage.LocalStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(dbpkg.AllModels...))

	tokens := auth.NewTokenAuthority("test-access", "test-refresh", 15*time.Minute, time.Hour)

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	return &testEnv{
		set:    NewSet(db, logger.NewNop(), tokens, store),
		db:     db,
		tokens: tokens,
		store:  store,
	}
}

var staffSeq int

// seedStaff inserts a staff row and returns it with a valid bearer header.
func (e *testEnv) seedStaff(t *testing.T, role string) (*models.Staff, string) {
	t.Helper()

	staffSeq++
	staff := &models.Staff{
		ID:             uuid.NewString(),
		FullName:       fmt.Sprintf("Staff %d", staffSeq),
		PhoneNumber:    fmt.Sprintf("+1999000%04d", staffSeq),
		Role:           role,
		Login:          fmt.Sprintf("staff%d", staffSeq),
		HashedPassword: "unused",
		IsActive:       true,
	}
	require.NoError(t, e.db.Create(staff).Error)

	pair, err := e.tokens.Issue(staff)
	require.NoError(t, err)
	return staff, "Bearer " + pair.AccessToken
}

func (e *testEnv) seedRegion(t *testing.T, name string) *models.Region {
	t.Helper()
	region := &models.Region{ID: uuid.NewString(), Name: name}
	require.NoError(t, e.db.Create(region).Error)
	return region
}

func (e *testEnv) seedCity(t *testing.T, name, regionID string) *models.City {
	t.Helper()
	city := &models.City{ID: uuid.NewString(), Name: name, RegionID: regionID}
	require.NoError(t, e.db.Create(city).Error)
	return city
}

func (e *testEnv) seedCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{ID: uuid.NewString(), Name: name}
	require.NoError(t, e.db.Create(category).Error)
	return category
}

func (e *testEnv) seedProduct(t *testing.T, name, categoryID string) *models.Product {
	t.Helper()
	product := &models.Product{ID: uuid.NewString(), Name: name, CategoryID: categoryID}
	require.NoError(t, e.db.Omit("Images").Create(product).Error)
	return product
}

func (e *testEnv) seedContact(t *testing.T, phone, code string) *models.Contact {
	t.Helper()
	contact := &models.Contact{ID: uuid.NewString(), PhoneNumber: phone, UniqueID: code}
	require.NoError(t, e.db.Create(contact).Error)
	return contact
}
