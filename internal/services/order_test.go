package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
)

// seedOrderRefs creates the product, city and contact an order points at.
func seedOrderRefs(t *testing.T, env *testEnv) (product *models.Product, city *models.City, contact *models.Contact) {
	t.Helper()
	category := env.seedCategory(t, "Electronics")
	product = env.seedProduct(t, "Kettle", category.ID)
	region := env.seedRegion(t, "North")
	city = env.seedCity(t, "Springfield", region.ID)
	contact = env.seedContact(t, "+15551234", "AB1234")
	return
}

func TestOrderCreate(t *testing.T) {
	env := newTestEnv(t)
	staff, header := env.seedStaff(t, models.RoleOperator)
	product, city, contact := seedOrderRefs(t, env)

	order, err := env.set.Order.Create(CreateOrderInput{
		FullName:  "Casey Buyer",
		Address:   "12 Main St",
		Status:    models.OrderStatusAccepted,
		ProductID: product.ID,
		CityID:    city.ID,
		ContactID: contact.ID,
	}, header)
	require.NoError(t, err)

	assert.Equal(t, staff.ID, order.StaffID)
	assert.Equal(t, models.OrderStatusAccepted, order.Status)
}

func TestOrderCreateChecksReferences(t *testing.T) {
	env := newTestEnv(t)
	_, header := env.seedStaff(t, models.RoleOperator)
	product, city, contact := seedOrderRefs(t, env)

	var nfErr *httperr.NotFoundError

	_, err := env.set.Order.Create(CreateOrderInput{
		FullName: "Casey", ProductID: "missing", CityID: city.ID, ContactID: contact.ID,
	}, header)
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Product", nfErr.Entity)

	_, err = env.set.Order.Create(CreateOrderInput{
		FullName: "Casey", ProductID: product.ID, CityID: "missing", ContactID: contact.ID,
	}, header)
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "City", nfErr.Entity)

	_, err = env.set.Order.Create(CreateOrderInput{
		FullName: "Casey", ProductID: product.ID, CityID: city.ID, ContactID: "missing",
	}, header)
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Contact", nfErr.Entity)
}

func TestOrderStatusEnum(t *testing.T) {
	env := newTestEnv(t)
	_, header := env.seedStaff(t, models.RoleOperator)
	product, city, contact := seedOrderRefs(t, env)

	var valErr *httperr.ValidationError
	_, err := env.set.Order.Create(CreateOrderInput{
		FullName:  "Casey",
		Status:    "pending",
		ProductID: product.ID,
		CityID:    city.ID,
		ContactID: contact.ID,
	}, header)
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "invalid_enum_value", valErr.Code)

	order, err := env.set.Order.Create(CreateOrderInput{
		FullName:  "Casey",
		Status:    models.OrderStatusOrdered,
		ProductID: product.ID,
		CityID:    city.ID,
		ContactID: contact.ID,
	}, header)
	require.NoError(t, err)

	bad := "shipped"
	_, err = env.set.Order.Update(order.ID, UpdateOrderInput{Status: &bad}, header)
	require.ErrorAs(t, err, &valErr)

	good := models.OrderStatusForceMajor
	updated, err := env.set.Order.Update(order.ID, UpdateOrderInput{Status: &good}, header)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusForceMajor, updated.Status)
}

func TestOrderSurvivesReferenceRemoval(t *testing.T) {
	env := newTestEnv(t)
	_, header := env.seedStaff(t, models.RoleSuperAdmin)
	product, city, contact := seedOrderRefs(t, env)

	order, err := env.set.Order.Create(CreateOrderInput{
		FullName:  "Casey",
		ProductID: product.ID,
		CityID:    city.ID,
		ContactID: contact.ID,
	}, header)
	require.NoError(t, err)

	_, err = env.set.Contact.Remove(contact.ID, header)
	require.NoError(t, err)
	_, err = env.set.Product.Remove(product.ID, header)
	require.NoError(t, err)

	// The order still reads back with its original references intact.
	kept, err := env.set.Order.Get(order.ID, header)
	require.NoError(t, err)
	assert.Equal(t, product.ID, kept.ProductID)
	assert.Equal(t, contact.ID, kept.ContactID)
}
