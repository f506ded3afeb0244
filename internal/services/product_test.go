package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
)

func TestParsePrice(t *testing.T) {
	price, err := parsePrice("129.99")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("129.99")))

	var valErr *httperr.ValidationError

	_, err = parsePrice("not-a-number")
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "price", valErr.Field)

	_, err = parsePrice("-5")
	require.ErrorAs(t, err, &valErr)
}

func TestProductCreateWithImages(t *testing.T) {
	env := newTestEnv(t)
	staff, header := env.seedStaff(t, models.RoleOperator)
	category := env.seedCategory(t, "Electronics")

	files := [][]byte{[]byte("jpeg-one"), []byte("jpeg-two")}
	product, err := env.set.Product.Create(CreateProductInput{
		Name:       "Kettle",
		Price:      "49.90",
		CategoryID: category.ID,
	}, files, header)
	require.NoError(t, err)

	assert.Equal(t, staff.ID, product.StaffID)
	require.Len(t, product.Images, 2)
	for _, img := range product.Images {
		assert.Regexp(t, `^[A-Z]{3}[1-9][0-9]{4}\.jpg$`, img.FileName)
		assert.True(t, env.store.Exists(img.FileName))
	}
	assert.NotEqual(t, product.Images[0].FileName, product.Images[1].FileName)
}

func TestProductCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	_, header := env.seedStaff(t, models.RoleOperator)
	category := env.seedCategory(t, "Electronics")

	var valErr *httperr.ValidationError
	_, err := env.set.Product.Create(CreateProductInput{
		Name: "Kettle", Price: "cheap", CategoryID: category.ID,
	}, nil, header)
	require.ErrorAs(t, err, &valErr)

	var nfErr *httperr.NotFoundError
	_, err = env.set.Product.Create(CreateProductInput{
		Name: "Kettle", Price: "10", CategoryID: "missing",
	}, nil, header)
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Category", nfErr.Entity)
}

func TestProductRemoveDeletesImages(t *testing.T) {
	env := newTestEnv(t)
	_, header := env.seedStaff(t, models.RoleOperator)
	category := env.seedCategory(t, "Electronics")

	product, err := env.set.Product.Create(CreateProductInput{
		Name: "Kettle", Price: "49.90", CategoryID: category.ID,
	}, [][]byte{[]byte("jpeg-one")}, header)
	require.NoError(t, err)
	fileName := product.Images[0].FileName

	_, err = env.set.Product.Remove(product.ID, header)
	require.NoError(t, err)

	var images int64
	require.NoError(t, env.db.Model(&models.Image{}).Count(&images).Error)
	assert.Zero(t, images)
	assert.False(t, env.store.Exists(fileName))
}

func TestProductUpdate(t *testing.T) {
	env := newTestEnv(t)
	_, header := env.seedStaff(t, models.RoleOperator)
	category := env.seedCategory(t, "Electronics")
	other := env.seedCategory(t, "Kitchen")
	product := env.seedProduct(t, "Kettle", category.ID)

	newPrice := "59.90"
	updated, err := env.set.Product.Update(product.ID, UpdateProductInput{
		Price:      &newPrice,
		CategoryID: &other.ID,
	}, header)
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("59.90")))
	assert.Equal(t, other.ID, updated.CategoryID)

	missing := "missing"
	var nfErr *httperr.NotFoundError
	_, err = env.set.Product.Update(product.ID, UpdateProductInput{CategoryID: &missing}, header)
	require.ErrorAs(t, err, &nfErr)
}

func TestProductListPreloadsImages(t *testing.T) {
	env := newTestEnv(t)
	_, header := env.seedStaff(t, models.RoleOperator)
	category := env.seedCategory(t, "Electronics")

	_, err := env.set.Product.Create(CreateProductInput{
		Name: "Kettle", Price: "49.90", CategoryID: category.ID,
	}, [][]byte{[]byte("jpeg-one")}, header)
	require.NoError(t, err)

	records, meta, err := env.set.Product.List(1, header)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Len(t, records[0].Images, 1)
	assert.Equal(t, int64(1), meta.TotalCount)
}
