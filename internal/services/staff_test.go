package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
)

func signupInput(login, phone string) CreateStaffInput {
	return CreateStaffInput{
		FullName:    "Jordan Miles",
		PhoneNumber: phone,
		Card:        "8600123412341234",
		Role:        models.RoleOperator,
		Login:       login,
		Password:    "s3cret-pass",
	}
}

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.set.Staff.Signup(signupInput("jordan", "+15550001"))
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, models.RoleOperator, result.Staff.Role)
	assert.True(t, result.Staff.IsActive)

	var row models.Staff
	require.NoError(t, env.db.Where("login = ?", "jordan").First(&row).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(row.HashedPassword), []byte("s3cret-pass")))
	assert.NotEqual(t, "s3cret-pass", row.HashedPassword)
	assert.NotEmpty(t, row.HashedRefreshToken)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	in := signupInput("jordan", "+15550001")
	in.Role = "MANAGER"

	var valErr *httperr.ValidationError
	_, err := env.set.Staff.Signup(in)
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "invalid_enum_value", valErr.Code)
}

func TestSignupRejectsDuplicates(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.set.Staff.Signup(signupInput("jordan", "+15550001"))
	require.NoError(t, err)

	var valErr *httperr.ValidationError

	_, err = env.set.Staff.Signup(signupInput("jordan", "+15550002"))
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "login", valErr.Field)

	_, err = env.set.Staff.Signup(signupInput("casey", "+15550001"))
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "phone_number", valErr.Field)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.set.Staff.Signup(signupInput("jordan", "+15550001"))
	require.NoError(t, err)

	result, err := env.set.Staff.Login(LoginStaffInput{Login: "jordan", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	var authErr *httperr.AuthError

	_, err = env.set.Staff.Login(LoginStaffInput{Login: "jordan", Password: "wrong"})
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid_credentials", authErr.Code)

	_, err = env.set.Staff.Login(LoginStaffInput{Login: "nobody", Password: "s3cret-pass"})
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid_credentials", authErr.Code)
}

func TestLoginRefusesInactive(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.set.Staff.Signup(signupInput("jordan", "+15550001"))
	require.NoError(t, err)
	require.NoError(t, env.db.Model(&models.Staff{}).Where("login = ?", "jordan").
		Update("is_active", false).Error)

	var authErr *httperr.AuthError
	_, err = env.set.Staff.Login(LoginStaffInput{Login: "jordan", Password: "s3cret-pass"})
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "staff_inactive", authErr.Code)
}

func TestStaffListRequiresSuperAdmin(t *testing.T) {
	env := newTestEnv(t)
	_, adminHeader := env.seedStaff(t, models.RoleAdmin)
	_, superHeader := env.seedStaff(t, models.RoleSuperAdmin)

	var authzErr *httperr.AuthzError
	_, _, err := env.set.Staff.List(1, adminHeader)
	require.ErrorAs(t, err, &authzErr)

	records, meta, err := env.set.Staff.List(1, superHeader)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, int64(2), meta.TotalCount)
	assert.Equal(t, 1, meta.CurrentPage)
}

func TestStaffListRefusesDeletedCaller(t *testing.T) {
	env := newTestEnv(t)
	caller, header := env.seedStaff(t, models.RoleSuperAdmin)

	require.NoError(t, env.db.Where("id = ?", caller.ID).Delete(&models.Staff{}).Error)

	// The token is still valid, but the row behind it is gone.
	var nfErr *httperr.NotFoundError
	_, _, err := env.set.Staff.List(1, header)
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Staff", nfErr.Entity)
}

func TestStaffUpdate(t *testing.T) {
	env := newTestEnv(t)
	target, _ := env.seedStaff(t, models.RoleOperator)
	_, superHeader := env.seedStaff(t, models.RoleSuperAdmin)

	newLogin := "renamed"
	updated, err := env.set.Staff.Update(target.ID, UpdateStaffInput{Login: &newLogin}, superHeader)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Login)

	// Re-submitting the current value is not a duplicate of itself.
	_, err = env.set.Staff.Update(target.ID, UpdateStaffInput{Login: &newLogin}, superHeader)
	assert.NoError(t, err)

	badRole := "MANAGER"
	var valErr *httperr.ValidationError
	_, err = env.set.Staff.Update(target.ID, UpdateStaffInput{Role: &badRole}, superHeader)
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "invalid_enum_value", valErr.Code)
}

func TestStaffActivate(t *testing.T) {
	env := newTestEnv(t)
	target, _ := env.seedStaff(t, models.RoleOperator)
	_, superHeader := env.seedStaff(t, models.RoleSuperAdmin)

	off := false
	updated, err := env.set.Staff.Activate(ActivateStaffInput{ID: target.ID, IsActive: &off}, superHeader)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	on := true
	updated, err = env.set.Staff.Activate(ActivateStaffInput{ID: target.ID, IsActive: &on}, superHeader)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestStaffRemoveDetachesOwnedRows(t *testing.T) {
	env := newTestEnv(t)
	target, _ := env.seedStaff(t, models.RoleOperator)
	_, superHeader := env.seedStaff(t, models.RoleSuperAdmin)

	contact := env.seedContact(t, "+15551111", "AB1234")
	require.NoError(t, env.db.Model(contact).Update("staff_id", target.ID).Error)

	_, err := env.set.Staff.Remove(target.ID, superHeader)
	require.NoError(t, err)

	// The contact survives with its original staff reference.
	var kept models.Contact
	require.NoError(t, env.db.Where("id = ?", contact.ID).First(&kept).Error)
	assert.Equal(t, target.ID, kept.StaffID)
}
