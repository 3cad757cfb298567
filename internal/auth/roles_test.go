package auth

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthenticator(t *testing.T) (*Authenticator, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	a := NewAuthenticator(db, Config{AdminAccount: "admin", AdminPassword: "123456"})
	return a, mock
}

func TestAuthenticate_TouristByID(t *testing.T) {
	a, mock := newTestAuthenticator(t)

	rows := sqlmock.NewRows([]string{"tourist_id", "name", "password"}).
		AddRow(7, "Li Hua", "pass123")
	mock.ExpectQuery("SELECT tourist_id, name, password FROM Tourist").
		WithArgs("7", "7").
		WillReturnRows(rows)

	identity, err := a.Authenticate(RoleTourist, "7", "pass123")

	require.NoError(t, err)
	assert.Equal(t, &Identity{Role: RoleTourist, ID: 7, Name: "Li Hua"}, identity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticate_TouristUnknownAccount(t *testing.T) {
	a, mock := newTestAuthenticator(t)

	mock.ExpectQuery("SELECT tourist_id, name, password FROM Tourist").
		WithArgs("nobody", "nobody").
		WillReturnRows(sqlmock.NewRows([]string{"tourist_id", "name", "password"}))

	_, err := a.Authenticate(RoleTourist, "nobody", "pass123")

	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticate_MerchantWrongPassword(t *testing.T) {
	a, mock := newTestAuthenticator(t)

	rows := sqlmock.NewRows([]string{"shop_id", "shop_name", "password"}).
		AddRow(5, "Summit Teahouse", "shop-pass")
	mock.ExpectQuery("SELECT shop_id, shop_name, password FROM Shop").
		WithArgs("teahouse").
		WillReturnRows(rows)

	_, err := a.Authenticate(RoleMerchant, "teahouse", "wrong")

	// Wrong password and unknown account are indistinguishable.
	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticate_Admin(t *testing.T) {
	a, mock := newTestAuthenticator(t)

	identity, err := a.Authenticate(RoleAdmin, "admin", "123456")

	require.NoError(t, err)
	assert.Equal(t, int64(0), identity.ID)
	assert.Equal(t, RoleAdmin, identity.Role)

	// Admin never hits the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticate_AdminMismatch(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	_, err := a.Authenticate(RoleAdmin, "admin", "wrong")
	assert.ErrorIs(t, err, ErrAuthFailed)

	_, err = a.Authenticate(RoleAdmin, "root", "123456")
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestAuthenticate_UnknownRole(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	_, err := a.Authenticate("superuser", "admin", "123456")
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestAuthenticate_StoreFailurePropagates(t *testing.T) {
	a, mock := newTestAuthenticator(t)

	storeErr := errors.New("Error 2006: MySQL server has gone away")
	mock.ExpectQuery("SELECT shop_id, shop_name, password FROM Shop").
		WithArgs("teahouse").
		WillReturnError(storeErr)

	_, err := a.Authenticate(RoleMerchant, "teahouse", "shop-pass")

	assert.NotErrorIs(t, err, ErrAuthFailed)
	assert.ErrorContains(t, err, "2006")
	assert.NoError(t, mock.ExpectationsWereMet())
}
