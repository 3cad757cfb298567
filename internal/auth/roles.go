package auth

import (
	"database/sql"
	"errors"

	"github.com/scenic-area/scenic-commerce-golang/internal/models"
)

// Role tags accepted by the login endpoint. The app client sends "user"
// for tourist accounts, so that is the wire value we keep.
const (
	RoleTourist  = "user"
	RoleMerchant = "merchant"
	RoleAdmin    = "admin"
)

// ErrAuthFailed is returned for every rejected login, whatever the
// actual cause (unknown role, no such account, wrong password). Callers
// must not surface anything more specific.
var ErrAuthFailed = errors.New("invalid account or password")

// Identity is the normalized shape of a successful login, independent
// of which table (if any) the account lives in.
type Identity struct {
	Role string `json:"role"`
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// roleChecker is one login strategy. Each role owns its own lookup and
// password comparison; the three account stores have different shapes.
type roleChecker interface {
	check(db *sql.DB, account, password string) (*Identity, error)
}

// Config holds the configuration-time admin credential. The admin has
// no account table; the pair comes from the environment.
type Config struct {
	AdminAccount  string
	AdminPassword string
}

// Authenticator dispatches a login attempt to the checker registered
// for the requested role.
type Authenticator struct {
	db       *sql.DB
	checkers map[string]roleChecker
}

func NewAuthenticator(db *sql.DB, cfg Config) *Authenticator {
	return &Authenticator{
		db: db,
		checkers: map[string]roleChecker{
			RoleTourist:  touristChecker{},
			RoleMerchant: merchantChecker{},
			RoleAdmin:    adminChecker{account: cfg.AdminAccount, password: cfg.AdminPassword},
		},
	}
}

// Authenticate verifies (account, password) against the store for the
// given role. It returns ErrAuthFailed for any unknown role or
// credential mismatch, and the underlying error on store failures.
func (a *Authenticator) Authenticate(role, account, password string) (*Identity, error) {
	checker, ok := a.checkers[role]
	if !ok {
		return nil, ErrAuthFailed
	}
	return checker.check(a.db, account, password)
}

// touristChecker matches the supplied account against either the phone
// number or the tourist id, the two ways the app identifies a tourist.
type touristChecker struct{}

func (touristChecker) check(db *sql.DB, account, password string) (*Identity, error) {
	var tourist models.Tourist
	query := "SELECT tourist_id, name, password FROM Tourist WHERE phone = ? OR tourist_id = ?"
	err := db.QueryRow(query, account, account).Scan(&tourist.ID, &tourist.Name, &tourist.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAuthFailed
		}
		return nil, err
	}

	// Plain string comparison, matching the stored credential format.
	if tourist.Password != password {
		return nil, ErrAuthFailed
	}

	return &Identity{Role: RoleTourist, ID: tourist.ID, Name: tourist.Name}, nil
}

// merchantChecker matches against the Shop login account.
type merchantChecker struct{}

func (merchantChecker) check(db *sql.DB, account, password string) (*Identity, error) {
	var shop models.Shop
	query := "SELECT shop_id, shop_name, password FROM Shop WHERE account = ?"
	err := db.QueryRow(query, account).Scan(&shop.ID, &shop.Name, &shop.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAuthFailed
		}
		return nil, err
	}

	if shop.Password != password {
		return nil, ErrAuthFailed
	}

	return &Identity{Role: RoleMerchant, ID: shop.ID, Name: shop.Name}, nil
}

// adminChecker compares against the configured credential pair without
// touching the store. The admin identity is fixed at id 0.
type adminChecker struct {
	account  string
	password string
}

func (c adminChecker) check(_ *sql.DB, account, password string) (*Identity, error) {
	if account != c.account || password != c.password {
		return nil, ErrAuthFailed
	}
	return &Identity{Role: RoleAdmin, ID: 0, Name: "Administrator"}, nil
}
