// Package identity resolves user accounts and verifies credentials. It is the
// seam behind which a real user database and hash scheme can be swapped in
// without touching the session or authorization code.
package identity

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrNotFound indicates no account exists for the requested username.
var ErrNotFound = errors.New("identity: user not found")

// User is an authenticated account holder together with the organizations
// they belong to.
type User struct {
	ID              string
	Username        string
	Email           string
	Name            string
	Password        string
	OrganizationIDs []string
}

// MemberOf reports whether the user belongs to the given organization.
func (u User) MemberOf(orgID string) bool {
	for _, id := range u.OrganizationIDs {
		if id == orgID {
			return true
		}
	}
	return false
}

// Directory looks up accounts by username.
type Directory interface {
	FindByUsername(ctx context.Context, username string) (User, error)
}

// Verifier compares a supplied password against the stored credential.
type Verifier interface {
	Verify(user User, supplied string) bool
}

// PlaintextVerifier compares passwords byte-for-byte. Development-only
// placeholder: the seeded directory stores plain passwords. Production swaps
// in BcryptVerifier without touching callers.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(user User, supplied string) bool {
	if user.Password == "" || supplied == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(user.Password), []byte(supplied)) == 1
}

// BcryptVerifier treats the stored credential as a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(user User, supplied string) bool {
	if user.Password == "" || supplied == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(supplied)) == nil
}

// HashPassword hashes a plaintext password for storage alongside BcryptVerifier.
func HashPassword(password string) (string, error) {
	if len(password) == 0 {
		return "", errors.New("identity: password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// MemoryDirectory serves a fixed set of accounts.
type MemoryDirectory struct {
	users []User
}

// NewMemoryDirectory copies the given accounts into a read-only directory.
func NewMemoryDirectory(users []User) *MemoryDirectory {
	out := make([]User, len(users))
	copy(out, users)
	return &MemoryDirectory{users: out}
}

func (d *MemoryDirectory) FindByUsername(ctx context.Context, username string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, ErrNotFound
	}
	for _, u := range d.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// SeedUsers returns the development accounts. Plaintext passwords, dev only.
func SeedUsers() []User {
	return []User{
		{
			ID: "1", Username: "admin", Email: "admin@veteranapp.com",
			Password: "admin123", Name: "Admin User",
			OrganizationIDs: []string{"org1", "org2", "org3"},
		},
		{
			ID: "2", Username: "johndoe", Email: "john.doe@example.com",
			Password: "password123", Name: "John Doe",
			OrganizationIDs: []string{"org1", "org2"},
		},
		{
			ID: "3", Username: "janedoe", Email: "jane.doe@example.com",
			Password: "password123", Name: "Jane Doe",
			OrganizationIDs: []string{"org1"},
		},
	}
}
