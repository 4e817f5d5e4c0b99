package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims for the HousesInBC platform.
type Claims struct {
	jwt.RegisteredClaims
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role constants
const (
	RoleAdmin   = "admin"
	RoleAdvisor = "advisor"
	RoleBuyer   = "buyer"
	RoleService = "service"
)
