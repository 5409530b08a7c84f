package jwt

import "github.com/golang-jwt/jwt/v5"

// APIClaims are the bearer token claims accepted by the query API.
type APIClaims struct {
	jwt.RegisteredClaims
	Club string `json:"club"`
	Role string `json:"role"`
}

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
)
