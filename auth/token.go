package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"

	"github.com/golang-jwt/jwt/v5"
)

// DecodeError means a token string could not be read as a JWT payload.
// Callers treat it exactly like "not authenticated".
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decodeError: %s", e.Message)
}

func NewDecodeError(msg string) error {
	return &DecodeError{Message: msg}
}

// Claims is the payload the client reads out of a bearer token. The signature
// is NOT verified here; the backend is the authority and re-validates every
// privileged request. These claims drive UX only (which dashboard to show,
// which menus to render).
type Claims struct {
	Subject   string
	Email     string
	Role      models.Role
	ExpiresAt int64 // epoch seconds
}

// Expired reports whether the token is past its expiry at the given instant.
func (c *Claims) Expired(now time.Time) bool {
	return now.Unix() >= c.ExpiresAt
}

// DecodeToken reads the payload of a bearer token without verifying its
// signature. Role resolution order: explicit "role" claim, then the first
// entry of an "authorities" list, then the default role.
func DecodeToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(strings.TrimSpace(tokenString), jwt.MapClaims{})
	if err != nil {
		return nil, NewDecodeError("token is not a well-formed JWT: " + err.Error())
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, NewDecodeError("token payload is not a claims object")
	}

	claims := &Claims{Role: models.DefaultRole}

	if sub, ok := mapClaims["sub"].(string); ok {
		claims.Subject = sub
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}

	switch exp := mapClaims["exp"].(type) {
	case float64:
		claims.ExpiresAt = int64(exp)
	case int64:
		claims.ExpiresAt = exp
	default:
		return nil, NewDecodeError("token carries no usable 'exp' claim")
	}

	if role, ok := mapClaims["role"].(string); ok && role != "" {
		claims.Role = normalizeRole(role)
	} else if authorities, ok := mapClaims["authorities"].([]interface{}); ok && len(authorities) > 0 {
		if first, ok := authorities[0].(string); ok && first != "" {
			claims.Role = normalizeRole(first)
		}
	}

	return claims, nil
}

// normalizeRole maps backend authority strings ("ROLE_ADMIN", "admin") onto
// the client's role enum, falling back to the default role for strangers.
func normalizeRole(raw string) models.Role {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	cleaned = strings.TrimPrefix(cleaned, "ROLE_")
	role := models.Role(cleaned)
	if !role.Valid() {
		return models.DefaultRole
	}
	return role
}
