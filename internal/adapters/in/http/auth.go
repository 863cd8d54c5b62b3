package http

import (
	"errors"
	"net/http"
	"strings"

	"titipin/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// principalContextKey is where the auth middleware stores the Principal on
// the echo context.
const principalContextKey = "principal"

// Principal is the authenticated caller extracted from the bearer token.
// Identity and role come from the identity provider; this service only
// verifies the signature and reads the claims.
type Principal struct {
	UserID kernel.UUID
	Role   kernel.Role
	Name   string
}

// Claims is the expected JWT payload.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// NewAuthMiddleware returns echo middleware that authenticates every request
// with a Bearer JWT signed with the shared HS256 secret. Requests without a
// valid token get 401 and never reach the handlers.
func NewAuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(ctx, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(ctx, "invalid authorization header")
			}

			principal, err := parseToken(strings.TrimSpace(parts[1]), secret)
			if err != nil {
				return unauthorized(ctx, "invalid token")
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// parseToken validates the token signature and translates the claims into a
// Principal. Any malformed claim fails the whole token.
func parseToken(tokenStr string, secret string) (Principal, error) {
	if secret == "" {
		return Principal{}, errors.New("jwt secret is empty")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return Principal{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Name == "" {
		return Principal{}, errors.New("invalid claims")
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return Principal{}, err
	}

	role, err := kernel.RoleFromString(claims.Role)
	if err != nil {
		return Principal{}, err
	}

	return Principal{UserID: userID, Role: role, Name: claims.Name}, nil
}

// principalFrom reads the Principal stored by the auth middleware.
func principalFrom(ctx echo.Context) (Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(Principal)
	return principal, ok
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
