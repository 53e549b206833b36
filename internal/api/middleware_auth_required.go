package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var errInvalidToken = errors.New("invalid auth token")

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	ownerID, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	c.Locals(contextOwnerKey, ownerID)
	return c.Next()
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (uint, error) {
	raw := c.Cookies(authCookieName)
	if raw == "" {
		return 0, errInvalidToken
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errInvalidToken
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid || claims.OwnerID == 0 {
		return 0, errInvalidToken
	}
	return claims.OwnerID, nil
}
