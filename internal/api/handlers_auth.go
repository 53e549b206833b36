package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ranli8/fit8/internal/models"
	"github.com/ranli8/fit8/internal/services"
)

type pinPayload struct {
	PIN string `json:"pin"`
}

type changePINPayload struct {
	CurrentPIN string `json:"current_pin"`
	NewPIN     string `json:"new_pin"`
}

func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	requiresSetup, err := handler.authService.RequiresSetup()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "setup status check failed")
	}
	return c.JSON(fiber.Map{"requires_setup": requiresSetup})
}

func (handler *Handler) Setup(c *fiber.Ctx) error {
	payload := pinPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	owner, err := handler.authService.SetupPIN(payload.PIN)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPIN):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrOwnerExists):
			return apiError(c, fiber.StatusConflict, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "setup failed")
	}

	if err := handler.setAuthCookie(c, owner); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "issue token failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	payload := pinPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	owner, err := handler.authService.VerifyPIN(payload.PIN)
	if err != nil {
		if errors.Is(err, services.ErrWrongPIN) || errors.Is(err, services.ErrOwnerMissing) {
			return apiError(c, fiber.StatusUnauthorized, "wrong pin")
		}
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	if err := handler.setAuthCookie(c, owner); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "issue token failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ChangePIN(c *fiber.Ctx) error {
	payload := changePINPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.authService.ChangePIN(payload.CurrentPIN, payload.NewPIN); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPIN):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrWrongPIN):
			return apiError(c, fiber.StatusUnauthorized, "wrong pin")
		}
		return apiError(c, fiber.StatusInternalServerError, "change pin failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, owner models.Owner) error {
	token, err := handler.buildToken(owner)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(authTokenTTL),
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) buildToken(owner models.Owner) (string, error) {
	now := time.Now()
	claims := authClaims{
		OwnerID: owner.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(owner.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}
