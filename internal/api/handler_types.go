package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ranli8/fit8/internal/db"
	"github.com/ranli8/fit8/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName  = "fit8_token"
	contextOwnerKey = "owner_id"

	authTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories *db.Repositories

	authService        *services.AuthService
	recordService      *services.RecordService
	mealService        *services.MealService
	achievementService *services.AchievementService
	planService        *services.PlanService
	exportService      *services.ExportService
	unlockBus          *services.UnlockBus
}

type authClaims struct {
	OwnerID uint `json:"oid"`
	jwt.RegisteredClaims
}

// NewHandler wires the full dependency graph over one database handle.
func NewHandler(database *gorm.DB, secretKey string, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: false,
	}
	return handler.withDependencies(database)
}

// UnlockEvents hands out a fresh subscription to the unlock event bus.
func (handler *Handler) UnlockEvents() <-chan services.UnlockEvent {
	return handler.unlockBus.Subscribe()
}
