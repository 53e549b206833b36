package cli

import (
	"errors"
	"fmt"

	"github.com/ranli8/fit8/internal/db"
	"github.com/ranli8/fit8/internal/security"
	"golang.org/x/crypto/bcrypt"
)

// RunResetPINCommand replaces the owner PIN with a freshly generated
// temporary one and prints it. For when the owner is locked out of the
// local API.
func RunResetPINCommand(dbPath string) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	owners := db.NewOwnerRepository(database)
	owner, found, err := owners.First()
	if err != nil {
		return fmt.Errorf("load owner: %w", err)
	}
	if !found {
		return errors.New("no owner set up yet; use the setup endpoint instead")
	}

	temporaryPIN, err := security.RandomDigits(6)
	if err != nil {
		return fmt.Errorf("generate temporary pin: %w", err)
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPIN), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary pin: %w", err)
	}

	owner.PINHash = string(pinHash)
	if err := owners.Save(&owner); err != nil {
		return fmt.Errorf("update owner pin: %w", err)
	}

	fmt.Println("PIN reset successful")
	fmt.Printf("Temporary PIN: %s\n", temporaryPIN)
	fmt.Println("Change it from the settings endpoint after logging in.")

	return nil
}

// RunClearDataCommand wipes all tracked data: daily records, meals,
// achievements and the stats row. Catalog, plans and stats reseed on the
// next start. Refuses to run without the explicit confirmation flag.
func RunClearDataCommand(dbPath string, confirmed bool) error {
	if !confirmed {
		return errors.New("refusing to clear data without --yes")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	if err := repositories.DailyRecords.DeleteAll(); err != nil {
		return fmt.Errorf("clear daily records: %w", err)
	}
	if err := repositories.Meals.DeleteAll(); err != nil {
		return fmt.Errorf("clear meal records: %w", err)
	}
	if err := repositories.Achievements.DeleteAll(); err != nil {
		return fmt.Errorf("clear achievements: %w", err)
	}
	if err := repositories.Stats.DeleteAll(); err != nil {
		return fmt.Errorf("clear user stats: %w", err)
	}

	fmt.Println("All tracked data cleared.")
	return nil
}
