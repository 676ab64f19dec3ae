package postgres

import (
	"testing"

	"hauspet/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the same error translation as production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.PetModel{},
		&model.SensorReadingModel{},
		&model.UserDeviceModel{},
		&model.HealthAlertModel{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()

	userM := &model.UserModel{Email: email, PasswordHash: "hash", Role: "user"}
	require.NoError(t, db.Create(userM).Error)

	return userM.ID
}

func seedPet(t *testing.T, db *gorm.DB, ownerID uint, name string) uint {
	t.Helper()

	petM := &model.PetModel{UserID: ownerID, Name: name, Species: "dog"}
	require.NoError(t, db.Create(petM).Error)

	return petM.ID
}
