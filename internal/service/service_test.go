package service

import (
	"testing"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Class{}, &model.Enrollment{}))
	return db
}

func seedInstructor(t *testing.T, db *gorm.DB, name, email string) {
	t.Helper()
	require.NoError(t, db.Create(&model.User{
		Name:  name,
		Email: email,
		Role:  model.RoleInstructor,
	}).Error)
}

func seedClass(t *testing.T, db *gorm.DB, name, instructorEmail, status string) uuid.UUID {
	t.Helper()
	class := model.Class{
		Name:            name,
		InstructorEmail: instructorEmail,
		Status:          status,
	}
	require.NoError(t, db.Create(&class).Error)
	return class.ID
}

func seedEnrollments(t *testing.T, db *gorm.DB, classID uuid.UUID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&model.Enrollment{
			UserEmail: "student@example.com",
			ClassID:   classID,
		}).Error)
	}
}
