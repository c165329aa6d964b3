package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/taskmanager-simple/database"
	"github.com/taskmanager-simple/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the shared database handle at a fresh in-memory sqlite
// database. Each test gets its own named database so tests cannot see each
// other's rows.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{}))

	database.DB = db
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
}

func createUser(t *testing.T, email string) models.User {
	t.Helper()

	user := models.User{Email: email, Password: "hashed-password"}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createProject(t *testing.T, userID, title string) models.Project {
	t.Helper()

	project := models.Project{Title: title, UserID: userID}
	require.NoError(t, database.DB.Create(&project).Error)
	return project
}

func createTask(t *testing.T, projectID, title string, status models.TaskStatus) models.Task {
	t.Helper()

	task := models.Task{Title: title, Status: status, ProjectID: projectID}
	require.NoError(t, database.DB.Create(&task).Error)
	return task
}

func taskCount(t *testing.T) int64 {
	t.Helper()

	var count int64
	require.NoError(t, database.DB.Model(&models.Task{}).Count(&count).Error)
	return count
}

func futureDate(t *testing.T) *time.Time {
	t.Helper()

	due := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	return &due
}
