package repositories

import (
	"strings"

	"github.com/taskmanager-simple/database"
	"github.com/taskmanager-simple/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct{}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// FindByID retrieves a task by its ID
func (r *TaskRepository) FindByID(id string) (models.Task, error) {
	var task models.Task
	result := database.DB.First(&task, "id = ?", id)
	return task, result.Error
}

// FindByProjectID retrieves all tasks of a project, in creation order
func (r *TaskRepository) FindByProjectID(projectID string) ([]models.Task, error) {
	var tasks []models.Task
	result := database.DB.Where("project_id = ?", projectID).Order("created_at, id").Find(&tasks)
	return tasks, result.Error
}

// Create inserts a new task into the database
func (r *TaskRepository) Create(task models.Task) (models.Task, error) {
	result := database.DB.Create(&task)
	return task, result.Error
}

// Update modifies an existing task
func (r *TaskRepository) Update(task models.Task) (models.Task, error) {
	result := database.DB.Save(&task)
	return task, result.Error
}

// Delete removes a task from the database
func (r *TaskRepository) Delete(id string) error {
	return database.DB.Delete(&models.Task{}, "id = ?", id).Error
}

// CountByProjectID returns the total and completed task counts of a project.
// Counting store-side keeps progress consistent without loading the task
// collection.
func (r *TaskRepository) CountByProjectID(projectID string) (total int64, completed int64, err error) {
	err = database.DB.Model(&models.Task{}).Where("project_id = ?", projectID).Count(&total).Error
	if err != nil {
		return 0, 0, err
	}
	err = database.DB.Model(&models.Task{}).
		Where("project_id = ? AND status = ?", projectID, models.TaskStatusDone).
		Count(&completed).Error
	if err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

// FindWithFilters retrieves tasks of a project with optional status and
// title filters, paginated with 0-indexed pages. The title filter is a
// case-insensitive substring match. Both filters combine with AND. The total
// count is taken with the same filter chain so callers can derive the number
// of pages.
func (r *TaskRepository) FindWithFilters(
	projectID string,
	status *models.TaskStatus,
	title string,
	page, pageSize int) ([]models.Task, int64, error) {

	var tasks []models.Task
	var totalCount int64

	db := database.DB.Model(&models.Task{}).Where("project_id = ?", projectID)

	if status != nil {
		db = db.Where("status = ?", *status)
	}

	if title != "" {
		searchPattern := "%" + strings.ToLower(title) + "%"
		db = db.Where("LOWER(title) LIKE ?", searchPattern)
	}

	// Count total records (with the same filters)
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := page * pageSize

	// Stable for a given snapshot: created_at with id as tiebreak
	if err := db.Order("created_at, id").Limit(pageSize).Offset(offset).Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, totalCount, nil
}
