package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskmanager-simple/dto"
	"github.com/taskmanager-simple/models"
	"github.com/taskmanager-simple/services"
)

var taskService = services.NewTaskService()

// CreateTask godoc
// @Summary Create a new task
// @Description Create a task under a project the authenticated user owns
// @Tags tasks
// @Accept json
// @Produce json
// @Param projectId query string true "Parent project ID"
// @Param task body dto.CreateTaskRequest true "Task Data"
// @Success 201 {object} dto.TaskResponse
// @Router /tasks [post]
func CreateTask(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	projectID := c.Query("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "projectId is required"})
		return
	}

	// Parse request body to DTO first
	var taskDTO dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&taskDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	task, err := taskService.CreateTask(taskDTO.Title, taskDTO.Description, taskDTO.DueDate, projectID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   taskResponse(task),
	})
}

// ListTasks godoc
// @Summary List tasks with pagination and filtering
// @Description Get a page of a project's tasks, optionally filtered by status and title substring
// @Tags tasks
// @Accept json
// @Produce json
// @Param projectId query string true "Parent project ID"
// @Param status query string false "Task status (TODO or DONE)"
// @Param title query string false "Case-insensitive title substring"
// @Param page query int false "Page number (0-indexed)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.TaskListResponse
// @Router /tasks [get]
func ListTasks(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	projectID := c.Query("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "projectId is required"})
		return
	}

	// Parse query parameters
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	// Optional status filter
	var status *models.TaskStatus
	if statusParam := c.Query("status"); statusParam != "" {
		parsed := models.TaskStatus(strings.ToUpper(statusParam))
		if !parsed.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "status must be TODO or DONE",
			})
			return
		}
		status = &parsed
	}

	// Build filter
	filter := dto.TaskFilter{
		ProjectID: projectID,
		Status:    status,
		Title:     c.Query("title"),
		Page:      page,
		PageSize:  pageSize,
	}

	// Call service
	response, err := taskService.ListTasks(filter, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// CompleteTask godoc
// @Summary Complete a task
// @Description Transition a task to DONE; completing a DONE task is a no-op
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Router /tasks/{id}/complete [patch]
func CompleteTask(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Task ID is required"})
		return
	}

	task, err := taskService.CompleteTask(taskID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   taskResponse(task),
	})
}

// DeleteTask godoc
// @Summary Delete a task
// @Description Delete a single task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} map[string]interface{}
// @Router /tasks/{id} [delete]
func DeleteTask(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Task ID is required"})
		return
	}

	if err := taskService.DeleteTask(taskID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Task deleted successfully",
	})
}

// taskResponse maps a task model to its response DTO
func taskResponse(task models.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      task.Status,
		ProjectID:   task.ProjectID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
