package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskmanager-simple/dto"
	"github.com/taskmanager-simple/services"
)

var projectService = services.NewProjectService()

// ListProjects godoc
// @Summary List the authenticated user's projects
// @Description Get all projects owned by the authenticated user, with task statistics
// @Tags projects
// @Accept json
// @Produce json
// @Success 200 {array} dto.ProjectResponse
// @Router /projects [get]
func ListProjects(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	projects, err := projectService.ListProjects(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projects,
	})
}

// GetProject godoc
// @Summary Get a project by ID
// @Description Get details of a project by ID, with task statistics
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Router /projects/{id} [get]
func GetProject(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	// Get project ID from URL
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	project, err := projectService.GetProject(projectID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject godoc
// @Summary Create a new project
// @Description Create a new project for the authenticated user
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project Data"
// @Success 201 {object} dto.ProjectResponse
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	// Parse request body to DTO first
	var projectDTO dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&projectDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := projectService.CreateProject(projectDTO.Title, projectDTO.Description, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProject godoc
// @Summary Update an existing project
// @Description Update a project's title and description
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Project Data"
// @Success 200 {object} dto.ProjectResponse
// @Router /projects/{id} [put]
func UpdateProject(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	// Get project ID from URL
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	// Parse request body to DTO
	var projectDTO dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&projectDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := projectService.UpdateProject(projectID, projectDTO.Title, projectDTO.Description, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Delete a project and all of its tasks
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Router /projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	// Get project ID from URL
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	err := projectService.DeleteProject(projectID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}
