package services

import (
	"github.com/taskmanager-simple/apperrors"
	"github.com/taskmanager-simple/dto"
	"github.com/taskmanager-simple/models"
	"github.com/taskmanager-simple/repositories"
)

// ProjectService handles business logic for projects. Every operation takes
// the acting user's id and enforces ownership before touching anything.
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	taskRepo    *repositories.TaskRepository
	userRepo    *repositories.UserRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
		taskRepo:    repositories.NewTaskRepository(),
		userRepo:    repositories.NewUserRepository(),
	}
}

// CreateProject creates a project owned by the acting user
func (s *ProjectService) CreateProject(title, description, actorID string) (dto.ProjectResponse, error) {
	if err := validateTitle(title); err != nil {
		return dto.ProjectResponse{}, err
	}
	if err := validateDescription(description); err != nil {
		return dto.ProjectResponse{}, err
	}

	// Resolve the actor; a stale token may reference a user that no longer exists
	user, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return dto.ProjectResponse{}, classifyLookup(err, "user", actorID, "find user")
	}

	project := models.Project{
		Title:       title,
		Description: description,
		UserID:      user.ID,
	}

	project, err = s.projectRepo.Create(project)
	if err != nil {
		return dto.ProjectResponse{}, apperrors.NewStore("create project", err)
	}

	// A fresh project has no tasks yet
	return s.toResponse(project)
}

// ListProjects retrieves all projects owned by the acting user, each with
// its derived task statistics
func (s *ProjectService) ListProjects(actorID string) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindByUserID(actorID)
	if err != nil {
		return nil, apperrors.NewStore("list projects", err)
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		response, err := s.toResponse(project)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	return responses, nil
}

// GetProject retrieves a single project. Fetch first, then authorize: a
// missing project is NotFound, an existing one owned by someone else is
// an authorization failure.
func (s *ProjectService) GetProject(projectID, actorID string) (dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return dto.ProjectResponse{}, classifyLookup(err, "project", projectID, "find project")
	}

	if err := AssertOwnership(actorID, project, "project", projectID); err != nil {
		return dto.ProjectResponse{}, err
	}

	return s.toResponse(project)
}

// UpdateProject edits a project's title and description. The owner and the
// task list are untouched by updates.
func (s *ProjectService) UpdateProject(projectID, title, description, actorID string) (dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return dto.ProjectResponse{}, classifyLookup(err, "project", projectID, "find project")
	}

	if err := AssertOwnership(actorID, project, "project", projectID); err != nil {
		return dto.ProjectResponse{}, err
	}

	if err := validateTitle(title); err != nil {
		return dto.ProjectResponse{}, err
	}
	if err := validateDescription(description); err != nil {
		return dto.ProjectResponse{}, err
	}

	project.Title = title
	project.Description = description

	project, err = s.projectRepo.Update(project)
	if err != nil {
		return dto.ProjectResponse{}, apperrors.NewStore("update project", err)
	}

	return s.toResponse(project)
}

// DeleteProject removes a project and all of its tasks
func (s *ProjectService) DeleteProject(projectID, actorID string) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return classifyLookup(err, "project", projectID, "find project")
	}

	if err := AssertOwnership(actorID, project, "project", projectID); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return apperrors.NewStore("delete project", err)
	}

	return nil
}

// toResponse builds the response DTO with store-side task counts
func (s *ProjectService) toResponse(project models.Project) (dto.ProjectResponse, error) {
	total, completed, err := s.taskRepo.CountByProjectID(project.ID)
	if err != nil {
		return dto.ProjectResponse{}, apperrors.NewStore("count tasks", err)
	}

	return dto.ProjectResponse{
		ID:             project.ID,
		Title:          project.Title,
		Description:    project.Description,
		UserID:         project.UserID,
		TotalTasks:     total,
		CompletedTasks: completed,
		Progress:       models.ProgressPercentage(completed, total),
		CreatedAt:      project.CreatedAt,
		UpdatedAt:      project.UpdatedAt,
	}, nil
}
