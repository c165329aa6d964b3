package services

import (
	"time"

	"github.com/taskmanager-simple/apperrors"
	"github.com/taskmanager-simple/dto"
	"github.com/taskmanager-simple/models"
	"github.com/taskmanager-simple/repositories"
)

// TaskService handles business logic for tasks. A task has no user of its
// own: every check goes through the parent project's owner.
type TaskService struct {
	taskRepo    *repositories.TaskRepository
	projectRepo *repositories.ProjectRepository
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{
		taskRepo:    repositories.NewTaskRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// CreateTask creates a task in TODO status under an existing project the
// acting user owns. Validation runs before anything is resolved or
// persisted.
func (s *TaskService) CreateTask(title, description string, dueDate *time.Time, projectID, actorID string) (models.Task, error) {
	if err := validateTitle(title); err != nil {
		return models.Task{}, err
	}
	if err := validateDescription(description); err != nil {
		return models.Task{}, err
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Task{}, classifyLookup(err, "project", projectID, "find project")
	}

	if err := AssertOwnership(actorID, project, "project", projectID); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      models.TaskStatusTodo,
		ProjectID:   project.ID,
	}

	task, err = s.taskRepo.Create(task)
	if err != nil {
		return models.Task{}, apperrors.NewStore("create task", err)
	}

	return task, nil
}

// ListTasks runs the filtered, paginated query over a project's tasks. The
// project is resolved and authorized first: a query against someone else's
// project fails closed instead of returning an empty page.
func (s *TaskService) ListTasks(filter dto.TaskFilter, actorID string) (dto.TaskListResponse, error) {
	var response dto.TaskListResponse

	// Set defaults if not provided
	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	project, err := s.projectRepo.FindByID(filter.ProjectID)
	if err != nil {
		return response, classifyLookup(err, "project", filter.ProjectID, "find project")
	}

	if err := AssertOwnership(actorID, project, "project", filter.ProjectID); err != nil {
		return response, err
	}

	tasks, totalCount, err := s.taskRepo.FindWithFilters(
		filter.ProjectID,
		filter.Status,
		filter.Title,
		filter.Page,
		filter.PageSize,
	)
	if err != nil {
		return response, apperrors.NewStore("list tasks", err)
	}

	// Calculate total pages
	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	items := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, toTaskResponse(task))
	}

	response = dto.TaskListResponse{
		Tasks:      items,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// CompleteTask transitions a task to DONE. Completing an already completed
// task is not an error: the transition is one-way and idempotent.
func (s *TaskService) CompleteTask(taskID, actorID string) (models.Task, error) {
	task, project, err := s.resolveTask(taskID)
	if err != nil {
		return models.Task{}, err
	}

	if err := AssertOwnership(actorID, project, "task", taskID); err != nil {
		return models.Task{}, err
	}

	task.MarkCompleted()

	task, err = s.taskRepo.Update(task)
	if err != nil {
		return models.Task{}, apperrors.NewStore("complete task", err)
	}

	return task, nil
}

// DeleteTask removes a single task
func (s *TaskService) DeleteTask(taskID, actorID string) error {
	task, project, err := s.resolveTask(taskID)
	if err != nil {
		return err
	}

	if err := AssertOwnership(actorID, project, "task", taskID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return apperrors.NewStore("delete task", err)
	}

	return nil
}

// resolveTask fetches a task together with its parent project, which carries
// the owner the guard compares against
func (s *TaskService) resolveTask(taskID string) (models.Task, models.Project, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return models.Task{}, models.Project{}, classifyLookup(err, "task", taskID, "find task")
	}

	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return models.Task{}, models.Project{}, classifyLookup(err, "project", task.ProjectID, "find project")
	}

	return task, project, nil
}

// toTaskResponse maps a task model to its response DTO
func toTaskResponse(task models.Task) dto.TaskResponse {
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
