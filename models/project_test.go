package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskmanager-simple/models"
)

func Test_ProgressPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		total     int64
		want      int
	}{
		{name: "no_tasks_is_zero_not_an_error", completed: 0, total: 0, want: 0},
		{name: "none_done", completed: 0, total: 4, want: 0},
		{name: "half_done", completed: 1, total: 2, want: 50},
		{name: "floors_the_fraction", completed: 2, total: 3, want: 66},
		{name: "all_done", completed: 3, total: 3, want: 100},
		{name: "single_of_many", completed: 1, total: 7, want: 14},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, models.ProgressPercentage(tc.completed, tc.total))
		})
	}
}

func Test_TaskStatusTransitions(t *testing.T) {
	task := models.Task{Status: models.TaskStatusTodo}
	assert.False(t, task.IsCompleted())

	task.MarkCompleted()
	assert.True(t, task.IsCompleted())

	// DONE is terminal; completing again changes nothing
	task.MarkCompleted()
	assert.Equal(t, models.TaskStatusDone, task.Status)
}

func Test_TaskStatusIsValid(t *testing.T) {
	assert.True(t, models.TaskStatusTodo.IsValid())
	assert.True(t, models.TaskStatusDone.IsValid())
	assert.False(t, models.TaskStatus("IN_PROGRESS").IsValid())
}
