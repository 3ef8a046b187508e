package service

import (
	"context"
	"fmt"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
	"github.com/phoneix12356/RenuHealthCare/internal/models"
)

type taskRecords interface {
	InsertMany(ctx context.Context, tasks []models.Task) ([]models.Task, error)
	FindByTitle(ctx context.Context, title string) (*models.Task, error)
	FindByDepartment(ctx context.Context, department string) (*models.Task, error)
	ReplaceWeeklyPlans(ctx context.Context, title string, plans []models.WeeklyPlan) error
}

// TaskService manages the weekly assignment plans per department track.
type TaskService struct {
	tasks taskRecords
}

func NewTaskService(tasks taskRecords) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) AddAll(ctx context.Context, tasks []models.Task) ([]models.Task, error) {
	if len(tasks) == 0 {
		return nil, apperr.Validation("Request body must be a non-empty array of tasks")
	}
	for i, t := range tasks {
		if t.MainTitle == "" {
			return nil, apperr.Validation(fmt.Sprintf("task %d: mainTitle is required", i))
		}
	}
	created, err := s.tasks.InsertMany(ctx, tasks)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "insert tasks", err)
	}
	return created, nil
}

func (s *TaskService) GetByTitle(ctx context.Context, title string) (*models.Task, error) {
	if title == "" {
		return nil, apperr.Validation("Title is required")
	}
	task, err := s.tasks.FindByTitle(ctx, title)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "load task", err)
	}
	if task == nil {
		return nil, apperr.NotFound("No tasks found for this department")
	}
	return task, nil
}

// GetWeek returns one week's plan for a department.
func (s *TaskService) GetWeek(ctx context.Context, department string, week int) (*models.WeeklyPlan, error) {
	if department == "" || week < 1 {
		return nil, apperr.Validation("Both title and weekNumber are required")
	}
	task, err := s.tasks.FindByDepartment(ctx, department)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "load task", err)
	}
	if task == nil {
		return nil, apperr.NotFound("Task")
	}
	if week > len(task.WeeklyPlans) {
		return nil, apperr.Validation(fmt.Sprintf("Invalid week number. Must be between 1 and %d", len(task.WeeklyPlans)))
	}
	plan := task.WeeklyPlans[week-1]
	return &plan, nil
}

// UpdateWeek replaces the titled track's plan for one week.
func (s *TaskService) UpdateWeek(ctx context.Context, title string, week int, updated models.WeeklyPlan) (*models.Task, error) {
	if title == "" || week < 1 {
		return nil, apperr.Validation("Missing required fields: title, weekNumber, or updatedTask")
	}
	task, err := s.tasks.FindByTitle(ctx, title)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "load task", err)
	}
	if task == nil {
		return nil, apperr.NotFound("Task")
	}
	if week > len(task.WeeklyPlans) {
		return nil, apperr.Validation(fmt.Sprintf("Invalid week number. Must be between 1 and %d", len(task.WeeklyPlans)))
	}

	task.WeeklyPlans[week-1] = updated
	if err := s.tasks.ReplaceWeeklyPlans(ctx, title, task.WeeklyPlans); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "update task", err)
	}
	return task, nil
}

// DeleteWeek removes one week's plan from the titled track.
func (s *TaskService) DeleteWeek(ctx context.Context, title string, week int) error {
	if title == "" || week < 1 {
		return apperr.Validation("Missing required fields: title or weekNumber")
	}
	task, err := s.tasks.FindByTitle(ctx, title)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "load task", err)
	}
	if task == nil {
		return apperr.NotFound("Task")
	}
	if week > len(task.WeeklyPlans) {
		return apperr.Validation(fmt.Sprintf("Invalid week number. Must be between 1 and %d", len(task.WeeklyPlans)))
	}

	plans := append(task.WeeklyPlans[:week-1], task.WeeklyPlans[week:]...)
	if err := s.tasks.ReplaceWeeklyPlans(ctx, title, plans); err != nil {
		return apperr.Wrap(apperr.KindInternal, "update task", err)
	}
	return nil
}
