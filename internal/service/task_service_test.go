package service

import (
	"context"
	"strings"
	"testing"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
	"github.com/phoneix12356/RenuHealthCare/internal/models"
)

type fakeTasks struct {
	byTitle map[string]*models.Task
}

func newFakeTasks() *fakeTasks {
	return &fakeTasks{byTitle: map[string]*models.Task{}}
}

func (f *fakeTasks) InsertMany(ctx context.Context, tasks []models.Task) ([]models.Task, error) {
	for i := range tasks {
		tasks[i].MainTitle = strings.ToLower(tasks[i].MainTitle)
		t := tasks[i]
		f.byTitle[t.MainTitle] = &t
	}
	return tasks, nil
}

func (f *fakeTasks) FindByTitle(ctx context.Context, title string) (*models.Task, error) {
	return f.byTitle[strings.ToLower(title)], nil
}

func (f *fakeTasks) FindByDepartment(ctx context.Context, department string) (*models.Task, error) {
	for _, t := range f.byTitle {
		if strings.EqualFold(t.DepartmentName, department) {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTasks) ReplaceWeeklyPlans(ctx context.Context, title string, plans []models.WeeklyPlan) error {
	if t := f.byTitle[strings.ToLower(title)]; t != nil {
		t.WeeklyPlans = plans
	}
	return nil
}

func hrTrack() models.Task {
	return models.Task{
		MainTitle:      "Human Resources",
		DepartmentName: "Human Resources",
		WeeklyPlans: []models.WeeklyPlan{
			{WeekNumber: 1, WeekTitle: "Orientation"},
			{WeekNumber: 2, WeekTitle: "Recruitment Basics"},
			{WeekNumber: 3, WeekTitle: "Policy Drafting"},
		},
	}
}

func TestTaskAddAndGet(t *testing.T) {
	svc := NewTaskService(newFakeTasks())

	created, err := svc.AddAll(context.Background(), []models.Task{hrTrack()})
	if err != nil {
		t.Fatalf("AddAll: %v", err)
	}
	if created[0].MainTitle != "human resources" {
		t.Errorf("MainTitle = %q, want lowercased", created[0].MainTitle)
	}

	task, err := svc.GetByTitle(context.Background(), "Human Resources")
	if err != nil {
		t.Fatalf("GetByTitle: %v", err)
	}
	if len(task.WeeklyPlans) != 3 {
		t.Errorf("got %d weekly plans, want 3", len(task.WeeklyPlans))
	}
}

func TestTaskAddAllValidation(t *testing.T) {
	svc := NewTaskService(newFakeTasks())

	if _, err := svc.AddAll(context.Background(), nil); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("empty slice: err = %v, want validation", err)
	}
	if _, err := svc.AddAll(context.Background(), []models.Task{{}}); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("missing mainTitle: err = %v, want validation", err)
	}
}

func TestTaskGetWeek(t *testing.T) {
	svc := NewTaskService(newFakeTasks())
	if _, err := svc.AddAll(context.Background(), []models.Task{hrTrack()}); err != nil {
		t.Fatalf("AddAll: %v", err)
	}

	plan, err := svc.GetWeek(context.Background(), "Human Resources", 2)
	if err != nil {
		t.Fatalf("GetWeek: %v", err)
	}
	if plan.WeekTitle != "Recruitment Basics" {
		t.Errorf("WeekTitle = %q", plan.WeekTitle)
	}

	if _, err := svc.GetWeek(context.Background(), "Human Resources", 9); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("week out of range: err = %v, want validation", err)
	}
	if _, err := svc.GetWeek(context.Background(), "Marketing", 1); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("unknown department: err = %v, want not found", err)
	}
}

func TestTaskUpdateWeek(t *testing.T) {
	svc := NewTaskService(newFakeTasks())
	if _, err := svc.AddAll(context.Background(), []models.Task{hrTrack()}); err != nil {
		t.Fatalf("AddAll: %v", err)
	}

	updated, err := svc.UpdateWeek(context.Background(), "human resources", 2, models.WeeklyPlan{
		WeekNumber: 2,
		WeekTitle:  "Interview Practice",
	})
	if err != nil {
		t.Fatalf("UpdateWeek: %v", err)
	}
	if updated.WeeklyPlans[1].WeekTitle != "Interview Practice" {
		t.Errorf("week 2 title = %q", updated.WeeklyPlans[1].WeekTitle)
	}
	// Neighbors untouched.
	if updated.WeeklyPlans[0].WeekTitle != "Orientation" || updated.WeeklyPlans[2].WeekTitle != "Policy Drafting" {
		t.Errorf("update disturbed other weeks: %+v", updated.WeeklyPlans)
	}
}

func TestTaskDeleteWeek(t *testing.T) {
	svc := NewTaskService(newFakeTasks())
	if _, err := svc.AddAll(context.Background(), []models.Task{hrTrack()}); err != nil {
		t.Fatalf("AddAll: %v", err)
	}

	if err := svc.DeleteWeek(context.Background(), "human resources", 2); err != nil {
		t.Fatalf("DeleteWeek: %v", err)
	}
	task, err := svc.GetByTitle(context.Background(), "human resources")
	if err != nil {
		t.Fatalf("GetByTitle: %v", err)
	}
	if len(task.WeeklyPlans) != 2 {
		t.Fatalf("got %d plans after delete, want 2", len(task.WeeklyPlans))
	}
	if task.WeeklyPlans[1].WeekTitle != "Policy Drafting" {
		t.Errorf("remaining plans = %+v", task.WeeklyPlans)
	}
}
