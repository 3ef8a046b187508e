package service

import (
	"context"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
	"github.com/phoneix12356/RenuHealthCare/internal/models"
)

type projectRecords interface {
	Create(ctx context.Context, project *models.ProjectOverview) (string, error)
	FindByOverview(ctx context.Context, overview string) (*models.ProjectOverview, error)
	Update(ctx context.Context, overview string, project *models.ProjectOverview) (*models.ProjectOverview, error)
	Delete(ctx context.Context, overview string) (bool, error)
}

// ProjectService manages department project overviews, keyed by their
// overview text.
type ProjectService struct {
	projects projectRecords
}

func NewProjectService(projects projectRecords) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) Add(ctx context.Context, project *models.ProjectOverview) (*models.ProjectOverview, error) {
	if project.Overview == "" || project.DepartmentName == "" || len(project.Procedure) == 0 {
		return nil, apperr.Validation("Required fields missing")
	}
	if project.Duration == 0 {
		project.Duration = 3
	}
	if project.Duration != 3 && project.Duration != 6 {
		return nil, apperr.Validation("Duration must be 3 or 6 months")
	}
	if project.InternshipType == "" {
		project.InternshipType = models.InternshipUnpaid
	}
	if _, err := s.projects.Create(ctx, project); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "create project", err)
	}
	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, overview string) (*models.ProjectOverview, error) {
	if overview == "" {
		return nil, apperr.Validation("Overview is required")
	}
	project, err := s.projects.FindByOverview(ctx, overview)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "load project", err)
	}
	if project == nil {
		return nil, apperr.NotFound("Project")
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, project *models.ProjectOverview) (*models.ProjectOverview, error) {
	if project.Overview == "" || project.InternshipType == "" || project.DepartmentName == "" ||
		len(project.Procedure) == 0 || project.StartDate.IsZero() || project.EndDate.IsZero() || project.ProjectDeadline.IsZero() {
		return nil, apperr.Validation("Required fields missing")
	}
	updated, err := s.projects.Update(ctx, project.Overview, project)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "update project", err)
	}
	if updated == nil {
		return nil, apperr.NotFound("Project")
	}
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, overview string) error {
	if overview == "" {
		return apperr.Validation("Overview is required")
	}
	ok, err := s.projects.Delete(ctx, overview)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "delete project", err)
	}
	if !ok {
		return apperr.NotFound("Project")
	}
	return nil
}
