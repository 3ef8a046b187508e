package service

import (
	"context"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
	"github.com/phoneix12356/RenuHealthCare/internal/models"
)

type departmentRecords interface {
	Create(ctx context.Context, dept *models.Department) (string, error)
	FindByName(ctx context.Context, name string) (*models.Department, error)
	FindAll(ctx context.Context) ([]models.Department, error)
	Update(ctx context.Context, name string, dept *models.Department) (*models.Department, error)
	Delete(ctx context.Context, name string) (bool, error)
}

type DepartmentService struct {
	depts departmentRecords
}

func NewDepartmentService(depts departmentRecords) *DepartmentService {
	return &DepartmentService{depts: depts}
}

func (s *DepartmentService) Add(ctx context.Context, dept *models.Department) (*models.Department, error) {
	if dept.Name == "" {
		return nil, apperr.Validation("Department name is required")
	}
	existing, err := s.depts.FindByName(ctx, dept.Name)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "load department", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "Department already exists")
	}
	if _, err := s.depts.Create(ctx, dept); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "create department", err)
	}
	return dept, nil
}

func (s *DepartmentService) Get(ctx context.Context, name string) (*models.Department, error) {
	if name == "" {
		return nil, apperr.Validation("Department name is required")
	}
	dept, err := s.depts.FindByName(ctx, name)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "load department", err)
	}
	if dept == nil {
		return nil, apperr.NotFound("Department")
	}
	return dept, nil
}

func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	depts, err := s.depts.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list departments", err)
	}
	return depts, nil
}

func (s *DepartmentService) Update(ctx context.Context, name string, dept *models.Department) (*models.Department, error) {
	if name == "" || dept.Name == "" {
		return nil, apperr.Validation("Department name is required")
	}
	updated, err := s.depts.Update(ctx, name, dept)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "update department", err)
	}
	if updated == nil {
		return nil, apperr.NotFound("Department")
	}
	return updated, nil
}

func (s *DepartmentService) Delete(ctx context.Context, name string) error {
	if name == "" {
		return apperr.Validation("Department name is required")
	}
	ok, err := s.depts.Delete(ctx, name)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "delete department", err)
	}
	if !ok {
		return apperr.NotFound("Department")
	}
	return nil
}
