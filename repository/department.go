package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Gokulrbs/example-attendx/models"
)

type DepartmentRepo struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) *DepartmentRepo { return &DepartmentRepo{db: db} }

type NewDepartment struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Outlet      string `json:"outlet"`
}

func (r *DepartmentRepo) List(ctx context.Context) ([]models.Department, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	rows := make([]models.Department, 0)
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DepartmentRepo) Create(ctx context.Context, in NewDepartment) (*models.Department, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Msg: "Name is required"}
	}

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	d := models.Department{
		ID:          newID("dept"),
		Name:        in.Name,
		Description: in.Description,
		Outlet:      in.Outlet,
	}
	if err := r.db.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.Department{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
