package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Gokulrbs/example-attendx/models"
)

type EmployeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) *EmployeeRepo { return &EmployeeRepo{db: db} }

// NewEmployee carries the create payload. Name is required; every other
// field defaults to the empty string when omitted.
type NewEmployee struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Department string `json:"department"`
	Outlet     string `json:"outlet"`
}

// EmployeePatch carries a partial update; nil means "leave unchanged".
type EmployeePatch struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	Department *string `json:"department"`
	Outlet     *string `json:"outlet"`
}

// columns folds the present fields into a column map for a single
// parameterized UPDATE. Column names are fixed here, never taken from
// the request.
func (p *EmployeePatch) columns() map[string]any {
	cols := map[string]any{}
	set := func(name string, v *string) {
		if v != nil {
			cols[name] = *v
		}
	}
	set("name", p.Name)
	set("email", p.Email)
	set("phone", p.Phone)
	set("address", p.Address)
	set("department", p.Department)
	set("outlet", p.Outlet)
	return cols
}

func (r *EmployeeRepo) List(ctx context.Context) ([]models.Employee, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	rows := make([]models.Employee, 0)
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EmployeeRepo) Get(ctx context.Context, id string) (*models.Employee, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var e models.Employee
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, in NewEmployee) (*models.Employee, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Msg: "Name is required"}
	}

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	e := models.Employee{
		ID:         newID("emp"),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		Department: in.Department,
		Outlet:     in.Outlet,
	}
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// Update applies the present fields of the patch to one employee.
// An empty patch fails before reaching the store.
func (r *EmployeeRepo) Update(ctx context.Context, id string, patch EmployeePatch) (*models.Employee, error) {
	cols := patch.columns()
	if len(cols) == 0 {
		return nil, ErrNoFields
	}
	if v, ok := cols["name"]; ok && strings.TrimSpace(v.(string)) == "" {
		return nil, &ValidationError{Msg: "Name is required"}
	}

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var existing models.Employee
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&existing).Updates(cols).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// Delete removes an employee and all of its attendance rows. The cascade
// runs explicitly inside one transaction and is safe to run even when a
// store-level cascade already cleared the attendance rows.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Employee{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
