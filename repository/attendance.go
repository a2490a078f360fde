package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Gokulrbs/example-attendx/models"
)

type AttendanceRepo struct {
	db *gorm.DB
}

func NewAttendanceRepo(db *gorm.DB) *AttendanceRepo { return &AttendanceRepo{db: db} }

func (r *AttendanceRepo) List(ctx context.Context) ([]models.Attendance, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	rows := make([]models.Attendance, 0)
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert records one day's status for an employee, keyed on
// (employeeId, date). It returns the row and whether it was created
// rather than updated.
//
// The employee's outlet is copied onto the row at write time; an unknown
// employee id is not an error, it just resolves to an empty outlet. The
// whole check-then-act runs in one transaction and the insert carries an
// ON CONFLICT clause on (employee_id, date), so concurrent upserts for
// the same key converge last-write-wins instead of failing or duplicating.
func (r *AttendanceRepo) Upsert(ctx context.Context, employeeID, date, status string) (*models.Attendance, bool, error) {
	if strings.TrimSpace(employeeID) == "" || strings.TrimSpace(date) == "" || strings.TrimSpace(status) == "" {
		return nil, false, &ValidationError{Msg: "employeeId, date and status are required"}
	}

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var row models.Attendance
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var outlet string
		var emp models.Employee
		switch err := tx.Select("outlet").First(&emp, "id = ?", employeeID).Error; {
		case err == nil:
			outlet = emp.Outlet
		case errors.Is(err, gorm.ErrRecordNotFound):
			// permissive: attendance may reference an unknown employee
		default:
			return err
		}

		err := tx.First(&row, "employee_id = ? AND date = ?", employeeID, date).Error
		if err == nil {
			return tx.Model(&row).Update("status", status).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		created = true
		row = models.Attendance{
			ID:         employeeID + "-" + date,
			EmployeeID: employeeID,
			Date:       date,
			Status:     status,
			Outlet:     outlet,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]any{"status": status}),
		}).Create(&row).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &row, created, nil
}

// Delete removes the row for one (employeeId, date) pair.
func (r *AttendanceRepo) Delete(ctx context.Context, employeeID, date string) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Delete(&models.Attendance{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
