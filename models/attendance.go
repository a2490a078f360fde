package models

// Attendance records one status per employee per day. Outlet is copied from
// the employee at write time and is not kept in sync afterwards.
type Attendance struct {
	ID         string `gorm:"primaryKey;size:80"                                             json:"id"`
	EmployeeID string `gorm:"column:employee_id;size:64;not null;uniqueIndex:idx_att_emp_date" json:"employeeId"`
	Date       string `gorm:"size:20;not null;uniqueIndex:idx_att_emp_date"                  json:"date"` // caller-supplied, e.g. YYYY-MM-DD
	Status     string `gorm:"size:20;not null"                                               json:"status"` // present/absent/...
	Outlet     string `gorm:"size:100"                                                       json:"outlet"`
}

// TableName keeps the singular table name the API schema uses.
func (Attendance) TableName() string { return "attendance" }
