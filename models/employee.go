package models

// Employee is a staff record. Department and Outlet are free-text labels,
// not foreign keys.
type Employee struct {
	ID         string `gorm:"primaryKey;size:64"  json:"id"`
	Name       string `gorm:"size:100;not null"   json:"name"`
	Email      string `gorm:"size:100"            json:"email"`
	Phone      string `gorm:"size:20"             json:"phone"`
	Address    string `gorm:"type:text"           json:"address"`
	Department string `gorm:"size:100"            json:"department"`
	Outlet     string `gorm:"size:100"            json:"outlet"`
}
