package models

type Department struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"size:100;not null"  json:"name"`
	Description string `gorm:"type:text"          json:"description"`
	Outlet      string `gorm:"size:100"           json:"outlet"`
}
