// scripts/seed.go
package main

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/Gokulrbs/example-attendx/config"
	"github.com/Gokulrbs/example-attendx/database"
	"github.com/Gokulrbs/example-attendx/models"
	"github.com/Gokulrbs/example-attendx/repository"
)

// Seeds a handful of demo departments and employees for local frontend
// work. Re-running is a no-op when the names already exist.
func main() {
	cfg := config.Load()
	if !cfg.HasDatabase() {
		log.Fatal("DATABASE_URL must be set to seed")
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx := context.Background()
	depts := repository.NewDepartmentRepo(db)
	emps := repository.NewEmployeeRepo(db)

	for _, d := range []repository.NewDepartment{
		{Name: "Sales", Description: "Front of house", Outlet: "HQ"},
		{Name: "Kitchen", Description: "Back of house", Outlet: "HQ"},
	} {
		if exists(db, &models.Department{}, d.Name) {
			fmt.Println("department already exists:", d.Name)
			continue
		}
		row, err := depts.Create(ctx, d)
		if err != nil {
			log.Fatalf("seed department %s: %v", d.Name, err)
		}
		fmt.Println("created department", row.ID, row.Name)
	}

	for _, e := range []repository.NewEmployee{
		{Name: "Alice Tan", Email: "alice@example.com", Department: "Sales", Outlet: "HQ"},
		{Name: "Bob Lim", Email: "bob@example.com", Department: "Kitchen", Outlet: "North"},
	} {
		if exists(db, &models.Employee{}, e.Name) {
			fmt.Println("employee already exists:", e.Name)
			continue
		}
		row, err := emps.Create(ctx, e)
		if err != nil {
			log.Fatalf("seed employee %s: %v", e.Name, err)
		}
		fmt.Println("created employee", row.ID, row.Name)
	}
}

func exists(db *gorm.DB, model any, name string) bool {
	var n int64
	db.Model(model).Where("name = ?", name).Count(&n)
	return n > 0
}
