package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestEmployeeCreateDefaultsAndList(t *testing.T) {
	repo := NewEmployeeRepo(testDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, NewEmployee{Name: "Alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(created.ID, "emp-") {
		t.Fatalf("expected generated emp- id, got %q", created.ID)
	}
	if created.Email != "" || created.Phone != "" || created.Address != "" ||
		created.Department != "" || created.Outlet != "" {
		t.Fatalf("expected omitted fields to default to empty string, got %+v", created)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != created.ID || rows[0].Name != "Alice" {
		t.Fatalf("expected exactly the created row, got %+v", rows)
	}
}

func TestEmployeeListEmpty(t *testing.T) {
	repo := NewEmployeeRepo(testDB(t))

	rows, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}
}

func TestEmployeeCreateRequiresName(t *testing.T) {
	repo := NewEmployeeRepo(testDB(t))

	_, err := repo.Create(context.Background(), NewEmployee{Email: "x@example.com"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestEmployeeUpdatePartial(t *testing.T) {
	repo := NewEmployeeRepo(testDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, NewEmployee{
		Name: "Alice", Email: "alice@example.com", Outlet: "North",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.Update(ctx, created.ID, EmployeePatch{Phone: ptr("555-0101")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone != "555-0101" {
		t.Fatalf("expected phone updated, got %q", updated.Phone)
	}
	if updated.Name != "Alice" || updated.Email != "alice@example.com" || updated.Outlet != "North" {
		t.Fatalf("expected untouched fields to survive, got %+v", updated)
	}

	fresh, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fresh.Phone != "555-0101" || fresh.Name != "Alice" {
		t.Fatalf("expected persisted partial update, got %+v", fresh)
	}
}

func TestEmployeeUpdateEmptyPatch(t *testing.T) {
	repo := NewEmployeeRepo(testDB(t))

	_, err := repo.Update(context.Background(), "emp-1", EmployeePatch{})
	if !errors.Is(err, ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
}

func TestEmployeeUpdateUnknownID(t *testing.T) {
	repo := NewEmployeeRepo(testDB(t))

	_, err := repo.Update(context.Background(), "emp-missing", EmployeePatch{Name: ptr("x")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEmployeeDeleteCascadesAttendance(t *testing.T) {
	db := testDB(t)
	emps := NewEmployeeRepo(db)
	atts := NewAttendanceRepo(db)
	ctx := context.Background()

	created, err := emps.Create(ctx, NewEmployee{Name: "Alice", Outlet: "North"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, date := range []string{"2024-01-01", "2024-01-02"} {
		if _, _, err := atts.Upsert(ctx, created.ID, date, "present"); err != nil {
			t.Fatalf("upsert %s: %v", date, err)
		}
	}

	if err := emps.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rows, err := atts.List(ctx)
	if err != nil {
		t.Fatalf("list attendance: %v", err)
	}
	for _, a := range rows {
		if a.EmployeeID == created.ID {
			t.Fatalf("expected no attendance rows left for %s, found %+v", created.ID, a)
		}
	}
	if _, err := emps.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected employee gone, got %v", err)
	}
}

func TestEmployeeDeleteUnknownID(t *testing.T) {
	repo := NewEmployeeRepo(testDB(t))

	if err := repo.Delete(context.Background(), "emp-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
