package access

import (
	"testing"

	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
)

func TestCanAccess_AdminBypass(t *testing.T) {
	admin := Identity{IsAdmin: true}
	if !CanAccess(admin, "Products", enum.DepartmentCatalog) {
		t.Fatal("admin denied known capability")
	}
	if !CanAccess(admin, "does-not-exist", enum.Department("nope")) {
		t.Fatal("admin bypass must hold for any inputs")
	}
}

func TestCanAccess_SubAdmin(t *testing.T) {
	catalog := Identity{
		Department:  enum.DepartmentCatalog,
		Permissions: []string{"Products"},
	}

	tests := []struct {
		name       string
		capability string
		dept       enum.Department
		want       bool
	}{
		{"granted capability in own department", "Products", enum.DepartmentCatalog, true},
		{"granted capability, wrong department", "Products", enum.DepartmentOrders, false},
		{"granted capability, all department", "Products", enum.DepartmentAll, true},
		{"capability not granted", "Categories", enum.DepartmentCatalog, false},
		{"unknown capability denies", "Warehouse", enum.DepartmentCatalog, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(catalog, tt.capability, tt.dept); got != tt.want {
				t.Fatalf("CanAccess(%q, %q) = %v, want %v", tt.capability, tt.dept, got, tt.want)
			}
		})
	}
}

func TestCanAccess_MissingIdentity(t *testing.T) {
	if CanAccess(Identity{}, "Products", enum.DepartmentCatalog) {
		t.Fatal("zero identity must deny")
	}
}

func TestCanAccessSection_UnknownIDDenies(t *testing.T) {
	admin := Identity{IsAdmin: true}
	if CanAccessSection(admin, "warehouse") {
		t.Fatal("unknown section id must deny even for admin")
	}
	if !CanAccessSection(admin, "orders") {
		t.Fatal("admin denied known section")
	}
}

func TestSectionMatrixIsClosed(t *testing.T) {
	if len(Sections) != 17 {
		t.Fatalf("expected 17 sections, got %d", len(Sections))
	}
	seen := map[string]bool{}
	for _, s := range Sections {
		if seen[s.ID] {
			t.Fatalf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Capability == "" {
			t.Fatalf("section %q has empty capability", s.ID)
		}
		if s.Department != enum.DepartmentAll && !s.Department.IsAssignable() {
			t.Fatalf("section %q references undefined department %q", s.ID, s.Department)
		}
	}
}

func TestVisibleSections(t *testing.T) {
	finance := Identity{
		Department:  enum.DepartmentFinance,
		Permissions: []string{"Dashboard", "GST Reports", "Sales Analytics"},
	}
	visible := VisibleSections(finance)
	ids := make(map[string]bool, len(visible))
	for _, s := range visible {
		ids[s.ID] = true
	}
	for _, want := range []string{"dashboard", "gst", "sales"} {
		if !ids[want] {
			t.Fatalf("expected section %q visible, got %v", want, ids)
		}
	}
	if ids["cities"] {
		t.Fatal("cities requires its own capability grant")
	}
	if ids["orders"] {
		t.Fatal("orders is outside the finance department")
	}

	admin := Identity{IsAdmin: true}
	if len(VisibleSections(admin)) != len(Sections) {
		t.Fatal("admin must see every section")
	}
}
