package call

import (
	"testing"

	"github.com/andreamorim18/helpdesk/internal/models"
)

func TestCanCreate(t *testing.T) {
	if !CanCreate(models.RoleClient) {
		t.Fatalf("expected client to be allowed to create")
	}
	if CanCreate(models.RoleTechnician) {
		t.Fatalf("expected technician to be denied")
	}
	if CanCreate(models.RoleAdmin) {
		t.Fatalf("expected admin to be denied")
	}
}

func TestCanView(t *testing.T) {
	const clientID, technicianID = 10, 20

	cases := []struct {
		name        string
		role        string
		requesterID uint
		want        bool
	}{
		{"admin always", models.RoleAdmin, 99, true},
		{"owning client", models.RoleClient, clientID, true},
		{"other client", models.RoleClient, 11, false},
		{"assigned technician", models.RoleTechnician, technicianID, true},
		{"other technician", models.RoleTechnician, 21, false},
		{"unknown role", "INTERN", clientID, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanView(tc.role, tc.requesterID, clientID, technicianID)
			if got != tc.want {
				t.Fatalf("CanView(%s, %d) = %v, want %v", tc.role, tc.requesterID, got, tc.want)
			}
		})
	}
}

func TestCanUpdate_ClientAlwaysDenied(t *testing.T) {
	// Even the owning client may not update their call.
	if CanUpdate(models.RoleClient, 10, 20) {
		t.Fatalf("expected client to be denied")
	}
}

func TestCanUpdate_TechnicianOnlyWhenAssigned(t *testing.T) {
	if !CanUpdate(models.RoleTechnician, 20, 20) {
		t.Fatalf("expected assigned technician to be allowed")
	}
	if CanUpdate(models.RoleTechnician, 21, 20) {
		t.Fatalf("expected unassigned technician to be denied")
	}
}

func TestCanUpdate_AdminAlways(t *testing.T) {
	if !CanUpdate(models.RoleAdmin, 1, 20) {
		t.Fatalf("expected admin to be allowed")
	}
}

func TestCanDelete(t *testing.T) {
	const clientID = 10

	if !CanDelete(models.RoleAdmin, 99, clientID) {
		t.Fatalf("expected admin to delete any call")
	}
	if !CanDelete(models.RoleClient, clientID, clientID) {
		t.Fatalf("expected owning client to be allowed")
	}
	if CanDelete(models.RoleClient, 11, clientID) {
		t.Fatalf("expected other client to be denied")
	}
	if CanDelete(models.RoleTechnician, clientID, clientID) {
		t.Fatalf("expected technician to be denied regardless of assignment")
	}
}
