package call

import "github.com/andreamorim18/helpdesk/internal/models"

// Permission rules for every call mutation live here so the role matrix is
// testable without transport or storage.

// CanCreate: only clients open calls, always for themselves.
func CanCreate(requesterRole string) bool {
	return requesterRole == models.RoleClient
}

// CanView: admin sees everything, a client only their own calls, a
// technician only calls assigned to them.
func CanView(requesterRole string, requesterID, clientID, technicianID uint) bool {
	switch requesterRole {
	case models.RoleAdmin:
		return true
	case models.RoleClient:
		return clientID == requesterID
	case models.RoleTechnician:
		return technicianID == requesterID
	}
	return false
}

// CanUpdate: clients never update a call, not even their own. A technician
// updates only calls assigned to them. Admin always may.
func CanUpdate(requesterRole string, requesterID, technicianID uint) bool {
	switch requesterRole {
	case models.RoleAdmin:
		return true
	case models.RoleTechnician:
		return technicianID == requesterID
	}
	return false
}

// CanDelete: admin always, the owning client only, technicians never.
func CanDelete(requesterRole string, requesterID, clientID uint) bool {
	switch requesterRole {
	case models.RoleAdmin:
		return true
	case models.RoleClient:
		return clientID == requesterID
	}
	return false
}
