package call

import "github.com/andreamorim18/helpdesk/internal/models"

// TotalOf sums current service prices. Attached rows snapshot these prices,
// so the stored total stays consistent with the rows even if a service's
// price changes later.
func TotalOf(services []models.Service) float64 {
	var total float64
	for _, s := range services {
		total += s.Price
	}
	return total
}

// Snapshot builds the join rows for a call from the resolved services,
// freezing each price at this instant.
func Snapshot(callID uint, services []models.Service) []models.CallService {
	items := make([]models.CallService, 0, len(services))
	for _, s := range services {
		items = append(items, models.CallService{
			CallID:    callID,
			ServiceID: s.ID,
			Price:     s.Price,
			Quantity:  1,
		})
	}
	return items
}

// ResolvedSetMatches enforces the all-or-nothing service check: the lookup
// must return exactly as many active services as ids were requested.
// Duplicate ids in the request under-count against the distinct rows the
// query returns and fail the whole resolution; callers pass deduplicated
// ids or accept the mismatch.
func ResolvedSetMatches(requested []uint, resolved []models.Service) bool {
	return len(requested) > 0 && len(requested) == len(resolved)
}
