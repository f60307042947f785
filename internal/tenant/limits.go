package tenant

// DefaultLimitThreshold is the usage ratio at which the UI starts
// warning about a resource limit
const DefaultLimitThreshold = 0.8

// IsApproachingLimit reports whether a tracked resource is at or above
// the threshold of its limit. Untracked resources and resources without
// a positive limit are never "approaching"; a zero limit must not
// produce a division.
func (m *Manager) IsApproachingLimit(resource string, threshold float64) bool {
	m.mu.RLock()
	limits := m.limits
	m.mu.RUnlock()

	status, ok := limits[resource]
	if !ok {
		return false
	}
	if status.Limit <= 0 {
		return false
	}

	return float64(status.Current)/float64(status.Limit) >= threshold
}
