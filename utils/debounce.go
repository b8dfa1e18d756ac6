package utils

import "time"

// DebouncePolicy suppresses repeated alerts from the same source. When a
// sensor id is enrolled, a new alert is dropped if the source's most recent
// alert is younger than the window.
type DebouncePolicy struct {
	window  time.Duration
	sources map[string]struct{}
}

// NewDebouncePolicy enrolls the given sensor ids with the given window.
func NewDebouncePolicy(ids []string, window time.Duration) DebouncePolicy {
	sources := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		sources[id] = struct{}{}
	}
	return DebouncePolicy{window: window, sources: sources}
}

// Enabled reports whether the source is subject to debouncing.
func (p DebouncePolicy) Enabled(sensorID string) bool {
	_, ok := p.sources[sensorID]
	return ok
}

// Suppressed reports whether an alert from the source should be dropped,
// given the timestamp of its most recent persisted alert.
func (p DebouncePolicy) Suppressed(sensorID string, lastAlert, now time.Time) bool {
	if !p.Enabled(sensorID) || lastAlert.IsZero() {
		return false
	}
	return now.Sub(lastAlert) < p.window
}
