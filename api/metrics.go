package api

import (
	"sync"
	"time"
)

// AlertType identifies the kind of anomaly detected.
type AlertType string

const (
	// AlertLobbyRejectionSpike fires when lobby updates are being
	// absorbed as no-ops faster than any healthy client would retry —
	// usually a client sending rosters with no host or a sentinel
	// account id in a loop.
	AlertLobbyRejectionSpike AlertType = "lobby_rejection_spike"
	// AlertUnknownSessionSpike fires on a burst of credentials that
	// resolve to no session, which typically means a client kept a token
	// across a server restart.
	AlertUnknownSessionSpike AlertType = "unknown_session_spike"
)

// AlertEvent describes an anomaly that triggered an alert.
type AlertEvent struct {
	Type      AlertType `json:"type"`
	Message   string    `json:"message"`
	Count     int       `json:"count"`
	Threshold int       `json:"threshold"`
	Timestamp time.Time `json:"timestamp"`
}

// AlertFunc is the callback invoked when an anomaly is detected.
type AlertFunc func(AlertEvent)

// metricsCollector tracks sliding window counters for anomaly detection.
// Because every lobby outcome looks identical on the wire, this detector
// and the audit log are the only places rejection patterns are visible.
type metricsCollector struct {
	mu sync.Mutex

	// Sliding window for lobby rejections (no host, invalid account).
	rejections         []time.Time
	rejectionWindow    time.Duration
	rejectionThreshold int

	// Sliding window for unknown-session credentials.
	unknown          []time.Time
	unknownWindow    time.Duration
	unknownThreshold int

	alertFn AlertFunc
}

const (
	defaultRejectionWindow    = 1 * time.Minute
	defaultRejectionThreshold = 50
	defaultUnknownWindow      = 1 * time.Minute
	defaultUnknownThreshold   = 100
)

func newMetricsCollector(alertFn AlertFunc) *metricsCollector {
	return &metricsCollector{
		rejectionWindow:    defaultRejectionWindow,
		rejectionThreshold: defaultRejectionThreshold,
		unknownWindow:      defaultUnknownWindow,
		unknownThreshold:   defaultUnknownThreshold,
		alertFn:            alertFn,
	}
}

// recordEvent inspects an audit event and updates the relevant counters.
func (m *metricsCollector) recordEvent(event AuditEvent) {
	if m == nil || m.alertFn == nil {
		return
	}
	switch event {
	case AuditLobbyNoHost, AuditLobbyInvalidAccount, AuditLobbyNoCredential:
		m.recordRejection()
	case AuditLobbyUnknownSession:
		m.recordUnknownSession()
	}
}

func (m *metricsCollector) recordRejection() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.rejections = append(m.rejections, now)
	m.rejections = trimWindow(m.rejections, now, m.rejectionWindow)

	if len(m.rejections) >= m.rejectionThreshold {
		m.alertFn(AlertEvent{
			Type:      AlertLobbyRejectionSpike,
			Message:   "lobby rejection rate exceeds threshold",
			Count:     len(m.rejections),
			Threshold: m.rejectionThreshold,
			Timestamp: now,
		})
		// Reset to avoid repeated alerts within the same spike.
		m.rejections = m.rejections[:0]
	}
}

func (m *metricsCollector) recordUnknownSession() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.unknown = append(m.unknown, now)
	m.unknown = trimWindow(m.unknown, now, m.unknownWindow)

	if len(m.unknown) >= m.unknownThreshold {
		m.alertFn(AlertEvent{
			Type:      AlertUnknownSessionSpike,
			Message:   "unknown session rate exceeds threshold",
			Count:     len(m.unknown),
			Threshold: m.unknownThreshold,
			Timestamp: now,
		})
		m.unknown = m.unknown[:0]
	}
}

// trimWindow removes entries older than (now - window) from the sorted slice.
func trimWindow(times []time.Time, now time.Time, window time.Duration) []time.Time {
	cutoff := now.Add(-window)
	start := 0
	for start < len(times) && times[start].Before(cutoff) {
		start++
	}
	return times[start:]
}
