package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LockMetrics counts gate decisions and unlock request lifecycle
// events.
type LockMetrics struct {
	MutationsAllowed   *prometheus.CounterVec
	MutationsBlocked   *prometheus.CounterVec
	MutationsViaUnlock *prometheus.CounterVec
	UnlockRequests     *prometheus.CounterVec
}

func NewLockMetrics() *LockMetrics {
	return &LockMetrics{
		MutationsAllowed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "timelock_mutations_allowed_total",
			Help: "Time entry mutations that passed the lock gate",
		}, []string{"intent"}),
		MutationsBlocked: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "timelock_mutations_blocked_total",
			Help: "Time entry mutations rejected by the lock gate",
		}, []string{"intent", "reason"}),
		MutationsViaUnlock: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "timelock_mutations_via_unlock_total",
			Help: "Mutations on locked entries permitted by an active unlock",
		}, []string{"intent"}),
		UnlockRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "timelock_unlock_requests_total",
			Help: "Unlock request lifecycle events",
		}, []string{"action"}),
	}
}

func (m *LockMetrics) RecordAllowed(intent string) {
	if m == nil {
		return
	}
	m.MutationsAllowed.WithLabelValues(intent).Inc()
}

func (m *LockMetrics) RecordBlocked(intent, reason string) {
	if m == nil {
		return
	}
	m.MutationsBlocked.WithLabelValues(intent, reason).Inc()
}

func (m *LockMetrics) RecordViaUnlock(intent string) {
	if m == nil {
		return
	}
	m.MutationsViaUnlock.WithLabelValues(intent).Inc()
}

func (m *LockMetrics) RecordUnlockRequest(action string) {
	if m == nil {
		return
	}
	m.UnlockRequests.WithLabelValues(action).Inc()
}
