package alerting

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"argus-worker-go/internal/models"
)

// History holds recently admitted alerts and suppresses repeats of the
// same type within a cooldown window. It is the only stateful part of
// the analysis pipeline and is shared across requests, so all admission
// checks run under one lock.
type History struct {
	mu        sync.Mutex
	entries   []models.Alert
	cooldown  time.Duration
	retention time.Duration
}

// NewHistory creates an empty alert history. cooldown is the minimum
// gap between admitted alerts of the same type; retention bounds how
// long entries are kept at all.
func NewHistory(cooldown, retention time.Duration) *History {
	return &History{
		entries:   make([]models.Alert, 0),
		cooldown:  cooldown,
		retention: retention,
	}
}

// Admit filters candidates against the history relative to now. A
// candidate is suppressed when an entry of the same type is younger
// than the cooldown window; admitted candidates are appended to the
// history and returned in their original relative order. Suppression is
// a silent, successful outcome, never an error.
func (h *History) Admit(candidates []models.Alert, now time.Time) []models.Alert {
	h.mu.Lock()
	defer h.mu.Unlock()

	admitted := make([]models.Alert, 0, len(candidates))

	for _, candidate := range candidates {
		h.purge(now)

		if h.recentlySent(candidate.Type, now) {
			log.Debug().
				Str("type", string(candidate.Type)).
				Dur("cooldown", h.cooldown).
				Msg("Alert suppressed by cooldown")
			continue
		}

		h.entries = append(h.entries, candidate)
		admitted = append(admitted, candidate)
	}

	return admitted
}

// Size returns the current number of history entries
func (h *History) Size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// purge drops entries past the retention horizon. Entries stamped in
// the future indicate corrupted state and are dropped too.
func (h *History) purge(now time.Time) {
	kept := h.entries[:0]
	for _, entry := range h.entries {
		if entry.Timestamp.After(now) {
			log.Error().
				Str("alert_id", entry.ID).
				Str("type", string(entry.Type)).
				Time("timestamp", entry.Timestamp).
				Msg("Alert history entry has negative age, dropping")
			continue
		}
		if now.Sub(entry.Timestamp) < h.retention {
			kept = append(kept, entry)
		}
	}
	h.entries = kept
}

func (h *History) recentlySent(alertType models.AlertType, now time.Time) bool {
	for _, entry := range h.entries {
		if entry.Type == alertType && now.Sub(entry.Timestamp) < h.cooldown {
			return true
		}
	}
	return false
}
