package alerting

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argus-worker-go/internal/models"
)

func candidate(alertType models.AlertType, ts time.Time) models.Alert {
	return newAlert(alertType, "test", models.AlertPriorityMedium, ts)
}

func TestAdmitFirstAlert(t *testing.T) {
	h := NewHistory(30*time.Second, 10*time.Minute)
	now := time.Now()

	admitted := h.Admit([]models.Alert{candidate(models.AlertTypeCrowd, now)}, now)

	require.Len(t, admitted, 1)
	assert.Equal(t, models.AlertTypeCrowd, admitted[0].Type)
	assert.Equal(t, 1, h.Size())
}

func TestAdmitSuppressesWithinCooldown(t *testing.T) {
	h := NewHistory(30*time.Second, 10*time.Minute)
	t0 := time.Now()

	first := h.Admit([]models.Alert{candidate(models.AlertTypeCrowd, t0)}, t0)
	require.Len(t, first, 1)

	// Same type 10s later, within the 30s window
	t1 := t0.Add(10 * time.Second)
	second := h.Admit([]models.Alert{candidate(models.AlertTypeCrowd, t1)}, t1)
	assert.Empty(t, second)
	assert.Equal(t, 1, h.Size())
}

func TestAdmitDeduplicatesWithinSingleCall(t *testing.T) {
	h := NewHistory(30*time.Second, 10*time.Minute)
	now := time.Now()

	admitted := h.Admit([]models.Alert{
		candidate(models.AlertTypeCrowd, now),
		candidate(models.AlertTypeCrowd, now),
	}, now)

	require.Len(t, admitted, 1)
	assert.Equal(t, 1, h.Size())
}

func TestAdmitRecoversAfterCooldown(t *testing.T) {
	h := NewHistory(30*time.Second, 10*time.Minute)
	t0 := time.Now()

	require.Len(t, h.Admit([]models.Alert{candidate(models.AlertTypeCrowd, t0)}, t0), 1)

	t1 := t0.Add(30 * time.Second)
	admitted := h.Admit([]models.Alert{candidate(models.AlertTypeCrowd, t1)}, t1)
	assert.Len(t, admitted, 1)
}

func TestAdmitDifferentTypesIndependent(t *testing.T) {
	h := NewHistory(30*time.Second, 10*time.Minute)
	now := time.Now()

	admitted := h.Admit([]models.Alert{
		candidate(models.AlertTypeCrowd, now),
		candidate(models.AlertTypeConcerningObject, now),
		candidate(models.AlertTypeAbandonedObject, now),
	}, now)

	require.Len(t, admitted, 3)
	assert.Equal(t, models.AlertTypeCrowd, admitted[0].Type)
	assert.Equal(t, models.AlertTypeConcerningObject, admitted[1].Type)
	assert.Equal(t, models.AlertTypeAbandonedObject, admitted[2].Type)
}

func TestHistoryPurgesBeyondRetention(t *testing.T) {
	h := NewHistory(30*time.Second, 10*time.Minute)
	t0 := time.Now()

	require.Len(t, h.Admit([]models.Alert{candidate(models.AlertTypeCrowd, t0)}, t0), 1)
	assert.Equal(t, 1, h.Size())

	// Past the retention horizon the entry is gone and no longer
	// suppresses a fresh admission.
	t1 := t0.Add(10 * time.Minute)
	admitted := h.Admit([]models.Alert{candidate(models.AlertTypeCrowd, t1)}, t1)
	require.Len(t, admitted, 1)
	assert.Equal(t, 1, h.Size())
}

func TestHistoryDropsFutureStampedEntries(t *testing.T) {
	h := NewHistory(30*time.Second, 10*time.Minute)
	now := time.Now()

	require.Len(t, h.Admit([]models.Alert{candidate(models.AlertTypeCrowd, now)}, now), 1)

	// Admission check at an earlier instant treats the entry as
	// corrupted state and drops it.
	earlier := now.Add(-1 * time.Minute)
	admitted := h.Admit([]models.Alert{candidate(models.AlertTypeConcerningObject, earlier)}, earlier)
	require.Len(t, admitted, 1)
	assert.Equal(t, 1, h.Size())
}

func TestAdmitPreservesInputOrder(t *testing.T) {
	h := NewHistory(30*time.Second, 10*time.Minute)
	now := time.Now()

	admitted := h.Admit([]models.Alert{
		candidate(models.AlertTypeAbandonedObject, now),
		candidate(models.AlertTypeCrowd, now),
		candidate(models.AlertTypeAbandonedObject, now), // suppressed
		candidate(models.AlertTypeUnusualActivity, now),
	}, now)

	require.Len(t, admitted, 3)
	assert.Equal(t, models.AlertTypeAbandonedObject, admitted[0].Type)
	assert.Equal(t, models.AlertTypeCrowd, admitted[1].Type)
	assert.Equal(t, models.AlertTypeUnusualActivity, admitted[2].Type)
}

func TestAdmitConcurrentSameType(t *testing.T) {
	h := NewHistory(30*time.Second, 10*time.Minute)
	now := time.Now()

	const goroutines = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	total := 0

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			admitted := h.Admit([]models.Alert{candidate(models.AlertTypeCrowd, now)}, now)
			mu.Lock()
			total += len(admitted)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Exactly one of the concurrent admissions may succeed
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, h.Size())
}
