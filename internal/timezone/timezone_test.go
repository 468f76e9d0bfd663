package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBack(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
}

func TestToday(t *testing.T) {
	// 01:30 UTC is still the previous day in São Paulo (UTC-3)
	instant := time.Date(2026, 3, 10, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-03-09", Today(instant, "America/Sao_Paulo"))
	assert.Equal(t, "2026-03-10", Today(instant, "UTC"))
}

func TestSlotStart(t *testing.T) {
	start, err := SlotStart("2026-03-10", "14:30", "UTC")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC), start)

	_, err = SlotStart("2026-02-30", "14:30", "UTC")
	assert.Error(t, err)

	_, err = SlotStart("2026-03-10", "25:00", "UTC")
	assert.Error(t, err)
}
