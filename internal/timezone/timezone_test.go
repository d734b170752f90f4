package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_KnownZone(t *testing.T) {
	assert.Equal(t, "America/New_York", Location("America/New_York").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestLocation_EmptyFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
}

func TestLocation_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Atlantis/Lost").String())
}
