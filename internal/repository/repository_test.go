package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitchFor(t *testing.T) {
	cases := map[string]switchTable{
		"sound":        {"sounds", "sound"},
		"steam":        {"steams", "steam"},
		"water-pump":   {"water_pumps", "water_pump"},
		"nano-flicker": {"nano_flickers", "nano_flicker"},
	}
	for device, want := range cases {
		st, err := switchFor(device)
		require.NoError(t, err)
		assert.Equal(t, want, st)
	}

	for _, bad := range []string{"", "temp-tank", "led-color", "sounds", "SOUND"} {
		_, err := switchFor(bad)
		assert.ErrorIs(t, err, ErrNotFound, "device %q must be rejected", bad)
	}
}

func TestNullStr(t *testing.T) {
	assert.Nil(t, nullStr(""))
	assert.Equal(t, "x", nullStr("x"))
}

type fakeResult struct{ affected int64 }

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }

func TestAffectedOrNotFound(t *testing.T) {
	assert.NoError(t, affectedOrNotFound(fakeResult{affected: 1}))
	assert.ErrorIs(t, affectedOrNotFound(fakeResult{affected: 0}), ErrNotFound)
}
