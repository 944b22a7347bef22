package dshow

import (
	"testing"

	"github.com/go-ole/go-ole"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hardwareMediumClass = ole.NewGUID("{A1B2C3D4-0000-0010-8000-00AA00389B71}")

func sentinelNull() Medium {
	return Medium{Class: *ole.IID_NULL}
}

func sentinelStandard() Medium {
	return Medium{Class: *mediumSetIDStandard, Instance1: 7, Instance2: 9}
}

func hardwareMedium(inst1, inst2 uint32) Medium {
	return Medium{Class: *hardwareMediumClass, Instance1: inst1, Instance2: inst2}
}

func TestMediumEqual(t *testing.T) {
	assert.True(t, hardwareMedium(1, 2).Equal(hardwareMedium(1, 2)))
	assert.False(t, hardwareMedium(1, 2).Equal(hardwareMedium(1, 3)))
	assert.False(t, hardwareMedium(1, 2).Equal(sentinelStandard()))
}

func TestMediumIsSentinel(t *testing.T) {
	assert.True(t, sentinelNull().IsSentinel())
	assert.True(t, sentinelStandard().IsSentinel())
	assert.False(t, hardwareMedium(0, 0).IsSentinel())
}

func TestGetPinMedium(t *testing.T) {
	testMap := map[string]struct {
		mediums  []Medium
		err      error
		expected *Medium
	}{
		"first non-sentinel wins": {
			mediums:  []Medium{sentinelNull(), sentinelStandard(), hardwareMedium(1, 0), hardwareMedium(2, 0)},
			expected: func() *Medium { m := hardwareMedium(1, 0); return &m }(),
		},
		"all sentinels is no medium": {
			mediums: []Medium{sentinelNull(), sentinelStandard()},
		},
		"empty list is no medium": {},
		"query failure is no medium": {
			err: errQueryFailed,
		},
	}

	for name, tt := range testMap {
		t.Run(name, func(t *testing.T) {
			pin := &fakePin{mediums: tt.mediums, mediumsErr: tt.err}
			medium, err := GetPinMedium(pin)

			if tt.expected == nil {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, medium.Equal(*tt.expected))
		})
	}

	// exhausting a sentinel-only list is the normal negative result,
	// distinct from a failed query
	_, err := GetPinMedium(&fakePin{mediums: []Medium{sentinelStandard()}})
	assert.Equal(t, ErrNotFound, err)

	_, err = GetPinMedium(&fakePin{mediumsErr: errQueryFailed})
	assert.NotEqual(t, ErrNotFound, err)
	assert.Error(t, err)
}

func TestFindPinByMedium(t *testing.T) {
	target := hardwareMedium(3, 1)

	noMedium := &fakePin{mediums: []Medium{sentinelStandard()}}
	otherMedium := &fakePin{mediums: []Medium{hardwareMedium(4, 1)}}
	// sentinels before the real entry must not mask it
	matching := &fakePin{mediums: []Medium{sentinelNull(), target}}

	filter := &fakeFilter{pins: []*fakePin{noMedium, otherMedium, matching}}

	pin, err := FindPinByMedium(filter, target)
	require.NoError(t, err)
	assert.Equal(t, matching, pin)

	assert.Equal(t, 1, noMedium.released)
	assert.Equal(t, 1, otherMedium.released)
	assert.Equal(t, 0, matching.released)
}

func TestFindPinByMediumNeverMatchesSentinel(t *testing.T) {
	// a pin reporting only sentinels has no linkage, even when the
	// target equals one of its sentinel entries
	pin := &fakePin{mediums: []Medium{sentinelStandard()}}
	filter := &fakeFilter{pins: []*fakePin{pin}}

	_, err := FindPinByMedium(filter, sentinelStandard())
	assert.Equal(t, ErrNotFound, err)
}
