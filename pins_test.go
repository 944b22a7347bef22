package dshow

import (
	"testing"

	"github.com/go-ole/go-ole"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	typeVideo = ole.NewGUID("{73646976-0000-0010-8000-00AA00389B71}")
	typeAudio = ole.NewGUID("{73647561-0000-0010-8000-00AA00389B71}")

	categoryCapture = ole.NewGUID("{FB6C4281-0353-11D1-905F-0000C0CC16BA}")
	categoryPreview = ole.NewGUID("{FB6C4282-0353-11D1-905F-0000C0CC16BA}")
)

func TestPinHasMajorType(t *testing.T) {
	testMap := map[string]struct {
		pin      *fakePin
		major    *ole.GUID
		expected bool
	}{
		"capability list match": {
			&fakePin{capTypes: []ole.GUID{*typeAudio, *typeVideo}},
			typeVideo, true,
		},
		// the capability list wins even when the currently offered
		// media type is narrower
		"capability list overrides current type": {
			&fakePin{capTypes: []ole.GUID{*typeVideo}, first: typeAudio},
			typeVideo, true,
		},
		"fallback to first offered type": {
			&fakePin{capErr: errQueryFailed, first: typeVideo},
			typeVideo, true,
		},
		"empty capability list falls back": {
			&fakePin{first: typeVideo},
			typeVideo, true,
		},
		"no match anywhere": {
			&fakePin{capTypes: []ole.GUID{*typeAudio}, first: typeAudio},
			typeVideo, false,
		},
		"all queries fail": {
			&fakePin{capErr: errQueryFailed},
			typeVideo, false,
		},
	}

	for name, tt := range testMap {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PinHasMajorType(tt.pin, tt.major))
		})
	}

	assert.False(t, PinHasMajorType(nil, typeVideo))
}

func TestPinIsDirection(t *testing.T) {
	assert.True(t, PinIsDirection(&fakePin{dir: Output}, Output))
	assert.False(t, PinIsDirection(&fakePin{dir: Input}, Output))
	assert.False(t, PinIsDirection(&fakePin{dirErr: errQueryFailed}, Input))
	assert.False(t, PinIsDirection(nil, Input))
}

func TestPinIsCategory(t *testing.T) {
	assert.True(t, PinIsCategory(&fakePin{category: categoryCapture}, categoryCapture))
	assert.False(t, PinIsCategory(&fakePin{category: categoryPreview}, categoryCapture))

	// a pin with no category property at all matches any category
	assert.True(t, PinIsCategory(&fakePin{}, categoryCapture))
	assert.True(t, PinIsCategory(&fakePin{}, categoryPreview))

	assert.False(t, PinIsCategory(nil, categoryCapture))
}

func TestPinNameIs(t *testing.T) {
	assert.True(t, PinNameIs(&fakePin{name: "Capture"}, "Capture"))
	assert.False(t, PinNameIs(&fakePin{name: "Capture"}, "capture"))
	assert.True(t, PinNameIs(&fakePin{name: "Capture"}, ""))
	assert.False(t, PinNameIs(&fakePin{nameErr: errQueryFailed}, "Capture"))
	assert.False(t, PinNameIs(nil, ""))
}

func TestFindPinByType(t *testing.T) {
	match := &fakePin{dir: Output, capTypes: []ole.GUID{*typeVideo}, category: categoryCapture}
	wrongDir := &fakePin{dir: Input, capTypes: []ole.GUID{*typeVideo}, category: categoryCapture}
	wrongType := &fakePin{dir: Output, capTypes: []ole.GUID{*typeAudio}, category: categoryCapture}

	filter := &fakeFilter{pins: []*fakePin{wrongType, wrongDir, match}}

	pin, err := FindPinByType(filter, typeVideo, categoryCapture, Output)
	require.NoError(t, err)
	assert.Equal(t, match, pin)

	// rejected pins are released before the walk advances
	assert.Equal(t, 1, wrongType.released)
	assert.Equal(t, 1, wrongDir.released)
	assert.Equal(t, 0, match.released)
}

func TestFindPinByTypeDirectionMismatch(t *testing.T) {
	// a pin with the right major type but wrong direction is no match
	pins := []*fakePin{
		{dir: Input, capTypes: []ole.GUID{*typeVideo}, category: categoryCapture},
		{dir: Input, capTypes: []ole.GUID{*typeVideo}},
	}
	filter := &fakeFilter{pins: pins}

	_, err := FindPinByType(filter, typeVideo, categoryCapture, Output)
	assert.Equal(t, ErrNotFound, err)

	for _, p := range pins {
		assert.Equal(t, 1, p.released)
	}
}

func TestFindPinByName(t *testing.T) {
	capture := &fakePin{dir: Output, name: "Capture"}
	preview := &fakePin{dir: Output, name: "Preview"}
	filter := &fakeFilter{pins: []*fakePin{preview, capture}}

	pin, err := FindPinByName(filter, Output, "Capture")
	require.NoError(t, err)
	assert.Equal(t, capture, pin)
	assert.Equal(t, 1, preview.released)

	// empty name takes the first pin with the right direction
	preview2 := &fakePin{dir: Output, name: "Preview"}
	filter = &fakeFilter{pins: []*fakePin{preview2, capture}}
	pin, err = FindPinByName(filter, Output, "")
	require.NoError(t, err)
	assert.Equal(t, preview2, pin)
}

func TestFindPinEnumerationFailure(t *testing.T) {
	_, err := FindPin(&fakeFilter{enumErr: errQueryFailed}, func(Pin) bool { return true })
	assert.Equal(t, ErrNotFound, err)

	_, err = FindPin(nil, func(Pin) bool { return true })
	assert.Equal(t, ErrNotFound, err)
}
