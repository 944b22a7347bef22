package pnp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstanceID(t *testing.T) {
	testMap := map[string]struct {
		path     string
		expected string
	}{
		"usb capture device": {
			path:     `\\?\usb#vid_046d&pid_0825&mi_00#6&2c7&0&0000#{65e8773d-8f56-11d0-a3b9-00a0c9223196}\global`,
			expected: `USB\VID_046D&PID_0825&MI_00\6&2C7&0&0000`,
		},
		"dot prefix": {
			path:     `\\.\root#media#0000#{65e8773d-8f56-11d0-a3b9-00a0c9223196}`,
			expected: `ROOT\MEDIA\0000`,
		},
		"no prefix or suffix": {
			path:     `pci#ven_8086`,
			expected: `PCI\VEN_8086`,
		},
		"empty": {
			path:     "",
			expected: "",
		},
	}

	for name, tt := range testMap {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InstanceID(tt.path))
		})
	}
}
