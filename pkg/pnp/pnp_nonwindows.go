// +build !windows

package pnp

import (
	"github.com/pkg/errors"
)

// Lookup needs WMI and is only available on windows.
func Lookup(devicePath string) (*EntityInfo, error) {
	return nil, errors.New("pnp: lookup is only supported on windows")
}
