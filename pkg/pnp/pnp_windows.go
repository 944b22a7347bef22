// +build windows

package pnp

import (
	"strings"

	"github.com/StackExchange/wmi"
	"github.com/pkg/errors"
)

type win32_PnPEntity struct {
	Name         string
	Description  string
	Manufacturer string
	PNPDeviceID  string
}

// Lookup queries Win32_PnPEntity for the device behind devicePath.
func Lookup(devicePath string) (*EntityInfo, error) {
	id := InstanceID(devicePath)
	if id == "" {
		return nil, errors.New("pnp: empty device path")
	}

	var dst []win32_PnPEntity
	q := wmi.CreateQuery(&dst, "WHERE PNPDeviceID = '"+strings.ReplaceAll(id, `\`, `\\`)+"'")
	if err := wmi.Query(q, &dst); err != nil {
		return nil, errors.Wrap(err, "pnp: query Win32_PnPEntity")
	}

	if len(dst) == 0 {
		return nil, errors.Errorf("pnp: no entity for instance id %s", id)
	}

	e := dst[0]
	return &EntityInfo{
		Name:         e.Name,
		Description:  e.Description,
		Manufacturer: e.Manufacturer,
		PNPDeviceID:  e.PNPDeviceID,
	}, nil
}
