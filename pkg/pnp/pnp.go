// Package pnp looks up plug-and-play hardware details for a resolved
// device, keyed by the device path the moniker enumeration reports.
package pnp

import (
	"strings"
)

// EntityInfo is the subset of Win32_PnPEntity worth showing next to a
// resolved device.
type EntityInfo struct {
	Name         string
	Description  string
	Manufacturer string
	PNPDeviceID  string
}

// InstanceID derives the PnP device instance ID from a DirectShow
// device path. Paths look like
// \\?\usb#vid_046d&pid_0825&mi_00#6&2c7&0&0000#{guid}\global:
// strip the prefix, drop the interface-class GUID suffix and turn the
// '#' separators back into backslashes.
func InstanceID(devicePath string) string {
	p := devicePath
	for _, prefix := range []string{`\\?\`, `\\.\`} {
		if strings.HasPrefix(p, prefix) {
			p = p[len(prefix):]
			break
		}
	}

	if i := strings.Index(p, "#{"); i >= 0 {
		p = p[:i]
	}

	p = strings.ReplaceAll(p, "#", `\`)
	return strings.ToUpper(p)
}
