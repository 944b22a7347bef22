package dshow

import (
	"github.com/go-ole/go-ole"
)

// Selector describes what a caller wants to bind to. Every field is
// optional; an unset field does not filter on that dimension.
type Selector struct {
	DeviceName string
	DevicePath string

	MajorType *ole.GUID
	Category  *ole.GUID
	Direction *Direction
	PinName   string
}

// InDirection returns a copy of the selector constrained to dir.
func (s Selector) InDirection(dir Direction) Selector {
	s.Direction = &dir
	return s
}

func (s Selector) wantsPin() bool {
	return s.MajorType != nil || s.Category != nil || s.Direction != nil || s.PinName != ""
}

// MatchPin evaluates the selector's pin dimensions against a single
// pin. Unset dimensions always match.
func (s Selector) MatchPin(pin Pin) bool {
	if pin == nil {
		return false
	}
	if s.MajorType != nil && !PinHasMajorType(pin, s.MajorType) {
		return false
	}
	if s.Direction != nil && !PinIsDirection(pin, *s.Direction) {
		return false
	}
	if s.Category != nil && !PinIsCategory(pin, s.Category) {
		return false
	}
	if s.PinName != "" && !PinNameIs(pin, s.PinName) {
		return false
	}

	return true
}

// Resolve picks the device filter of class matching the selector's
// device dimensions, then, if any pin dimension is set, the first
// matching pin on it. Ownership of both returned handles transfers to
// the caller; pin is nil when the selector names no pin dimension.
func Resolve(enum DeviceEnumerator, class ole.GUID, sel Selector) (Filter, Pin, error) {
	filter, err := ResolveDeviceFilter(enum, class, sel.DeviceName, sel.DevicePath)
	if err != nil {
		return nil, nil, err
	}

	if !sel.wantsPin() {
		return filter, nil, nil
	}

	pin, err := FindPin(filter, sel.MatchPin)
	if err != nil {
		filter.Release()
		return nil, nil, err
	}

	return filter, pin, nil
}
