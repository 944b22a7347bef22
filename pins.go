package dshow

import (
	"github.com/go-ole/go-ole"
)

// pinConfigHasMajorType checks the pin's stream-configuration
// capability list for an entry with the given major type.
func pinConfigHasMajorType(pin Pin, major *ole.GUID) bool {
	types, err := pin.StreamCapTypes()
	if err != nil {
		return false
	}

	for i := range types {
		if ole.IsEqualGUID(&types[i], major) {
			return true
		}
	}

	return false
}

// PinHasMajorType reports whether the pin carries the given major type.
// The capability list is consulted first: a pin not yet configured may
// offer a single current media type narrower than what it is capable
// of, and the capability list avoids a false negative in that case.
func PinHasMajorType(pin Pin, major *ole.GUID) bool {
	if pin == nil {
		return false
	}

	if pinConfigHasMajorType(pin, major) {
		return true
	}

	mt, err := pin.FirstMediaType()
	if err != nil {
		return false
	}

	return ole.IsEqualGUID(&mt, major)
}

// PinIsDirection reports whether the pin flows in the given direction.
func PinIsDirection(pin Pin, dir Direction) bool {
	if pin == nil {
		return false
	}

	pinDir, err := pin.Direction()
	return err == nil && pinDir == dir
}

// PinIsCategory reports whether the pin belongs to the given category.
// A pin exposing no category property at all is an automatic match:
// pins we created ourselves (software render pins) carry no category
// and must not be excluded from inputs they originated from.
func PinIsCategory(pin Pin, category *ole.GUID) bool {
	if pin == nil {
		return false
	}

	pinCategory, err := pin.Category()
	if err != nil {
		return err == ErrNoCategory
	}

	return ole.IsEqualGUID(&pinCategory, category)
}

// PinNameIs reports whether the pin's display name equals name exactly.
// An empty name matches any pin.
func PinNameIs(pin Pin, name string) bool {
	if pin == nil {
		return false
	}
	if name == "" {
		return true
	}

	pinName, err := pin.Name()
	return err == nil && pinName == name
}

func pinMatches(pin Pin, major, category *ole.GUID, dir Direction) bool {
	if !PinHasMajorType(pin, major) {
		return false
	}
	if !PinIsDirection(pin, dir) {
		return false
	}
	if !PinIsCategory(pin, category) {
		return false
	}

	return true
}

// FindPin walks the filter's pins in filter-defined order and returns
// the first one match accepts, transferring ownership to the caller.
// Rejected pins are released before the walk advances. Enumeration
// failure and exhaustion both yield ErrNotFound.
func FindPin(filter Filter, match func(Pin) bool) (Pin, error) {
	if filter == nil {
		return nil, ErrNotFound
	}

	pins, err := filter.EnumPins()
	if err != nil {
		log.WithError(err).Debug("pin enumeration failed")
		return nil, ErrNotFound
	}
	defer pins.Release()

	for {
		pin, err := pins.Next()
		if err != nil {
			return nil, ErrNotFound
		}

		if match(pin) {
			return pin, nil
		}

		pin.Release()
	}
}

// FindPinByType returns the first pin matching the major type, category
// and direction.
func FindPinByType(filter Filter, major, category *ole.GUID, dir Direction) (Pin, error) {
	return FindPin(filter, func(pin Pin) bool {
		return pinMatches(pin, major, category, dir)
	})
}

// FindPinByName returns the first pin with the given direction and
// exact display name. An empty name matches the first pin with the
// given direction.
func FindPinByName(filter Filter, dir Direction, name string) (Pin, error) {
	return FindPin(filter, func(pin Pin) bool {
		return PinIsDirection(pin, dir) && PinNameIs(pin, name)
	})
}

// FindPinByMedium returns the first pin whose extracted medium equals
// medium, per GetPinMedium semantics.
func FindPinByMedium(filter Filter, medium Medium) (Pin, error) {
	return FindPin(filter, func(pin Pin) bool {
		pinMedium, err := GetPinMedium(pin)
		return err == nil && pinMedium.Equal(medium)
	})
}
