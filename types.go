package dshow

import (
	"github.com/go-ole/go-ole"
	"github.com/pkg/errors"
)

// Direction is the data flow direction of a pin.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

var (
	// ErrNotFound is the normal negative result of a resolution: no
	// candidate satisfied the criteria.
	ErrNotFound = errors.New("dshow: not found")

	// ErrDone signals the end of an enumeration from Next().
	ErrDone = errors.New("dshow: enumeration finished")

	// ErrNoCategory is returned by Pin.Category for pins that expose no
	// category property at all.
	ErrNoCategory = errors.New("dshow: pin has no category property")
)

// Filter is an owned, reference-counted handle to a device filter.
// Whoever holds a Filter must Release it exactly once, unless ownership
// is handed off explicitly.
type Filter interface {
	// EnumPins starts a pin enumeration in filter-defined order.
	EnumPins() (PinEnum, error)
	Release()
}

// Pin is an owned handle to a connection point on a filter. Each method
// is a narrow read-only query against the underlying platform object.
type Pin interface {
	Direction() (Direction, error)
	Name() (string, error)

	// Category returns the pin's category property, or ErrNoCategory
	// when the pin exposes no property set.
	Category() (ole.GUID, error)

	// StreamCapTypes returns the major types listed in the pin's
	// stream-configuration capability list.
	StreamCapTypes() ([]ole.GUID, error)

	// FirstMediaType returns the major type of the first media type the
	// pin currently offers.
	FirstMediaType() (ole.GUID, error)

	// Mediums returns the pin's raw driver-level medium list, sentinels
	// included.
	Mediums() ([]Medium, error)

	Release()
}

// PinEnum yields owned pins. Next returns ErrDone at the end of the
// collection; callers release every pin they do not keep.
type PinEnum interface {
	Next() (Pin, error)
	Release()
}

// VisitFunc is called once per registered device of a class. Ownership
// of filter transfers to the visitor, which must release it unless it
// keeps it. Returning false stops the enumeration.
type VisitFunc func(filter Filter, name, path string) bool

// DeviceEnumerator visits every registered filter of a device class,
// instantiated and paired with its friendly name and device path.
type DeviceEnumerator interface {
	EnumDevices(class ole.GUID, visit VisitFunc) error
}

// Moniker is a bindable reference to a not-yet-instantiated filter.
// Binding may fail independently per moniker.
type Moniker interface {
	Bind() (Filter, error)
	Release()
}

// MonikerEnum yields owned monikers; Next returns ErrDone at the end.
type MonikerEnum interface {
	Next() (Moniker, error)
	Release()
}

// MonikerEnumerator yields the registered monikers of a device class.
type MonikerEnumerator interface {
	EnumMonikers(class ole.GUID) (MonikerEnum, error)
}
