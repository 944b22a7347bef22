package dshow

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/pkg/errors"
)

// KSMEDIUMSETID_Standard. Together with the null GUID it marks a
// medium entry that carries no real hardware linkage.
var mediumSetIDStandard = ole.NewGUID("{4747B320-62CE-11CF-A5D6-28DB04C10000}")

// Medium is a driver-level token linking two devices' pins below the
// filter graph, mirroring REGPINMEDIUM: a class GUID and two instance
// numbers.
type Medium struct {
	Class     ole.GUID
	Instance1 uint32
	Instance2 uint32
}

// Equal reports field-wise equality.
func (m Medium) Equal(other Medium) bool {
	return ole.IsEqualGUID(&m.Class, &other.Class) &&
		m.Instance1 == other.Instance1 &&
		m.Instance2 == other.Instance2
}

// IsSentinel reports whether the medium's class is one of the two
// "don't care" values. Sentinel mediums must never be used as a match
// target.
func (m Medium) IsSentinel() bool {
	return ole.IsEqualGUID(&m.Class, ole.IID_NULL) ||
		ole.IsEqualGUID(&m.Class, mediumSetIDStandard)
}

func (m Medium) String() string {
	return fmt.Sprintf("%s:%d:%d", m.Class.String(), m.Instance1, m.Instance2)
}

// GetPinMedium returns the first non-sentinel medium the pin reports.
// A pin whose medium list holds only sentinels has no linkage and
// yields ErrNotFound; a failed query yields the underlying error.
// Callers treat both as "no medium".
func GetPinMedium(pin Pin) (Medium, error) {
	mediums, err := pin.Mediums()
	if err != nil {
		log.WithError(err).Debug("pin medium query failed")
		return Medium{}, errors.Wrap(err, "query pin mediums")
	}

	for _, m := range mediums {
		if !m.IsSentinel() {
			return m, nil
		}
	}

	return Medium{}, ErrNotFound
}
