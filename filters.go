package dshow

import (
	"github.com/go-ole/go-ole"

	"github.com/mediabind/dshow/pkg/common"
)

// ResolveDeviceFilter visits every registered filter of class and
// returns the one matching name and path. A set name must match
// exactly; a candidate matching name but not a set path is kept as a
// tentative result while the traversal keeps looking for a candidate
// matching both. The traversal stops at the first full match and
// otherwise returns the last name-matching candidate seen. This
// accommodates duplicate device names distinguished only by path.
func ResolveDeviceFilter(enum DeviceEnumerator, class ole.GUID, name, path string) (Filter, error) {
	var tentative Filter

	err := enum.EnumDevices(class, func(filter Filter, devName, devPath string) bool {
		if name != "" && devName != name {
			filter.Release()
			return true
		}

		if tentative != nil {
			tentative.Release()
		}
		tentative = filter

		// keep going unless the path matches too
		if devPath == "" || path == "" || devPath != path {
			return true
		}

		return false
	})
	if err != nil {
		log.WithError(err).Warn("device enumeration failed")
		if tentative != nil {
			tentative.Release()
		}
		return nil, ErrNotFound
	}

	if tentative == nil {
		return nil, ErrNotFound
	}

	return tentative, nil
}

// ResolveFilterByMedium enumerates every registered filter of class,
// binds each moniker and returns the first filter exposing a pin whose
// extracted medium equals medium. A moniker that fails to bind is
// skipped; only exhausting all candidates yields ErrNotFound.
func ResolveFilterByMedium(enum MonikerEnumerator, class ole.GUID, medium Medium) (Filter, error) {
	monikers, err := enum.EnumMonikers(class)
	if err != nil {
		log.WithError(err).Warn("failed to create class enumerator")
		return nil, ErrNotFound
	}
	defer monikers.Release()

	var failures common.ErrorCollector

	for {
		moniker, err := monikers.Next()
		if err != nil {
			break
		}

		filter, err := filterByMediumFromMoniker(moniker, medium, &failures)
		moniker.Release()

		if err == nil {
			return filter, nil
		}
	}

	if failures.HasErrors() {
		log.Debugf("medium %s not resolved, skipped candidates: %s", medium, failures.String())
	}

	return nil, ErrNotFound
}

func filterByMediumFromMoniker(moniker Moniker, medium Medium, failures *common.ErrorCollector) (Filter, error) {
	filter, err := moniker.Bind()
	if err != nil {
		log.WithError(err).Warn("failed to bind moniker to filter")
		failures.New(err)
		return nil, ErrNotFound
	}

	pin, err := FindPinByMedium(filter, medium)
	if err != nil {
		filter.Release()
		return nil, ErrNotFound
	}

	// only the filter is handed back
	pin.Release()
	return filter, nil
}
