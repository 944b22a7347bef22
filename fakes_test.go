package dshow

import (
	"github.com/go-ole/go-ole"
	"github.com/pkg/errors"
)

var errQueryFailed = errors.New("query failed")

// fakePin implements Pin with canned answers and counts releases so
// tests can verify the ownership discipline.
type fakePin struct {
	name       string
	nameErr    error
	dir        Direction
	dirErr     error
	category   *ole.GUID // nil means no category property at all
	capTypes   []ole.GUID
	capErr     error
	first      *ole.GUID // nil means the media type query fails
	mediums    []Medium
	mediumsErr error

	released int
}

func (p *fakePin) Direction() (Direction, error) {
	if p.dirErr != nil {
		return 0, p.dirErr
	}
	return p.dir, nil
}

func (p *fakePin) Name() (string, error) {
	if p.nameErr != nil {
		return "", p.nameErr
	}
	return p.name, nil
}

func (p *fakePin) Category() (ole.GUID, error) {
	if p.category == nil {
		return ole.GUID{}, ErrNoCategory
	}
	return *p.category, nil
}

func (p *fakePin) StreamCapTypes() ([]ole.GUID, error) {
	if p.capErr != nil {
		return nil, p.capErr
	}
	return p.capTypes, nil
}

func (p *fakePin) FirstMediaType() (ole.GUID, error) {
	if p.first == nil {
		return ole.GUID{}, errQueryFailed
	}
	return *p.first, nil
}

func (p *fakePin) Mediums() ([]Medium, error) {
	if p.mediumsErr != nil {
		return nil, p.mediumsErr
	}
	return p.mediums, nil
}

func (p *fakePin) Release() {
	p.released++
}

type fakeFilter struct {
	pins     []*fakePin
	enumErr  error
	released int
}

func (f *fakeFilter) EnumPins() (PinEnum, error) {
	if f.enumErr != nil {
		return nil, f.enumErr
	}
	return &fakePinEnum{pins: f.pins}, nil
}

func (f *fakeFilter) Release() {
	f.released++
}

type fakePinEnum struct {
	pins     []*fakePin
	next     int
	released int
}

func (e *fakePinEnum) Next() (Pin, error) {
	if e.next >= len(e.pins) {
		return nil, ErrDone
	}
	p := e.pins[e.next]
	e.next++
	return p, nil
}

func (e *fakePinEnum) Release() {
	e.released++
}

// fakeDeviceEnum implements DeviceEnumerator over a fixed candidate
// list.
type fakeDevice struct {
	filter *fakeFilter
	name   string
	path   string
}

type fakeDeviceEnum struct {
	devices []fakeDevice
	err     error
}

func (e *fakeDeviceEnum) EnumDevices(class ole.GUID, visit VisitFunc) error {
	if e.err != nil {
		return e.err
	}
	for _, d := range e.devices {
		if !visit(d.filter, d.name, d.path) {
			return nil
		}
	}
	return nil
}

// fakeMonikerEnum implements MonikerEnumerator; a moniker with bindErr
// set fails to instantiate.
type fakeMoniker struct {
	filter   *fakeFilter
	bindErr  error
	released int
}

func (m *fakeMoniker) Bind() (Filter, error) {
	if m.bindErr != nil {
		return nil, m.bindErr
	}
	return m.filter, nil
}

func (m *fakeMoniker) Release() {
	m.released++
}

type fakeMonikerEnum struct {
	monikers []*fakeMoniker
	next     int
	released int
}

func (e *fakeMonikerEnum) Next() (Moniker, error) {
	if e.next >= len(e.monikers) {
		return nil, ErrDone
	}
	m := e.monikers[e.next]
	e.next++
	return m, nil
}

func (e *fakeMonikerEnum) Release() {
	e.released++
}

type fakeClassEnum struct {
	enum *fakeMonikerEnum
	err  error
}

func (e *fakeClassEnum) EnumMonikers(class ole.GUID) (MonikerEnum, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.enum, nil
}
