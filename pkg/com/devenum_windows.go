// +build windows

package com

import (
	"unsafe"

	"github.com/go-ole/go-ole"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"

	"github.com/mediabind/dshow"
)

var log = logrus.WithField("package", "com")

// SystemDeviceEnum drives the CLSID_SystemDeviceEnum object. It
// implements both dshow.DeviceEnumerator and dshow.MonikerEnumerator.
// COM must be initialized on the calling thread (ole.CoInitializeEx)
// before use.
type SystemDeviceEnum struct{}

func NewSystemDeviceEnum() *SystemDeviceEnum {
	return &SystemDeviceEnum{}
}

func createClassEnumerator(class ole.GUID) (*iEnumMoniker, error) {
	unk, err := ole.CreateInstance(clsidSystemDeviceEnum, iidICreateDevEnum)
	if err != nil {
		return nil, errors.Wrap(err, "create system device enumerator")
	}
	devEnum := (*iCreateDevEnum)(unsafe.Pointer(unk))
	defer devEnum.Release()

	enum, err := devEnum.CreateClassEnumerator(&class)
	if err != nil {
		return nil, errors.Wrap(err, "create class enumerator")
	}
	if enum != nil {
		enum.Reset()
	}
	return enum, nil
}

// EnumDevices instantiates every registered filter of class and hands
// it to visit along with its friendly name and device path. Ownership
// of each filter transfers to the visitor. Monikers that cannot be
// bound are skipped.
func (SystemDeviceEnum) EnumDevices(class ole.GUID, visit dshow.VisitFunc) error {
	enum, err := createClassEnumerator(class)
	if err != nil {
		return err
	}
	if enum == nil {
		// no devices registered under this class
		return nil
	}
	defer enum.Release()

	for {
		mon, err := enum.Next()
		if err != nil {
			return errors.Wrap(err, "moniker enumeration")
		}
		if mon == nil {
			return nil
		}

		name, path := readMonikerProperties(mon)

		var raw *iBaseFilter
		err = mon.BindToObject(iidIBaseFilter, unsafe.Pointer(&raw))
		mon.Release()
		if err != nil {
			log.WithError(err).Warnf("skipping device %q: bind failed", name)
			continue
		}

		if !visit(&filter{raw: raw}, name, path) {
			return nil
		}
	}
}

// EnumMonikers yields the registered monikers of class without binding
// them. An empty class yields an enumeration that is immediately done.
func (SystemDeviceEnum) EnumMonikers(class ole.GUID) (dshow.MonikerEnum, error) {
	enum, err := createClassEnumerator(class)
	if err != nil {
		return nil, err
	}
	return &monikerEnum{raw: enum}, nil
}

// readMonikerProperties pulls FriendlyName and DevicePath from the
// moniker's property bag. Either may be absent; audio devices in
// particular often carry no path.
func readMonikerProperties(mon *iMoniker) (name, path string) {
	var bag *iPropertyBag
	if err := mon.BindToStorage(iidIPropertyBag, unsafe.Pointer(&bag)); err != nil {
		log.WithError(err).Debug("moniker has no property bag")
		return "", ""
	}
	defer bag.Release()

	name, err := bag.ReadString("FriendlyName")
	if err != nil {
		log.WithError(err).Debug("device has no FriendlyName")
	}
	path, err = bag.ReadString("DevicePath")
	if err != nil {
		path = ""
	}
	return name, path
}

// ---- dshow.MonikerEnum / dshow.Moniker ----

type monikerEnum struct {
	raw *iEnumMoniker
}

func (e *monikerEnum) Next() (dshow.Moniker, error) {
	if e.raw == nil {
		return nil, dshow.ErrDone
	}
	mon, err := e.raw.Next()
	if err != nil {
		return nil, errors.Wrap(err, "moniker enumeration")
	}
	if mon == nil {
		return nil, dshow.ErrDone
	}
	return &moniker{raw: mon}, nil
}

func (e *monikerEnum) Release() {
	if e.raw != nil {
		e.raw.Release()
		e.raw = nil
	}
}

type moniker struct {
	raw *iMoniker
}

func (m *moniker) Bind() (dshow.Filter, error) {
	var raw *iBaseFilter
	if err := m.raw.BindToObject(iidIBaseFilter, unsafe.Pointer(&raw)); err != nil {
		return nil, errors.Wrap(err, "bind moniker to filter")
	}
	return &filter{raw: raw}, nil
}

func (m *moniker) Release() {
	m.raw.Release()
}

// ---- dshow.Filter ----

type filter struct {
	raw *iBaseFilter
}

func (f *filter) EnumPins() (dshow.PinEnum, error) {
	enum, err := f.raw.EnumPins()
	if err != nil {
		return nil, errors.Wrap(err, "EnumPins")
	}
	return &pinEnum{raw: enum}, nil
}

func (f *filter) Release() {
	f.raw.Release()
}

type pinEnum struct {
	raw *iEnumPins
}

func (e *pinEnum) Next() (dshow.Pin, error) {
	p, err := e.raw.Next()
	if err != nil {
		return nil, errors.Wrap(err, "pin enumeration")
	}
	if p == nil {
		return nil, dshow.ErrDone
	}
	return &pin{raw: p}, nil
}

func (e *pinEnum) Release() {
	e.raw.Release()
}

// ---- dshow.Pin ----

type pin struct {
	raw *iPin
}

func (p *pin) Direction() (dshow.Direction, error) {
	dir, err := p.raw.QueryDirection()
	if err != nil {
		return 0, errors.Wrap(err, "QueryDirection")
	}
	if dir == 0 {
		return dshow.Input, nil
	}
	return dshow.Output, nil
}

func (p *pin) Name() (string, error) {
	var info pinInfo
	if err := p.raw.QueryPinInfo(&info); err != nil {
		return "", errors.Wrap(err, "QueryPinInfo")
	}
	if info.Filter != 0 {
		(*ole.IUnknown)(unsafe.Pointer(info.Filter)).Release()
	}
	return windows.UTF16ToString(info.Name[:]), nil
}

func (p *pin) Category() (ole.GUID, error) {
	var props *iKsPropertySet
	err := queryInterface(&p.raw.IUnknown, iidIKsPropertySet, unsafe.Pointer(&props))
	if err != nil {
		if hr, ok := err.(HRESULT); ok && hr == ENoInterface {
			return ole.GUID{}, dshow.ErrNoCategory
		}
		return ole.GUID{}, errors.Wrap(err, "query IKsPropertySet")
	}
	defer props.Release()

	var category ole.GUID
	err = props.Get(ampropsetidPin, ampropertyPinCategory,
		unsafe.Pointer(&category), uint32(unsafe.Sizeof(category)))
	if err != nil {
		return ole.GUID{}, errors.Wrap(err, "get pin category")
	}
	return category, nil
}

func (p *pin) StreamCapTypes() ([]ole.GUID, error) {
	var config *iAMStreamConfig
	err := queryInterface(&p.raw.IUnknown, iidIAMStreamConfig, unsafe.Pointer(&config))
	if err != nil {
		return nil, errors.Wrap(err, "query IAMStreamConfig")
	}
	defer config.Release()

	count, size, err := config.GetNumberOfCapabilities()
	if err != nil {
		return nil, errors.Wrap(err, "GetNumberOfCapabilities")
	}
	if count <= 0 || size <= 0 {
		return nil, nil
	}

	caps := make([]byte, size)
	types := make([]ole.GUID, 0, count)
	for i := int32(0); i < count; i++ {
		mt, err := config.GetStreamCaps(i, caps)
		if err != nil {
			continue
		}
		types = append(types, mt.MajorType)
		deleteMediaType(mt)
	}
	return types, nil
}

func (p *pin) FirstMediaType() (ole.GUID, error) {
	enum, err := p.raw.EnumMediaTypes()
	if err != nil {
		return ole.GUID{}, errors.Wrap(err, "EnumMediaTypes")
	}
	defer enum.Release()

	mt, err := enum.Next()
	if err != nil {
		return ole.GUID{}, errors.Wrap(err, "media type enumeration")
	}
	if mt == nil {
		return ole.GUID{}, errors.New("pin offers no media types")
	}
	major := mt.MajorType
	deleteMediaType(mt)
	return major, nil
}

func (p *pin) Mediums() ([]dshow.Medium, error) {
	var ksPin *iKsPin
	err := queryInterface(&p.raw.IUnknown, iidIKsPin, unsafe.Pointer(&ksPin))
	if err != nil {
		return nil, errors.Wrap(err, "query IKsPin")
	}
	defer ksPin.Release()

	items, err := ksPin.KsQueryMediums()
	if err != nil {
		return nil, errors.Wrap(err, "KsQueryMediums")
	}
	defer ole.CoTaskMemFree(uintptr(unsafe.Pointer(items)))

	mediums := make([]dshow.Medium, 0, items.Count)
	cur := uintptr(unsafe.Pointer(items)) + unsafe.Sizeof(*items)
	for i := uint32(0); i < items.Count; i++ {
		raw := (*regPinMedium)(unsafe.Pointer(cur))
		mediums = append(mediums, dshow.Medium{
			Class:     raw.Class,
			Instance1: raw.Instance1,
			Instance2: raw.Instance2,
		})
		cur += unsafe.Sizeof(*raw)
	}
	return mediums, nil
}

func (p *pin) Release() {
	p.raw.Release()
}
