// +build windows

package com

import (
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

// Raw DirectShow interface wrappers in the go-ole custom-interface
// style: each type embeds ole.IUnknown and exposes only the vtable
// methods the resolution code needs. Vtable layouts are fixed by the
// COM ABI and must list every method of every inherited interface in
// declaration order.

func queryInterface(unk *ole.IUnknown, iid *ole.GUID, out unsafe.Pointer) error {
	r, _, _ := syscall.Syscall(unk.VTable().QueryInterface, 3,
		uintptr(unsafe.Pointer(unk)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(out))
	if HRESULT(r).Failed() {
		return HRESULT(r)
	}
	return nil
}

// ---- ICreateDevEnum ----

type iCreateDevEnum struct{ ole.IUnknown }

type iCreateDevEnumVtbl struct {
	ole.IUnknownVtbl
	CreateClassEnumerator uintptr
}

func (v *iCreateDevEnum) vtbl() *iCreateDevEnumVtbl {
	return (*iCreateDevEnumVtbl)(unsafe.Pointer(v.RawVTable))
}

// CreateClassEnumerator returns (nil, nil) for an empty device class;
// the enumerator reports S_FALSE in that case instead of failing.
func (v *iCreateDevEnum) CreateClassEnumerator(class *ole.GUID) (*iEnumMoniker, error) {
	var enum *iEnumMoniker
	r, _, _ := syscall.Syscall6(v.vtbl().CreateClassEnumerator, 4,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(class)),
		uintptr(unsafe.Pointer(&enum)),
		0, 0, 0)
	if HRESULT(r).Failed() {
		return nil, HRESULT(r)
	}
	if HRESULT(r) == sFalse || enum == nil {
		return nil, nil
	}
	return enum, nil
}

// ---- IEnumMoniker ----

type iEnumMoniker struct{ ole.IUnknown }

type iEnumMonikerVtbl struct {
	ole.IUnknownVtbl
	Next  uintptr
	Skip  uintptr
	Reset uintptr
	Clone uintptr
}

func (v *iEnumMoniker) vtbl() *iEnumMonikerVtbl {
	return (*iEnumMonikerVtbl)(unsafe.Pointer(v.RawVTable))
}

// Next returns (nil, nil) once the sequence is exhausted.
func (v *iEnumMoniker) Next() (*iMoniker, error) {
	var mon *iMoniker
	var fetched uint32
	r, _, _ := syscall.Syscall6(v.vtbl().Next, 4,
		uintptr(unsafe.Pointer(v)),
		1,
		uintptr(unsafe.Pointer(&mon)),
		uintptr(unsafe.Pointer(&fetched)),
		0, 0)
	if HRESULT(r).Failed() {
		return nil, HRESULT(r)
	}
	if HRESULT(r) != sOK || fetched == 0 {
		return nil, nil
	}
	return mon, nil
}

func (v *iEnumMoniker) Reset() {
	syscall.Syscall(v.vtbl().Reset, 1, uintptr(unsafe.Pointer(v)), 0, 0)
}

// ---- IMoniker ----

type iMoniker struct{ ole.IUnknown }

type iMonikerVtbl struct {
	ole.IUnknownVtbl
	// IPersist
	GetClassID uintptr
	// IPersistStream
	IsDirty    uintptr
	Load       uintptr
	Save       uintptr
	GetSizeMax uintptr
	// IMoniker
	BindToObject        uintptr
	BindToStorage       uintptr
	Reduce              uintptr
	ComposeWith         uintptr
	Enum                uintptr
	IsEqual             uintptr
	Hash                uintptr
	IsRunning           uintptr
	GetTimeOfLastChange uintptr
	Inverse             uintptr
	CommonPrefixWith    uintptr
	RelativePathTo      uintptr
	GetDisplayName      uintptr
	ParseDisplayName    uintptr
	IsSystemMoniker     uintptr
}

func (v *iMoniker) vtbl() *iMonikerVtbl {
	return (*iMonikerVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *iMoniker) BindToObject(iid *ole.GUID, out unsafe.Pointer) error {
	r, _, _ := syscall.Syscall6(v.vtbl().BindToObject, 5,
		uintptr(unsafe.Pointer(v)),
		0, // bind context
		0, // moniker to the left
		uintptr(unsafe.Pointer(iid)),
		uintptr(out),
		0)
	if HRESULT(r).Failed() {
		return HRESULT(r)
	}
	return nil
}

func (v *iMoniker) BindToStorage(iid *ole.GUID, out unsafe.Pointer) error {
	r, _, _ := syscall.Syscall6(v.vtbl().BindToStorage, 5,
		uintptr(unsafe.Pointer(v)),
		0,
		0,
		uintptr(unsafe.Pointer(iid)),
		uintptr(out),
		0)
	if HRESULT(r).Failed() {
		return HRESULT(r)
	}
	return nil
}

// ---- IPropertyBag ----

type iPropertyBag struct{ ole.IUnknown }

type iPropertyBagVtbl struct {
	ole.IUnknownVtbl
	Read  uintptr
	Write uintptr
}

func (v *iPropertyBag) vtbl() *iPropertyBagVtbl {
	return (*iPropertyBagVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *iPropertyBag) ReadString(prop string) (string, error) {
	name, err := windows.UTF16PtrFromString(prop)
	if err != nil {
		return "", err
	}

	var variant ole.VARIANT
	ole.VariantInit(&variant)

	r, _, _ := syscall.Syscall6(v.vtbl().Read, 4,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(&variant)),
		0, // error log
		0, 0)
	if HRESULT(r).Failed() {
		return "", HRESULT(r)
	}
	defer func() { _ = ole.VariantClear(&variant) }()

	return variant.ToString(), nil
}

// ---- IBaseFilter ----

type iBaseFilter struct{ ole.IUnknown }

type iBaseFilterVtbl struct {
	ole.IUnknownVtbl
	// IPersist
	GetClassID uintptr
	// IMediaFilter
	Stop          uintptr
	Pause         uintptr
	Run           uintptr
	GetState      uintptr
	SetSyncSource uintptr
	GetSyncSource uintptr
	// IBaseFilter
	EnumPins        uintptr
	FindPin         uintptr
	QueryFilterInfo uintptr
	JoinFilterGraph uintptr
	QueryVendorInfo uintptr
}

func (v *iBaseFilter) vtbl() *iBaseFilterVtbl {
	return (*iBaseFilterVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *iBaseFilter) EnumPins() (*iEnumPins, error) {
	var enum *iEnumPins
	r, _, _ := syscall.Syscall(v.vtbl().EnumPins, 2,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&enum)),
		0)
	if HRESULT(r).Failed() {
		return nil, HRESULT(r)
	}
	return enum, nil
}

// ---- IEnumPins ----

type iEnumPins struct{ ole.IUnknown }

type iEnumPinsVtbl struct {
	ole.IUnknownVtbl
	Next  uintptr
	Skip  uintptr
	Reset uintptr
	Clone uintptr
}

func (v *iEnumPins) vtbl() *iEnumPinsVtbl {
	return (*iEnumPinsVtbl)(unsafe.Pointer(v.RawVTable))
}

// Next returns (nil, nil) once the pin collection is exhausted.
func (v *iEnumPins) Next() (*iPin, error) {
	var p *iPin
	var fetched uint32
	r, _, _ := syscall.Syscall6(v.vtbl().Next, 4,
		uintptr(unsafe.Pointer(v)),
		1,
		uintptr(unsafe.Pointer(&p)),
		uintptr(unsafe.Pointer(&fetched)),
		0, 0)
	if HRESULT(r).Failed() {
		return nil, HRESULT(r)
	}
	if HRESULT(r) != sOK || fetched == 0 {
		return nil, nil
	}
	return p, nil
}

// ---- IPin ----

type iPin struct{ ole.IUnknown }

type iPinVtbl struct {
	ole.IUnknownVtbl
	Connect                  uintptr
	ReceiveConnection        uintptr
	Disconnect               uintptr
	ConnectedTo              uintptr
	ConnectionMediaType      uintptr
	QueryPinInfo             uintptr
	QueryDirection           uintptr
	QueryId                  uintptr
	QueryAccept              uintptr
	EnumMediaTypes           uintptr
	QueryInternalConnections uintptr
	EndOfStream              uintptr
	BeginFlush               uintptr
	EndFlush                 uintptr
	NewSegment               uintptr
}

func (v *iPin) vtbl() *iPinVtbl {
	return (*iPinVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *iPin) QueryPinInfo(info *pinInfo) error {
	r, _, _ := syscall.Syscall(v.vtbl().QueryPinInfo, 2,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(info)),
		0)
	if HRESULT(r).Failed() {
		return HRESULT(r)
	}
	return nil
}

func (v *iPin) QueryDirection() (int32, error) {
	var dir int32
	r, _, _ := syscall.Syscall(v.vtbl().QueryDirection, 2,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&dir)),
		0)
	if HRESULT(r).Failed() {
		return 0, HRESULT(r)
	}
	return dir, nil
}

func (v *iPin) EnumMediaTypes() (*iEnumMediaTypes, error) {
	var enum *iEnumMediaTypes
	r, _, _ := syscall.Syscall(v.vtbl().EnumMediaTypes, 2,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&enum)),
		0)
	if HRESULT(r).Failed() {
		return nil, HRESULT(r)
	}
	return enum, nil
}

// ---- IEnumMediaTypes ----

type iEnumMediaTypes struct{ ole.IUnknown }

type iEnumMediaTypesVtbl struct {
	ole.IUnknownVtbl
	Next  uintptr
	Skip  uintptr
	Reset uintptr
	Clone uintptr
}

func (v *iEnumMediaTypes) vtbl() *iEnumMediaTypesVtbl {
	return (*iEnumMediaTypesVtbl)(unsafe.Pointer(v.RawVTable))
}

// Next returns (nil, nil) at the end of the media type sequence. The
// caller owns the returned type and frees it with deleteMediaType.
func (v *iEnumMediaTypes) Next() (*amMediaType, error) {
	var mt *amMediaType
	var fetched uint32
	r, _, _ := syscall.Syscall6(v.vtbl().Next, 4,
		uintptr(unsafe.Pointer(v)),
		1,
		uintptr(unsafe.Pointer(&mt)),
		uintptr(unsafe.Pointer(&fetched)),
		0, 0)
	if HRESULT(r).Failed() {
		return nil, HRESULT(r)
	}
	if HRESULT(r) != sOK || fetched == 0 {
		return nil, nil
	}
	return mt, nil
}

// ---- IAMStreamConfig ----

type iAMStreamConfig struct{ ole.IUnknown }

type iAMStreamConfigVtbl struct {
	ole.IUnknownVtbl
	SetFormat               uintptr
	GetFormat               uintptr
	GetNumberOfCapabilities uintptr
	GetStreamCaps           uintptr
}

func (v *iAMStreamConfig) vtbl() *iAMStreamConfigVtbl {
	return (*iAMStreamConfigVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *iAMStreamConfig) GetNumberOfCapabilities() (count, size int32, err error) {
	r, _, _ := syscall.Syscall(v.vtbl().GetNumberOfCapabilities, 3,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&count)),
		uintptr(unsafe.Pointer(&size)))
	if HRESULT(r).Failed() {
		return 0, 0, HRESULT(r)
	}
	return count, size, nil
}

// GetStreamCaps writes the capability structure for index into caps,
// which must be at least the size reported by GetNumberOfCapabilities.
func (v *iAMStreamConfig) GetStreamCaps(index int32, caps []byte) (*amMediaType, error) {
	var mt *amMediaType
	r, _, _ := syscall.Syscall6(v.vtbl().GetStreamCaps, 4,
		uintptr(unsafe.Pointer(v)),
		uintptr(index),
		uintptr(unsafe.Pointer(&mt)),
		uintptr(unsafe.Pointer(&caps[0])),
		0, 0)
	if HRESULT(r).Failed() {
		return nil, HRESULT(r)
	}
	return mt, nil
}

// ---- IKsPropertySet ----

type iKsPropertySet struct{ ole.IUnknown }

type iKsPropertySetVtbl struct {
	ole.IUnknownVtbl
	Set            uintptr
	Get            uintptr
	QuerySupported uintptr
}

func (v *iKsPropertySet) vtbl() *iKsPropertySetVtbl {
	return (*iKsPropertySetVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *iKsPropertySet) Get(set *ole.GUID, id uint32, data unsafe.Pointer, size uint32) error {
	var returned uint32
	r, _, _ := syscall.Syscall9(v.vtbl().Get, 8,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(set)),
		uintptr(id),
		0, // instance data
		0, // instance data size
		uintptr(data),
		uintptr(size),
		uintptr(unsafe.Pointer(&returned)),
		0)
	if HRESULT(r).Failed() {
		return HRESULT(r)
	}
	return nil
}

// ---- IKsPin ----

type iKsPin struct{ ole.IUnknown }

type iKsPinVtbl struct {
	ole.IUnknownVtbl
	KsQueryMediums            uintptr
	KsQueryInterfaces         uintptr
	KsCreateSinkPinHandle     uintptr
	KsGetCurrentCommunication uintptr
	KsPropagateAcquire        uintptr
	KsDeliver                 uintptr
	KsMediaSamplesCompleted   uintptr
}

func (v *iKsPin) vtbl() *iKsPinVtbl {
	return (*iKsPinVtbl)(unsafe.Pointer(v.RawVTable))
}

// KsQueryMediums returns the pin's medium list as a task-allocated
// KSMULTIPLE_ITEM the caller frees with ole.CoTaskMemFree.
func (v *iKsPin) KsQueryMediums() (*ksMultipleItem, error) {
	var items *ksMultipleItem
	r, _, _ := syscall.Syscall(v.vtbl().KsQueryMediums, 2,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&items)),
		0)
	if HRESULT(r).Failed() {
		return nil, HRESULT(r)
	}
	return items, nil
}
