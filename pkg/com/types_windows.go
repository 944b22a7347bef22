// +build windows

package com

import (
	"unsafe"

	"github.com/go-ole/go-ole"
)

// amMediaType mirrors AM_MEDIA_TYPE.
type amMediaType struct {
	MajorType           ole.GUID
	SubType             ole.GUID
	FixedSizeSamples    int32
	TemporalCompression int32
	SampleSize          uint32
	FormatType          ole.GUID
	Unk                 uintptr
	FormatSize          uint32
	Format              uintptr
}

// pinInfo mirrors PIN_INFO. Filter carries a reference that must be
// released after a successful QueryPinInfo.
type pinInfo struct {
	Filter uintptr
	Dir    int32
	Name   [128]uint16
}

// regPinMedium mirrors REGPINMEDIUM.
type regPinMedium struct {
	Class     ole.GUID
	Instance1 uint32
	Instance2 uint32
}

// ksMultipleItem mirrors KSMULTIPLE_ITEM; Count regPinMedium entries
// follow it directly in memory.
type ksMultipleItem struct {
	Size  uint32
	Count uint32
}

// freeMediaType releases the resources held inside a media type
// without freeing the structure itself.
func freeMediaType(mt *amMediaType) {
	if mt.FormatSize != 0 && mt.Format != 0 {
		ole.CoTaskMemFree(mt.Format)
		mt.FormatSize = 0
		mt.Format = 0
	}
	if mt.Unk != 0 {
		(*ole.IUnknown)(unsafe.Pointer(mt.Unk)).Release()
		mt.Unk = 0
	}
}

// deleteMediaType frees a task-allocated media type returned by the
// enumeration and stream-config interfaces.
func deleteMediaType(mt *amMediaType) {
	if mt == nil {
		return
	}
	freeMediaType(mt)
	ole.CoTaskMemFree(uintptr(unsafe.Pointer(mt)))
}
