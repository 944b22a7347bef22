// Package com implements the dshow handle interfaces on top of the
// real DirectShow COM objects: the system device enumerator, base
// filters, pins and their property interfaces. Everything here is
// windows-only except the HRESULT plumbing, which is kept portable so
// failure codes stay readable in logs captured on any platform.
package com

import (
	"fmt"
)

// HRESULT is a COM result code. It implements error so failed calls
// can be wrapped and logged directly.
type HRESULT uint32

const (
	sOK    HRESULT = 0x00000000
	sFalse HRESULT = 0x00000001

	ENotImpl              HRESULT = 0x80004001
	ENoInterface          HRESULT = 0x80004002
	EPointer              HRESULT = 0x80004003
	EAbort                HRESULT = 0x80004004
	EFail                 HRESULT = 0x80004005
	EOutOfMemory          HRESULT = 0x8007000E
	EInvalidArg           HRESULT = 0x80070057
	ClassENoAggregation   HRESULT = 0x80040110
	ClassEClassNotAvail   HRESULT = 0x80040111
	RegDBEClassNotReg     HRESULT = 0x80040154
	VFWENotFound          HRESULT = 0x80040216
	VFWEEnumOutOfSync     HRESULT = 0x80040203
	VFWENoCaptureHW       HRESULT = 0x80040275
	VFWENoAcceptableTypes HRESULT = 0x80040207
)

// hresultNames covers the codes DirectShow resolution actually runs
// into; anything else falls back to the system message table on
// windows and to the hex value elsewhere.
var hresultNames = map[HRESULT]string{
	ENotImpl:              "E_NOTIMPL: not implemented",
	ENoInterface:          "E_NOINTERFACE: no such interface supported",
	EPointer:              "E_POINTER: invalid pointer",
	EAbort:                "E_ABORT: operation aborted",
	EFail:                 "E_FAIL: unspecified failure",
	EOutOfMemory:          "E_OUTOFMEMORY: ran out of memory",
	EInvalidArg:           "E_INVALIDARG: one or more arguments are invalid",
	ClassENoAggregation:   "CLASS_E_NOAGGREGATION: class does not support aggregation",
	ClassEClassNotAvail:   "CLASS_E_CLASSNOTAVAILABLE: class not available",
	RegDBEClassNotReg:     "REGDB_E_CLASSNOTREG: class not registered",
	VFWENotFound:          "VFW_E_NOT_FOUND: an object or name was not found",
	VFWEEnumOutOfSync:     "VFW_E_ENUM_OUT_OF_SYNC: enumerator out of sync with graph",
	VFWENoCaptureHW:       "VFW_E_NO_CAPTURE_HARDWARE: no capture hardware available",
	VFWENoAcceptableTypes: "VFW_E_NO_ACCEPTABLE_TYPES: no acceptable media types",
}

// Failed reports whether the code signals failure (severity bit set).
func (hr HRESULT) Failed() bool {
	return int32(hr) < 0
}

func (hr HRESULT) Error() string {
	if name, ok := hresultNames[hr]; ok {
		return fmt.Sprintf("%s (0x%08X)", name, uint32(hr))
	}
	if msg := systemMessage(hr); msg != "" {
		return fmt.Sprintf("%s (0x%08X)", msg, uint32(hr))
	}
	return fmt.Sprintf("HRESULT 0x%08X", uint32(hr))
}

func (hr HRESULT) String() string {
	if hr == sOK {
		return "S_OK"
	}
	if hr == sFalse {
		return "S_FALSE"
	}
	return hr.Error()
}
