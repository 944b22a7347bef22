package com

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHRESULTFailed(t *testing.T) {
	assert.False(t, sOK.Failed())
	assert.False(t, sFalse.Failed())
	assert.True(t, EFail.Failed())
	assert.True(t, ENoInterface.Failed())
	assert.True(t, VFWENoCaptureHW.Failed())
}

func TestHRESULTError(t *testing.T) {
	testMap := map[HRESULT]string{
		ENoInterface:    "E_NOINTERFACE: no such interface supported (0x80004002)",
		EPointer:        "E_POINTER: invalid pointer (0x80004003)",
		VFWENotFound:    "VFW_E_NOT_FOUND: an object or name was not found (0x80040216)",
		VFWENoCaptureHW: "VFW_E_NO_CAPTURE_HARDWARE: no capture hardware available (0x80040275)",
	}

	for hr, expected := range testMap {
		assert.Equal(t, expected, hr.Error())
	}
}

func TestHRESULTString(t *testing.T) {
	assert.Equal(t, "S_OK", sOK.String())
	assert.Equal(t, "S_FALSE", sFalse.String())
	assert.Contains(t, EFail.String(), "E_FAIL")
}

func TestHRESULTUnknownFallsBackToHex(t *testing.T) {
	// a made-up failure code no message table knows
	hr := HRESULT(0x87FF4242)
	assert.Contains(t, hr.Error(), "0x87FF4242")
}
