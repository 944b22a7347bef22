// +build !windows

package com

// systemMessage has no message table to consult off windows.
func systemMessage(HRESULT) string {
	return ""
}
