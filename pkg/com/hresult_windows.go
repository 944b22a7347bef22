// +build windows

package com

import (
	"strings"

	"golang.org/x/sys/windows"
)

// systemMessage asks the system message table to translate the code,
// the same way the shell's error popups do.
func systemMessage(hr HRESULT) string {
	flags := uint32(windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS)
	buf := make([]uint16, 300)

	n, err := windows.FormatMessage(flags, 0, uint32(hr), 0, buf, nil)
	if err != nil || n == 0 {
		return ""
	}

	return strings.TrimSpace(windows.UTF16ToString(buf[:n]))
}
