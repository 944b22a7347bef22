// +build !windows

package main

import (
	"github.com/pkg/errors"
)

func run(options) error {
	return errors.New("dshowls: DirectShow enumeration is only supported on windows")
}
