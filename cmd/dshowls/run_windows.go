// +build windows

package main

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/pkg/errors"

	"github.com/mediabind/dshow"
	"github.com/mediabind/dshow/pkg/com"
	"github.com/mediabind/dshow/pkg/pnp"
)

func run(opts options) error {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		return errors.Wrap(err, "CoInitializeEx")
	}
	defer ole.CoUninitialize()

	enum := com.NewSystemDeviceEnum()

	if opts.medium != nil {
		return resolveByMedium(enum, opts)
	}

	if opts.name != "" || opts.pinName != "" || opts.majorType != nil ||
		opts.category != nil || opts.direction != nil {
		return resolve(enum, opts)
	}

	return list(enum, opts)
}

func list(enum *com.SystemDeviceEnum, opts options) error {
	count := 0
	err := enum.EnumDevices(opts.class, func(filter dshow.Filter, name, path string) bool {
		defer filter.Release()
		count++

		fmt.Printf("%s\n", name)
		if path != "" {
			fmt.Printf("    path: %s\n", path)
		}
		if opts.pnp && path != "" {
			if info, err := pnp.Lookup(path); err == nil {
				fmt.Printf("    hardware: %s (%s)\n", info.Description, info.Manufacturer)
			}
		}

		printPins(filter)
		return true
	})
	if err != nil {
		return err
	}

	if count == 0 {
		fmt.Println("no devices found")
	}
	return nil
}

func printPins(filter dshow.Filter) {
	pins, err := filter.EnumPins()
	if err != nil {
		return
	}
	defer pins.Release()

	for {
		pin, err := pins.Next()
		if err != nil {
			return
		}

		name, _ := pin.Name()
		dir, dirErr := pin.Direction()
		dirStr := "?"
		if dirErr == nil {
			dirStr = dir.String()
		}

		if medium, err := dshow.GetPinMedium(pin); err == nil {
			fmt.Printf("    pin %q (%s) medium %s\n", name, dirStr, medium)
		} else {
			fmt.Printf("    pin %q (%s)\n", name, dirStr)
		}

		pin.Release()
	}
}

func resolve(enum *com.SystemDeviceEnum, opts options) error {
	sel := dshow.Selector{
		DeviceName: opts.name,
		DevicePath: opts.path,
		MajorType:  opts.majorType,
		Category:   opts.category,
		Direction:  opts.direction,
		PinName:    opts.pinName,
	}

	filter, pin, err := dshow.Resolve(enum, opts.class, sel)
	if err != nil {
		return errors.Wrap(err, "resolve")
	}
	defer filter.Release()

	fmt.Println("resolved filter")
	if pin != nil {
		defer pin.Release()
		name, _ := pin.Name()
		dir, _ := pin.Direction()
		fmt.Printf("resolved pin %q (%s)\n", name, dir)
	}
	return nil
}

func resolveByMedium(enum *com.SystemDeviceEnum, opts options) error {
	filter, err := dshow.ResolveFilterByMedium(enum, opts.class, *opts.medium)
	if err != nil {
		return errors.Wrapf(err, "resolve by medium %s", opts.medium)
	}
	defer filter.Release()

	fmt.Printf("resolved filter for medium %s\n", opts.medium)
	printPins(filter)
	return nil
}
