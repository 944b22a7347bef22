package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-ole/go-ole"

	"github.com/mediabind/dshow"
	"github.com/mediabind/dshow/pkg/com"
)

// dshowls lists the capture devices of a DirectShow device class and
// resolves a filter/pin from loose selection criteria.

const version = "0.3.0"

type options struct {
	class     ole.GUID
	name      string
	path      string
	pinName   string
	direction *dshow.Direction
	majorType *ole.GUID
	category  *ole.GUID
	medium    *dshow.Medium
	pnp       bool
}

func fatal(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func main() {
	classPtr := flag.String("class", "video", "device class to enumerate [video,audio,audiorender]")
	namePtr := flag.String("name", "", "resolve the device with this exact name")
	pathPtr := flag.String("path", "", "prefer the device with this exact path")
	pinNamePtr := flag.String("pin", "", "resolve the pin with this exact name")
	dirPtr := flag.String("dir", "", "pin direction [in,out]")
	majorPtr := flag.String("major", "", "pin major type [video,audio] or a GUID")
	categoryPtr := flag.String("category", "", "pin category [capture,preview,still] or a GUID")
	mediumPtr := flag.String("medium", "", "resolve the filter exposing this medium ({GUID}:inst1:inst2)")
	pnpPtr := flag.Bool("pnp", false, "look up PnP hardware details for listed devices")
	logLevelPtr := flag.String("loglevel", string(dshow.LogLevelError), "log level [debug,info,error]")
	versionPtr := flag.Bool("version", false, "show the dshowls version")
	flag.Parse()

	if *versionPtr {
		fmt.Printf("dshowls v%s - DirectShow device and pin resolution tool\n", version)
		return
	}

	lvl := dshow.LogLevel(*logLevelPtr)
	if !lvl.IsValid() {
		fatal("-loglevel must be one of debug, info, error")
	}
	dshow.SetLogLevel(lvl)

	opts := options{
		name:    *namePtr,
		path:    *pathPtr,
		pinName: *pinNamePtr,
		pnp:     *pnpPtr,
	}

	class, err := parseClass(*classPtr)
	if err != nil {
		fatal(err.Error())
	}
	opts.class = class

	if *dirPtr != "" {
		dir, err := parseDirection(*dirPtr)
		if err != nil {
			fatal(err.Error())
		}
		opts.direction = &dir
	}

	if *majorPtr != "" {
		major, err := parseGUID(*majorPtr, map[string]*ole.GUID{
			"video": com.MediaTypeVideo,
			"audio": com.MediaTypeAudio,
		})
		if err != nil {
			fatal(err.Error())
		}
		opts.majorType = major
	}

	if *categoryPtr != "" {
		category, err := parseGUID(*categoryPtr, map[string]*ole.GUID{
			"capture": com.PinCategoryCapture,
			"preview": com.PinCategoryPreview,
			"still":   com.PinCategoryStill,
		})
		if err != nil {
			fatal(err.Error())
		}
		opts.category = category
	}

	if *mediumPtr != "" {
		medium, err := parseMedium(*mediumPtr)
		if err != nil {
			fatal(err.Error())
		}
		opts.medium = medium
	}

	if err := run(opts); err != nil {
		fatal(err.Error())
	}
}

func parseClass(s string) (ole.GUID, error) {
	switch strings.ToLower(s) {
	case "video":
		return *com.VideoInputDeviceCategory, nil
	case "audio":
		return *com.AudioInputDeviceCategory, nil
	case "audiorender":
		return *com.AudioRendererCategory, nil
	default:
		return ole.GUID{}, fmt.Errorf("unknown device class %q", s)
	}
}

func parseDirection(s string) (dshow.Direction, error) {
	switch strings.ToLower(s) {
	case "in", "input":
		return dshow.Input, nil
	case "out", "output":
		return dshow.Output, nil
	default:
		return 0, fmt.Errorf("unknown pin direction %q", s)
	}
}

func parseGUID(s string, wellKnown map[string]*ole.GUID) (*ole.GUID, error) {
	if g, ok := wellKnown[strings.ToLower(s)]; ok {
		return g, nil
	}
	if g := ole.NewGUID(s); g != nil {
		return g, nil
	}
	return nil, fmt.Errorf("%q is neither a known name nor a GUID", s)
}

// parseMedium expects {GUID}:instance1:instance2.
func parseMedium(s string) (*dshow.Medium, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("medium must look like {GUID}:inst1:inst2, got %q", s)
	}

	class := ole.NewGUID(parts[0])
	if class == nil {
		return nil, fmt.Errorf("bad medium class GUID %q", parts[0])
	}

	inst1, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("bad medium instance %q", parts[1])
	}
	inst2, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("bad medium instance %q", parts[2])
	}

	m := dshow.Medium{Class: *class, Instance1: uint32(inst1), Instance2: uint32(inst2)}
	if m.IsSentinel() {
		return nil, fmt.Errorf("medium %s is a sentinel and never matches", m)
	}
	return &m, nil
}
