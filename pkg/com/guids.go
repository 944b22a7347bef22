package com

import (
	"github.com/go-ole/go-ole"
)

// Device filter categories accepted by the system device enumerator.
var (
	VideoInputDeviceCategory = ole.NewGUID("{860BB310-5D01-11D0-BD3B-00A0C911CE86}")
	AudioInputDeviceCategory = ole.NewGUID("{33D9A762-90C8-11D0-BD43-00A0C911CE86}")
	AudioRendererCategory    = ole.NewGUID("{E0F158E1-CB04-11D0-BD4E-00A0C911CE86}")
	LegacyAmFilterCategory   = ole.NewGUID("{083863F1-70DE-11D0-BD40-00A0C911CE86}")
)

// Major media types.
var (
	MediaTypeVideo       = ole.NewGUID("{73646976-0000-0010-8000-00AA00389B71}")
	MediaTypeAudio       = ole.NewGUID("{73647561-0000-0010-8000-00AA00389B71}")
	MediaTypeInterleaved = ole.NewGUID("{73766169-0000-0010-8000-00AA00389B71}")
	MediaTypeStream      = ole.NewGUID("{E436EB83-524F-11CE-9F53-0020AF0BA770}")
)

// Pin categories.
var (
	PinCategoryCapture = ole.NewGUID("{FB6C4281-0353-11D1-905F-0000C0CC16BA}")
	PinCategoryPreview = ole.NewGUID("{FB6C4282-0353-11D1-905F-0000C0CC16BA}")
	PinCategoryStill   = ole.NewGUID("{FB6C428A-0353-11D1-905F-0000C0CC16BA}")
)

var (
	clsidSystemDeviceEnum = ole.NewGUID("{62BE5D10-60EB-11D0-BD3B-00A0C911CE86}")

	iidICreateDevEnum  = ole.NewGUID("{29840822-5B84-11D0-BD3B-00A0C911CE86}")
	iidIPropertyBag    = ole.NewGUID("{55272A00-42CB-11CE-8135-00AA004BB851}")
	iidIBaseFilter     = ole.NewGUID("{56A86895-0AD4-11CE-B03A-0020AF0BA770}")
	iidIAMStreamConfig = ole.NewGUID("{C6E13340-30AC-11D0-A18C-00A0C9118956}")
	iidIKsPropertySet  = ole.NewGUID("{31EFAC30-515C-11D0-A9AA-00AA0061BE93}")
	iidIKsPin          = ole.NewGUID("{B61178D1-A2D9-11CF-9E53-00AA00A216A1}")

	// AMPROPSETID_Pin property set; property 0 is the pin category.
	ampropsetidPin = ole.NewGUID("{9B00F101-1567-11D1-B3F1-00AA003761C5}")
)

const ampropertyPinCategory = 0
