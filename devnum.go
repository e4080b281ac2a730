package ttyfind

import "fmt"

// DeviceNumber identifies a terminal device by its decomposed device number.
type DeviceNumber struct {
	Major int32 `json:"major"`
	Minor int32 `json:"minor"`
}

// String renders the conventional "major:minor" form.
func (d DeviceNumber) String() string {
	return fmt.Sprintf("%d:%d", d.Major, d.Minor)
}

// decodeDeviceNumber splits a packed device number following the historical
// kdev_t layout: minor in the low eight bits, major in the bits above.
// The arithmetic runs on int32 so negative packed values keep the sign
// behavior of the kernel-facing C types.
func decodeDeviceNumber(packed int32) DeviceNumber {
	return DeviceNumber{
		Major: packed >> 8,
		Minor: packed & 0xFF,
	}
}
