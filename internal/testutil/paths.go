package testutil

// Registry locations used by fixtures. These mirror what `reg export` and
// regedit produce for a monitor on a typical Windows install.
const (
	// DevicePath is the instance path of the sample monitor.
	DevicePath = `DISPLAY\DELA0B1\5&2d9c4f3a&0&UID4352`

	// EnumRoot is the key under which device instances live.
	EnumRoot = `HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Enum`

	// RegHeader is the first line of every version 5 export.
	RegHeader = "Windows Registry Editor Version 5.00"
)

// DeviceParametersKey returns the Device Parameters key of devicePath.
func DeviceParametersKey(devicePath string) string {
	return EnumRoot + `\` + devicePath + `\Device Parameters`
}

// OverrideKey returns the EDID_OVERRIDE key of devicePath.
func OverrideKey(devicePath string) string {
	return DeviceParametersKey(devicePath) + `\EDID_OVERRIDE`
}
