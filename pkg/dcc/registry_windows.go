//go:build windows

package dcc

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// registryLookup resolves Autodesk install dirs from HKLM. Maya stores its
// location under Setup\InstallPath as the MAYA_INSTALL_LOCATION value;
// MotionBuilder uses the default value of its version key.
func registryLookup(app App, version string) (string, bool) {
	switch app {
	case Maya, MayaPy:
		return queryValue(
			fmt.Sprintf(`SOFTWARE\AUTODESK\MAYA\%s\Setup\InstallPath`, version),
			"MAYA_INSTALL_LOCATION",
		)
	case Mobu, MobuPy:
		return queryValue(
			fmt.Sprintf(`SOFTWARE\AUTODESK\MOTIONBUILDER\%s`, version),
			"InstallPath",
		)
	}
	return "", false
}

func queryValue(path, name string) (string, bool) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer key.Close()

	val, _, err := key.GetStringValue(name)
	if err != nil || val == "" {
		return "", false
	}
	return val, true
}
