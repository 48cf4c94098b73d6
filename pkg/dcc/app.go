// Package dcc locates installed Digital Content Creation application
// executables (Maya, MotionBuilder, Blender) and returns their filesystem
// paths so other tooling can launch them.
package dcc

import "strings"

// App identifies a supported DCC application executable
type App string

const (
	Maya    App = "maya"
	MayaPy  App = "mayapy"
	Mobu    App = "mobu"
	MobuPy  App = "mobupy"
	Blender App = "blender"
)

// Supported platforms (runtime.GOOS values)
const (
	PlatformWindows = "windows"
	PlatformLinux   = "linux"
	PlatformDarwin  = "darwin"
)

// Apps returns all supported applications in a fixed order
func Apps() []App {
	return []App{Maya, MayaPy, Mobu, MobuPy, Blender}
}

// appAliases maps alternative spellings to the canonical App value
var appAliases = map[string]App{
	"maya":           Maya,
	"mayapy":         MayaPy,
	"mobu":           Mobu,
	"motionbuilder":  Mobu,
	"motion-builder": Mobu,
	"mobupy":         MobuPy,
	"blender":        Blender,
}

// ParseApp converts user input into an App, accepting common aliases.
// Returns an UnknownAppError for anything outside the supported set.
func ParseApp(name string) (App, error) {
	app, ok := appAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", &UnknownAppError{Name: name}
	}
	return app, nil
}

// String returns the canonical lowercase name
func (a App) String() string {
	return string(a)
}

// DisplayName returns a human-readable product name
func (a App) DisplayName() string {
	switch a {
	case Maya:
		return "Autodesk Maya"
	case MayaPy:
		return "Autodesk Maya (mayapy)"
	case Mobu:
		return "Autodesk MotionBuilder"
	case MobuPy:
		return "Autodesk MotionBuilder (mobupy)"
	case Blender:
		return "Blender"
	}
	return string(a)
}

// ExeName returns the bare executable filename for the given platform
func (a App) ExeName(platform string) string {
	name := string(a)
	if a == Mobu {
		name = "motionbuilder"
	}
	if platform == PlatformWindows {
		return name + ".exe"
	}
	return name
}

// OverrideVar returns the environment variable that overrides the install
// directory for this app, or "" if none is defined.
func (a App) OverrideVar() string {
	switch a {
	case Maya, MayaPy:
		return "MAYA_LOCATION"
	case Mobu, MobuPy:
		return "MOBU_LOCATION"
	case Blender:
		return "BLENDER_LOCATION"
	}
	return ""
}
