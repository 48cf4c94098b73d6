package dcc

// candidate is one install location the locator is willing to probe.
// dir may contain ${ENVVAR} segments and a {version} placeholder; exe is
// the executable path relative to dir.
type candidate struct {
	dir string
	exe string
}

// candidateTable maps (app, platform) to install-dir candidates in priority
// order. Entries earlier in a slice win over later ones; within a {version}
// wildcard the highest version wins. The table is never mutated after init,
// so concurrent lookups need no locking.
//
// Default directories follow the vendors' documented install layouts:
// Autodesk products live under /usr/autodesk on Linux and
// %PROGRAMFILES%\Autodesk on Windows, Blender under
// %PROGRAMFILES%\Blender Foundation. An empty (but present) candidate list
// means the platform is supported but only probed through PATH or
// overrides, which matches how Blender is distributed on Linux.
var candidateTable = map[App]map[string][]candidate{
	Maya: {
		PlatformLinux: {
			{dir: "/usr/autodesk/maya{version}", exe: "bin/maya"},
		},
		PlatformWindows: {
			{dir: "${PROGRAMFILES}/Autodesk/Maya{version}", exe: "bin/maya.exe"},
		},
		PlatformDarwin: {
			{dir: "/Applications/Autodesk/maya{version}", exe: "Maya.app/Contents/bin/maya"},
			{dir: "/Applications/Maya{version}", exe: "Maya.app/Contents/bin/maya"},
		},
	},
	MayaPy: {
		PlatformLinux: {
			{dir: "/usr/autodesk/maya{version}", exe: "bin/mayapy"},
		},
		PlatformWindows: {
			{dir: "${PROGRAMFILES}/Autodesk/Maya{version}", exe: "bin/mayapy.exe"},
		},
		PlatformDarwin: {
			{dir: "/Applications/Autodesk/maya{version}", exe: "Maya.app/Contents/bin/mayapy"},
			{dir: "/Applications/Maya{version}", exe: "Maya.app/Contents/bin/mayapy"},
		},
	},
	Mobu: {
		PlatformLinux: {
			{dir: "/usr/autodesk/MotionBuilder{version}", exe: "bin/linux_64/motionbuilder"},
		},
		PlatformWindows: {
			{dir: "${PROGRAMFILES}/Autodesk/MotionBuilder {version}", exe: "bin/x64/motionbuilder.exe"},
		},
	},
	MobuPy: {
		PlatformLinux: {
			{dir: "/usr/autodesk/MotionBuilder{version}", exe: "bin/linux_64/mobupy"},
		},
		PlatformWindows: {
			{dir: "${PROGRAMFILES}/Autodesk/MotionBuilder {version}", exe: "bin/x64/mobupy.exe"},
		},
	},
	Blender: {
		PlatformLinux: {},
		PlatformWindows: {
			{dir: "${PROGRAMFILES}/Blender Foundation/Blender {version}", exe: "blender.exe"},
		},
		PlatformDarwin: {
			{dir: "/opt/homebrew/bin", exe: "blender"},
			{dir: "/Applications", exe: "Blender.app/Contents/MacOS/Blender"},
		},
	},
}

// pathProbeApps lists apps resolved through a PATH scan before the static
// candidates are tried. Matches the original tooling, which only ever ran
// `which blender`.
var pathProbeApps = map[App]bool{
	Blender: true,
}
