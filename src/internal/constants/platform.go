// Package constants defines common constants used across fnmdesk
package constants

// Operating systems
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// CPU architectures (Go naming)
const (
	ArchAMD64 = "amd64"
	ArchARM64 = "arm64"
)

// CPU architecture tokens as fnm and nodejs.org name them
const (
	NodeArchX64     = "x64"
	NodeArchARM64   = "arm64"
	NodeArchUnknown = "unknown"
)

// File extensions
const (
	ExtExe = ".exe"
)

// ToolName is the name of the wrapped version manager executable
const ToolName = "fnm"

// Environment variables read and written for fnm
const (
	EnvFnmDir                 = "FNM_DIR"
	EnvFnmNodeDistMirror      = "FNM_NODE_DIST_MIRROR"
	EnvFnmVersionFileStrategy = "FNM_VERSION_FILE_STRATEGY"
	EnvFnmCorepackEnabled     = "FNM_COREPACK_ENABLED"
	EnvFnmResolveEngines      = "FNM_RESOLVE_ENGINES"
	EnvFnmArch                = "FNM_ARCH"
	EnvFnmLogLevel            = "FNM_LOGLEVEL"
)

// Environment variables consumed for platform discovery
const (
	EnvHome         = "HOME"
	EnvPath         = "PATH"
	EnvLocalAppData = "LOCALAPPDATA"
	EnvProgramFiles = "ProgramFiles"
)

// Environment variables owned by fnmdesk itself
const (
	EnvRoot    = "FNMDESK_ROOT"
	EnvFnmPath = "FNMDESK_FNM_PATH"
)

// NoneVersion is what fnm prints, and what we report, when no version applies
const NoneVersion = "none"
