package entities

// Profile describes where a project keeps the files the compatibility run
// depends on and how it is configured with CMake
type Profile struct {
	Name       string
	Repository string
	Version    VersionHeader
	Tests      TestLayout
	CMake      CMakeConfig
}

// VersionHeader locates the three version macros in the source tree
type VersionHeader struct {
	Path       string // relative to the source directory
	MajorMacro string
	MinorMacro string
	MicroMacro string
}

// TestLayout describes how installed tests and automation cases are found
type TestLayout struct {
	InstalledTestsDir string // relative to the install prefix
	AutomationGlob    string // relative to the source directory
	AutomationType    string // C struct type of a test case reference
	AutomationTest    string // name of the installed automation test
}

// CMakeConfig holds the options passed to the configure step
type CMakeConfig struct {
	Generator    string
	BuildType    string
	SharedOption string
	StaticOption string
	TestsOption  string
	InstallTests string
}

// DefaultRepository is the upstream SDL repository
const DefaultRepository = "https://github.com/libsdl-org/SDL"

// DefaultProfile returns the built-in SDL3 profile
func DefaultProfile() *Profile {
	return &Profile{
		Name:       "sdl3",
		Repository: DefaultRepository,
		Version: VersionHeader{
			Path:       "include/SDL3/SDL_version.h",
			MajorMacro: "SDL_MAJOR_VERSION",
			MinorMacro: "SDL_MINOR_VERSION",
			MicroMacro: "SDL_MICRO_VERSION",
		},
		Tests: TestLayout{
			InstalledTestsDir: "share/installed-tests/SDL3",
			AutomationGlob:    "test/testautomation*.c",
			AutomationType:    "SDLTest_TestCaseReference",
			AutomationTest:    "testautomation",
		},
		CMake: CMakeConfig{
			Generator:    "Ninja",
			BuildType:    "Release",
			SharedOption: "SDL_SHARED",
			StaticOption: "SDL_STATIC",
			TestsOption:  "SDL_TESTS",
			InstallTests: "SDL_INSTALL_TESTS",
		},
	}
}
