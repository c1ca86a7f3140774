package entities

const (
	SystemLinux   = "Linux"
	SystemTermux  = "Android (Termux)"
	SystemWindows = "Windows"
	SystemMacOS   = "macOS"
	SystemUnknown = "Unknown"
)

// DetectSystem maps a GOOS value to the human-readable system name used in
// progress lines. Linux hosts exposing ANDROID_ROOT or TERMUX_VERSION are
// reported as Termux.
func DetectSystem(goos string, lookupEnv func(string) (string, bool)) string {
	switch goos {
	case "linux", "android":
		if isTermux(lookupEnv) {
			return SystemTermux
		}
		if goos == "android" {
			return SystemUnknown
		}
		return SystemLinux
	case "windows":
		return SystemWindows
	case "darwin":
		return SystemMacOS
	default:
		return SystemUnknown
	}
}

func isTermux(lookupEnv func(string) (string, bool)) bool {
	if lookupEnv == nil {
		return false
	}
	for _, name := range []string{"ANDROID_ROOT", "TERMUX_VERSION"} {
		if _, ok := lookupEnv(name); ok {
			return true
		}
	}
	return false
}
