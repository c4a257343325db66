package config

import "fmt"

// ModuleName is the application name
const ModuleName = "bitpaper"

// Set through -ldflags "-X github.com/bitpaper/paper-wallet/internal/config.Version=..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// GetFormattedBuildArgs returns the version line shown by --version
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%s @ %s (%s)", Version, Commit, BuildDate)
}
