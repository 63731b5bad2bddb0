package config

import (
	"os"
	"path/filepath"
)

const AppName = "tably"

var (
	// AppConfigDir is ~/.config/tably
	AppConfigDir string

	// AppStateDir is ~/.local/state/tably
	AppStateDir string

	// AppConfigFile is ~/.config/tably/tably.yaml
	AppConfigFile string

	// AppLogFile is ~/.local/state/tably/tably.log
	AppLogFile string
)

// InitLocs initializes the application directory paths.
// It respects XDG environment variables if set.
func InitLocs() error {
	home := userHomeDir()

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}

	AppConfigDir = filepath.Join(configHome, AppName)
	AppStateDir = filepath.Join(stateHome, AppName)
	AppConfigFile = filepath.Join(AppConfigDir, AppName+".yaml")
	AppLogFile = filepath.Join(AppStateDir, AppName+".log")

	for _, dir := range []string{AppConfigDir, AppStateDir} {
		if _, err := EnsureDirPath(dir, 0700); err != nil {
			return err
		}
	}

	return nil
}

// InitLogLoc ensures the log directory exists.
func InitLogLoc() error {
	_, err := EnsureDirPath(filepath.Dir(AppLogFile), 0700)
	return err
}

// userHomeDir returns the user's home directory.
func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return home
}
