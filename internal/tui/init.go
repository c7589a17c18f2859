package tui

import (
	"fmt"
	"os"

	"github.com/javiermolinar/weekgrid/internal/config"
)

// InitState tracks whether first-run setup is required.
type InitState struct {
	ConfigMissing bool
	ConfigPath    string
}

// DetectInitState checks whether the config file exists at the default path.
func DetectInitState() (InitState, error) {
	return detectInitState(config.DefaultConfigPath())
}

func detectInitState(configPath string) (InitState, error) {
	state := InitState{ConfigPath: configPath}
	missing, err := pathMissing(configPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking config path: %w", err)
	}
	state.ConfigMissing = missing
	return state, nil
}

func pathMissing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, err
}
