//go:build !windows
// +build !windows

package sysinfo

import (
	"fmt"
	"os"
	"path/filepath"
)

// shell returns the base name of the login shell from SHELL.
func shell() (string, error) {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return "", fmt.Errorf("SHELL is not set")
	}
	return filepath.Base(sh), nil
}

func cpuModel() (string, error) {
	return cpuInfo()
}

// product is only shown on windows.
func product() (string, error) {
	return "", errUnsupported
}

// gpu is only shown on windows.
func gpu() (string, error) {
	return "", errUnsupported
}
