//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

package sysinfo

func resolution() (string, error) {
	return "", errUnsupported
}

func initSystem() (string, error) {
	return "", errUnsupported
}
