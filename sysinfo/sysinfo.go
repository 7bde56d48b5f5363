// Package sysinfo provides the fact providers shown in the banner's fact column.
// Every provider is total: OS, subprocess and parse failures are caught at the
// provider boundary and reported as the Unknown sentinel.
package sysinfo

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"bkfetch/logging"
)

// Unknown is the sentinel value a provider returns when its fact cannot be determined.
const Unknown = "unknown"

// errUnsupported is returned by probes that have no implementation on the
// running platform. Guard maps it to Unknown like any other failure.
var errUnsupported = errors.New("not supported on this platform")

// Provider produces one short descriptive string for a system attribute.
// Providers built with Guard never panic and never return an empty string.
type Provider func() string

// Providers is the full set of fact providers for the running platform.
type Providers struct {
	// User is the current logged-in user's name
	User Provider

	// Hostname is the computer's network name
	Hostname Provider

	// Distro is the distribution name and version (linux)
	Distro Provider

	// Product is the full operating system product name (windows)
	Product Provider

	// Kernel is the operating system kernel version
	Kernel Provider

	// Arch is the machine architecture
	Arch Provider

	// Shell is the current command shell
	Shell Provider

	// Resolution is the primary display resolution
	Resolution Provider

	// IP is the local address used for outbound traffic
	IP Provider

	// CPU is the processor model and logical core count
	CPU Provider

	// DiskUsage shows used/total space of the system drive
	DiskUsage Provider

	// RAM shows used/total physical memory
	RAM Provider

	// InitSystem is the name of PID 1 (linux)
	InitSystem Provider

	// GPU is the primary graphics adapter (windows)
	GPU Provider
}

// Default returns the providers for the platform the binary was built for.
//
// Returns:
//   - A Providers value with every field set to a guarded, total provider
//
// Platform-specific probes live in separate files (linux.go, darwin.go, windows.go).
func Default() Providers {
	return Providers{
		User:       Guard("user", currentUser),
		Hostname:   Guard("hostname", os.Hostname),
		Distro:     Guard("distro", distro),
		Product:    Guard("product", product),
		Kernel:     Guard("kernel", kernel),
		Arch:       Guard("arch", arch),
		Shell:      Guard("shell", shell),
		Resolution: Guard("resolution", resolution),
		IP:         Guard("ip", localIP),
		CPU:        Guard("cpu", cpuModel),
		DiskUsage:  Guard("disk", diskUsage),
		RAM:        Guard("ram", ramUsage),
		InitSystem: Guard("init", initSystem),
		GPU:        Guard("gpu", gpu),
	}
}

// Guard turns a fallible probe into a total Provider.
//
// Parameters:
//   - name: Fact name used in debug logs
//   - probe: The underlying query; it may fail or even panic
//
// Returns:
//   - A Provider that yields the trimmed probe result, or Unknown when the
//     probe errors, panics or returns only whitespace
//
// The probe is invoked on every call. Results are never cached.
func Guard(name string, probe func() (string, error)) Provider {
	return func() (value string) {
		logger := logging.GetLogger("sysinfo")
		defer func() {
			if r := recover(); r != nil {
				logger.Debug().
					Str("fact", name).
					Err(fmt.Errorf("panic: %v", r)).
					Msg("Fact probe panicked")
				value = Unknown
			}
		}()

		v, err := probe()
		if err != nil {
			logger.Debug().
				Str("fact", name).
				Err(err).
				Msg("Fact probe failed")
			return Unknown
		}

		v = strings.TrimSpace(v)
		if v == "" {
			return Unknown
		}
		return v
	}
}

// Static returns a Provider that always yields value, or Unknown if value is blank.
func Static(value string) Provider {
	return Guard("static", func() (string, error) { return value, nil })
}
