package registry

import (
	"runtime"

	"bkfetch/sysinfo"
)

// Platform identifies the operating system a registry is built for, using
// GOOS values.
type Platform string

const (
	Linux   Platform = "linux"
	Darwin  Platform = "darwin"
	Windows Platform = "windows"
)

// Current returns the platform the binary was compiled for.
func Current() Platform {
	return Platform(runtime.GOOS)
}

// row is one declared entry, restricted to the listed platforms.
// An empty platform list means every platform.
type row struct {
	platforms []Platform
	entry     func(p sysinfo.Providers) Entry
}

func (r row) includes(platform Platform) bool {
	if len(r.platforms) == 0 {
		return true
	}
	for _, p := range r.platforms {
		if p == platform {
			return true
		}
	}
	return false
}

func always(entry func(p sysinfo.Providers) Entry) row {
	return row{entry: entry}
}

func only(platform Platform, entry func(p sysinfo.Providers) Entry) row {
	return row{platforms: []Platform{platform}, entry: entry}
}

func detail(label string, pick func(p sysinfo.Providers) sysinfo.Provider) func(p sysinfo.Providers) Entry {
	return func(p sysinfo.Providers) Entry { return NewDetail(label, pick(p)) }
}

// declared lists every row in display order.
func declared() []row {
	return []row{
		always(func(p sysinfo.Providers) Entry { return NewHostInfo(p.Hostname) }),
		always(func(sysinfo.Providers) Entry { return Delimiter{} }),
		only(Linux, detail("Distro", func(p sysinfo.Providers) sysinfo.Provider { return p.Distro })),
		only(Windows, detail("Product", func(p sysinfo.Providers) sysinfo.Provider { return p.Product })),
		only(Linux, detail("Kernel", func(p sysinfo.Providers) sysinfo.Provider { return p.Kernel })),
		always(detail("Arch", func(p sysinfo.Providers) sysinfo.Provider { return p.Arch })),
		always(detail("Shell", func(p sysinfo.Providers) sysinfo.Provider { return p.Shell })),
		always(detail("Resolution", func(p sysinfo.Providers) sysinfo.Provider { return p.Resolution })),
		always(detail("IP", func(p sysinfo.Providers) sysinfo.Provider { return p.IP })),
		always(detail("CPU", func(p sysinfo.Providers) sysinfo.Provider { return p.CPU })),
		only(Windows, detail("Disk usage", func(p sysinfo.Providers) sysinfo.Provider { return p.DiskUsage })),
		always(detail("RAM", func(p sysinfo.Providers) sysinfo.Provider { return p.RAM })),
		only(Linux, detail("Init System", func(p sysinfo.Providers) sysinfo.Provider { return p.InitSystem })),
		only(Windows, detail("GPU", func(p sysinfo.Providers) sysinfo.Provider { return p.GPU })),
		always(func(sysinfo.Providers) Entry { return Delimiter{} }),
		always(func(sysinfo.Providers) Entry { return ColorSwatch{} }),
	}
}

// Build returns the registry for platform, wired to the given providers.
//
// Parameters:
//   - platform: The target platform; rows tied to other platforms are left out
//   - p: The fact providers; a nil provider for an included row panics
//
// Returns:
//   - A freshly built Registry in declaration order
//
// The same platform always yields the same sequence of kinds and labels.
// Providers are not invoked during Build.
func Build(platform Platform, p sysinfo.Providers) Registry {
	var entries []Entry
	for _, r := range declared() {
		if r.includes(platform) {
			entries = append(entries, r.entry(p))
		}
	}
	return Registry{entries: entries}
}
