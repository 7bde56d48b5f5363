package sysinfo

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"os/user"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// commandTimeout bounds every subprocess a probe spawns.
const commandTimeout = 1500 * time.Millisecond

// currentUser returns the login name of the user running the process.
// Falls back to USER/USERNAME when the user database lookup fails.
func currentUser() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		name := u.Username
		// Windows reports DOMAIN\user
		if i := strings.LastIndex(name, `\`); i >= 0 {
			name = name[i+1:]
		}
		return name, nil
	}
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("current user not resolvable")
}

// distro returns the platform name and version, e.g. "ubuntu 24.04".
func distro() (string, error) {
	platform, _, version, err := host.PlatformInformation()
	if err != nil {
		return "", fmt.Errorf("platform information: %w", err)
	}
	return strings.TrimSpace(platform + " " + version), nil
}

func kernel() (string, error) {
	return host.KernelVersion()
}

// arch returns the kernel architecture, falling back to the Go target arch.
func arch() (string, error) {
	if a, err := host.KernelArch(); err == nil && a != "" {
		return a, nil
	}
	return runtime.GOARCH, nil
}

// localIP returns the local address the host would use for outbound traffic.
// Dialing UDP does not send any packet; it only selects a route.
func localIP() (string, error) {
	d := net.Dialer{Timeout: 500 * time.Millisecond}
	conn, err := d.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "", fmt.Errorf("select outbound route: %w", err)
	}
	defer func() { _ = conn.Close() }()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP == nil {
		return "", fmt.Errorf("unexpected local address %v", conn.LocalAddr())
	}
	return addr.IP.String(), nil
}

// cpuInfo returns the processor model name followed by the logical core count.
func cpuInfo() (string, error) {
	infos, err := cpu.Info()
	if err != nil {
		return "", fmt.Errorf("cpu info: %w", err)
	}
	if len(infos) == 0 || strings.TrimSpace(infos[0].ModelName) == "" {
		return "", fmt.Errorf("cpu info: no model name reported")
	}

	name := strings.Join(strings.Fields(infos[0].ModelName), " ")
	if cores, err := cpu.Counts(true); err == nil && cores > 0 {
		return fmt.Sprintf("%s (%d)", name, cores), nil
	}
	return name, nil
}

// ramUsage returns used/total physical memory, e.g. "3.1 GiB / 15 GiB".
func ramUsage() (string, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return "", fmt.Errorf("virtual memory: %w", err)
	}
	return FormatUsage(vm.Used, vm.Total), nil
}

// diskUsage returns used/total space on the system drive with the used percentage.
func diskUsage() (string, error) {
	usage, err := disk.Usage(systemRoot())
	if err != nil {
		return "", fmt.Errorf("disk usage: %w", err)
	}
	return fmt.Sprintf("%s (%.0f%%)", FormatUsage(usage.Used, usage.Total), usage.UsedPercent), nil
}

// systemRoot returns the mount point holding the operating system.
func systemRoot() string {
	if runtime.GOOS == "windows" {
		if drive := os.Getenv("SystemDrive"); drive != "" {
			return drive + `\`
		}
		return `C:\`
	}
	return "/"
}

// runCommand runs name with args under commandTimeout and returns trimmed stdout.
func runCommand(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}
