package metrics

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// procNetRoute is the kernel routing table on Linux.
const procNetRoute = "/proc/net/route"

// routeFlagUp marks a usable route entry (RTF_UP in the kernel's route.h).
const routeFlagUp = 0x1

// defaultRouteInterface resolves the interface that carries the default
// route, or an error when the host has none.
func defaultRouteInterface(ctx context.Context) (string, error) {
	switch runtime.GOOS {
	case "linux":
		return linuxDefaultRoute(procNetRoute)
	case "darwin":
		return darwinDefaultRoute(ctx)
	default:
		return "", fmt.Errorf("no default route detection for %s", runtime.GOOS)
	}
}

// linuxDefaultRoute scans a /proc/net/route style table for an up route
// with destination 0.0.0.0. Columns are Iface, Destination, Gateway,
// Flags; destination is little-endian hex.
func linuxDefaultRoute(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	for i, line := range lines {
		if i == 0 {
			// Header row
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		flags, err := strconv.ParseUint(fields[3], 16, 64)
		if err != nil {
			continue
		}
		if fields[1] == "00000000" && flags&routeFlagUp != 0 {
			return fields[0], nil
		}
	}
	return "", fmt.Errorf("no default route in %s", path)
}

// darwinDefaultRoute asks the route utility which interface serves the
// default destination.
func darwinDefaultRoute(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "route", "-n", "get", "default").Output()
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "interface:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "interface:")), nil
		}
	}
	return "", fmt.Errorf("route output missing interface")
}
