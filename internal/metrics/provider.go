package metrics

import (
	"context"
	"math"
	"time"

	"github.com/BotCoder254/Terminal-Decorator/internal/logger"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	gnet "github.com/shirou/gopsutil/v4/net"
)

const (
	// DefaultCPUWindow is the blocking interval used to measure CPU
	// utilization. Sub-second so the refresh loop stays responsive.
	DefaultCPUWindow = 500 * time.Millisecond

	// DefaultDiskPath is the mount point whose usage is reported.
	DefaultDiskPath = "/"
)

// Provider samples host metrics into Snapshots. Probes that fail leave
// their Snapshot fields at zero values; Sample only returns an error
// when the context is cancelled.
type Provider struct {
	CPUWindow time.Duration
	DiskPath  string

	log        logger.Logger
	routeIface func(ctx context.Context) (string, error)
}

// NewProvider creates a provider with default probe settings.
func NewProvider(log logger.Logger) *Provider {
	if log == nil {
		log = logger.Noop()
	}
	return &Provider{
		CPUWindow:  DefaultCPUWindow,
		DiskPath:   DefaultDiskPath,
		log:        log,
		routeIface: defaultRouteInterface,
	}
}

// Sample probes the host and returns a snapshot. The CPU probe blocks
// for CPUWindow to measure utilization over a real interval.
func (p *Provider) Sample(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := &Snapshot{Timestamp: time.Now()}

	if pcts, err := cpu.PercentWithContext(ctx, p.CPUWindow, false); err != nil {
		p.log.Debug("cpu probe failed: %v", err)
	} else if len(pcts) > 0 {
		snap.CPUPercent = clampPercent(pcts[0])
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		p.log.Debug("memory probe failed: %v", err)
	} else {
		snap.MemoryPercent = clampInt(int(math.Round(vm.UsedPercent)))
	}

	if du, err := disk.UsageWithContext(ctx, p.DiskPath); err != nil {
		p.log.Debug("disk probe failed for %s: %v", p.DiskPath, err)
	} else {
		snap.DiskPercent = clampInt(int(math.Round(du.UsedPercent)))
	}

	if avg, err := load.AvgWithContext(ctx); err != nil {
		p.log.Debug("load probe failed: %v", err)
	} else {
		snap.Load = [3]float64{avg.Load1, avg.Load5, avg.Load15}
	}

	if info, err := host.InfoWithContext(ctx); err != nil {
		p.log.Debug("host probe failed: %v", err)
	} else {
		snap.Hostname = info.Hostname
		snap.OS = info.OS
		snap.KernelVersion = info.KernelVersion
		snap.Uptime = time.Duration(info.Uptime) * time.Second
	}

	snap.Network = p.sampleNetwork(ctx)

	// A partial snapshot is still useful; cancellation is the only
	// condition the caller must distinguish.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return snap, nil
}

// sampleNetwork resolves the default-route interface and pairs it with
// its cumulative traffic counters. Returns nil when the route or the
// counters cannot be determined.
func (p *Provider) sampleNetwork(ctx context.Context) *NetworkCounters {
	iface, err := p.routeIface(ctx)
	if err != nil || iface == "" {
		p.log.Debug("default route unknown: %v", err)
		return nil
	}

	counters, err := gnet.IOCountersWithContext(ctx, true)
	if err != nil {
		p.log.Debug("net probe failed: %v", err)
		return nil
	}

	if match := matchCounters(iface, counters); match != nil {
		return match
	}
	p.log.Debug("no traffic counters for interface %s", iface)
	return nil
}

// matchCounters finds the per-NIC counters for iface.
func matchCounters(iface string, counters []gnet.IOCountersStat) *NetworkCounters {
	for _, c := range counters {
		if c.Name == iface {
			return &NetworkCounters{
				Interface: iface,
				RxBytes:   c.BytesRecv,
				TxBytes:   c.BytesSent,
			}
		}
	}
	return nil
}
