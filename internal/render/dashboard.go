package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/BotCoder254/Terminal-Decorator/internal/metrics"
	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
	"github.com/dustin/go-humanize"
)

// unknownValue is shown for metrics that could not be sampled.
const unknownValue = "unknown"

// Dashboard renders the full metrics frame:
//
//	<banner>
//	<hostname • os kernel • uptime • clock>
//	CPU    [...]  45%
//	Memory [...]  70%
//	Disk   [...]  82%
//	Load   0.42 0.38 0.35
//	RX     1.0 GiB (eth0)
//	TX     512 KiB (eth0)
//	<separator>
//
// The frame is always exactly these nine lines; degraded metrics render
// placeholders instead of dropping their line. The terminal size is
// queried once per call.
func (r *Renderer) Dashboard(snap *metrics.Snapshot) string {
	width := r.width()

	var b strings.Builder
	b.WriteString(r.bannerLine(r.title, r.theme.Colors.Primary, width))
	b.WriteByte('\n')
	b.WriteString(r.hostLine(snap))
	b.WriteByte('\n')
	b.WriteString(r.Bar("CPU", snap.CPUPercent, 100))
	b.WriteByte('\n')
	b.WriteString(r.Bar("Memory", float64(snap.MemoryPercent), 100))
	b.WriteByte('\n')
	b.WriteString(r.Bar("Disk", float64(snap.DiskPercent), 100))
	b.WriteByte('\n')
	b.WriteString(r.loadLine(snap.Load))
	b.WriteByte('\n')
	b.WriteString(r.trafficLine("RX", snap.Network, rxBytes))
	b.WriteByte('\n')
	b.WriteString(r.trafficLine("TX", snap.Network, txBytes))
	b.WriteByte('\n')
	b.WriteString(r.separatorLine(width))
	b.WriteByte('\n')
	return b.String()
}

// hostLine renders the identity row under the banner.
func (r *Renderer) hostLine(snap *metrics.Snapshot) string {
	hostname := snap.Hostname
	if hostname == "" {
		hostname = unknownValue
	}

	system := strings.TrimSpace(snap.OS + " " + snap.KernelVersion)
	if system == "" {
		system = unknownValue
	}

	hostStyle := theme.Styled(r.theme.Colors.Text, theme.FontBold)
	restStyle := theme.Styled(r.theme.Colors.Muted, theme.FontNormal)

	parts := []string{
		system,
		"up " + FormatUptime(snap.Uptime),
		snap.Timestamp.Format("15:04:05"),
	}
	return hostStyle.Render(hostname) + restStyle.Render(" • "+strings.Join(parts, " • "))
}

// loadLine renders the 1/5/15 minute load averages.
func (r *Renderer) loadLine(load [3]float64) string {
	labelStyle := theme.Styled(r.theme.Colors.Text, theme.FontBold)
	valueStyle := theme.Styled(r.theme.Colors.Info, theme.FontNormal)

	return fmt.Sprintf("%s %s",
		labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, "Load")),
		valueStyle.Render(fmt.Sprintf("%.2f %.2f %.2f", load[0], load[1], load[2])))
}

// rxBytes and txBytes select a direction from the counters.
func rxBytes(n *metrics.NetworkCounters) uint64 { return n.RxBytes }
func txBytes(n *metrics.NetworkCounters) uint64 { return n.TxBytes }

// trafficLine renders one direction of network traffic, or a muted
// placeholder when the machine has no identifiable default route.
func (r *Renderer) trafficLine(label string, n *metrics.NetworkCounters, direction func(*metrics.NetworkCounters) uint64) string {
	labelStyle := theme.Styled(r.theme.Colors.Text, theme.FontBold)
	paddedLabel := labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label))

	if n == nil {
		mutedStyle := theme.Styled(r.theme.Colors.Muted, theme.FontNormal)
		return fmt.Sprintf("%s %s", paddedLabel, mutedStyle.Render(unknownValue))
	}

	valueStyle := theme.Styled(r.theme.Colors.Info, theme.FontNormal)
	ifaceStyle := theme.Styled(r.theme.Colors.Muted, theme.FontNormal)
	return fmt.Sprintf("%s %s %s",
		paddedLabel,
		valueStyle.Render(humanize.IBytes(direction(n))),
		ifaceStyle.Render("("+n.Interface+")"))
}

// FormatUptime renders a duration as "3d 4h 12m 5s". All four units are
// always present; negative durations read as zero.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSeconds := int64(d / time.Second)

	days := totalSeconds / 86400
	hours := (totalSeconds % 86400) / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}
