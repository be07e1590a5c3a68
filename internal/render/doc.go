// Package render turns metric snapshots into styled terminal output.
//
// The package includes the dashboard frame, progress bars, banners,
// status lines, and sparklines, all styled through Lip Gloss with the
// colors of the active theme.
//
// # Components Overview
//
//	Renderer      - Width-aware frame builder bound to one theme
//	Banner        - Centered, bold title line
//	Bar           - Labeled percentage bar with color thresholds
//	StatusLine    - Severity glyph + message (doctor, init output)
//	Dashboard     - The full nine-line metrics frame
//	Sparkline     - Mini line graph for historical data
//
// # Sizing
//
// The renderer queries the terminal once per frame through its size
// function. When the size cannot be determined (pipes, CI) it falls
// back to 80x24 and keeps rendering; a missing TTY is never an error.
//
// # Thresholds
//
// Percentage coloring is shared by bars and sparklines: values up to
// 60 render green (success), 61-80 yellow (warning), 81 and above red
// (error).
//
// # Units
//
// Byte counters render in IEC binary units via go-humanize (KiB, MiB,
// GiB); uptime renders as "3d 4h 12m 5s".
package render
