package render

import (
	"os"
	"strings"

	"github.com/BotCoder254/Terminal-Decorator/internal/logger"
	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Fallback dimensions for terminals whose size cannot be queried.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// DefaultTitle is the dashboard banner text when no config overrides it.
const DefaultTitle = "System Monitor"

// SizeFunc reports the terminal dimensions in character cells.
type SizeFunc func() (width, height int, err error)

// TermSize queries the size of the terminal attached to stdout.
func TermSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Renderer builds styled terminal output for one theme. All methods
// return strings; nothing here writes to the terminal.
type Renderer struct {
	theme theme.Theme
	title string
	size  SizeFunc
	log   logger.Logger
}

// NewRenderer creates a renderer bound to th, sized from the real
// terminal and titled with DefaultTitle.
func NewRenderer(th theme.Theme, log logger.Logger) *Renderer {
	if log == nil {
		log = logger.Noop()
	}
	return &Renderer{
		theme: th,
		title: DefaultTitle,
		size:  TermSize,
		log:   log,
	}
}

// WithTitle overrides the dashboard banner text.
func (r *Renderer) WithTitle(title string) *Renderer {
	if title != "" {
		r.title = title
	}
	return r
}

// WithSizeFunc overrides terminal size detection.
func (r *Renderer) WithSizeFunc(fn SizeFunc) *Renderer {
	if fn != nil {
		r.size = fn
	}
	return r
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() theme.Theme {
	return r.theme
}

// width queries the terminal width, falling back to FallbackWidth when
// stdout is not a terminal.
func (r *Renderer) width() int {
	w, _, err := r.size()
	if err != nil || w <= 0 {
		r.log.Debug("terminal size unknown, assuming %d columns: %v", FallbackWidth, err)
		return FallbackWidth
	}
	return w
}

// Banner renders text centered for the current terminal width, bold,
// in the given color.
func (r *Renderer) Banner(text string, color lipgloss.Color) string {
	return r.bannerLine(text, color, r.width())
}

// bannerLine centers text in a row of the given width. The left pad is
// the floor of the surplus halved; no trailing pad is emitted.
func (r *Renderer) bannerLine(text string, color lipgloss.Color, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad < 0 {
		pad = 0
	}
	styled := theme.Styled(color, theme.FontBold).Render(text)
	return strings.Repeat(" ", pad) + styled
}

// separatorLine draws a full-width horizontal rule in the border color.
func (r *Renderer) separatorLine(width int) string {
	return theme.Styled(r.theme.Colors.Border, theme.FontNormal).Render(strings.Repeat("─", width))
}
