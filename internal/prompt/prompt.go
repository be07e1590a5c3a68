// Package prompt composes the decorated shell prompt string.
//
// Compose is deliberately pure: identical inputs produce identical
// output and no I/O happens here. Callers gather the username, working
// directory, and repository state up front, which keeps the prompt
// fast and trivially testable.
package prompt

import (
	"strings"

	"github.com/BotCoder254/Terminal-Decorator/internal/gitstatus"
	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
)

// Compose assembles the prompt line: user, path, an optional git
// segment, and the prompt glyph. The git segment is omitted entirely
// when the directory is not inside a repository.
func Compose(user, path string, st gitstatus.Status, th theme.Theme) string {
	var b strings.Builder

	b.WriteString(theme.Styled(th.Colors.Primary, theme.FontBold).Render(user))
	b.WriteByte(' ')
	b.WriteString(theme.Styled(th.Colors.Info, theme.FontNormal).Render(path))

	if st.InRepository() {
		b.WriteByte(' ')
		b.WriteString(gitSegment(st, th))
	}

	b.WriteByte(' ')
	b.WriteString(theme.Styled(th.Colors.Success, theme.FontBold).Render(theme.SymbolPrompt))
	b.WriteByte(' ')
	return b.String()
}

// gitSegment renders "(branch✗↑)": the dirty marker when the work tree
// has uncommitted changes, the unpushed marker when local commits are
// missing from every remote.
func gitSegment(st gitstatus.Status, th theme.Theme) string {
	paren := theme.Styled(th.Colors.Muted, theme.FontNormal)

	var seg strings.Builder
	seg.WriteString(paren.Render("("))
	seg.WriteString(theme.Styled(th.Colors.Accent, theme.FontNormal).Render(st.Branch))
	if st.IsDirty {
		seg.WriteString(theme.Styled(th.Colors.Error, theme.FontBold).Render(theme.SymbolDirty))
	}
	if st.HasUnpushedCommits {
		seg.WriteString(theme.Styled(th.Colors.Warning, theme.FontBold).Render(theme.SymbolUnpushed))
	}
	seg.WriteString(paren.Render(")"))
	return seg.String()
}

// ShortenPath abbreviates home-rooted paths with a leading tilde.
// Only whole path components match: /home/alicesmith is not inside
// /home/alice.
func ShortenPath(path, home string) string {
	if path == "" || home == "" {
		return path
	}
	home = strings.TrimSuffix(home, "/")
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+"/") {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}
