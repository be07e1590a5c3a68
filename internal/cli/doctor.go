package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BotCoder254/Terminal-Decorator/internal/doctor"
	"github.com/BotCoder254/Terminal-Decorator/internal/gitstatus"
	"github.com/BotCoder254/Terminal-Decorator/internal/logger"
	"github.com/BotCoder254/Terminal-Decorator/internal/metrics"
	"github.com/BotCoder254/Terminal-Decorator/internal/render"
	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand implements the doctor command logic.
func doctorCommand() error {
	if noColorFlag {
		applyColorProfile("never")
	}

	checks := collectChecks(newLogger())
	results := doctor.RunAll(checks)

	if doctorJSON {
		if err := outputDoctorJSON(checks, results); err != nil {
			return err
		}
	} else {
		outputDoctorText(checks, results)
	}

	// Scripts gate on the exit code; warnings alone stay zero
	if doctor.HasFailures(results) {
		os.Exit(1)
	}
	return nil
}

// collectChecks assembles the check list in report order.
func collectChecks(log logger.Logger) []doctor.Check {
	// Theme to probe: the flag, else whatever the config names.
	// Config load errors are ignored here; ConfigCheck reports them.
	activeTheme := themeFlag
	if activeTheme == "" {
		if cfg, err := loadActiveConfig(); err == nil {
			activeTheme = cfg.Theme
		}
	}

	cwd, _ := os.Getwd()

	return []doctor.Check{
		&doctor.ConfigCheck{Explicit: configFlag},
		&doctor.ThemeCheck{Theme: activeTheme},
		&doctor.GitBinaryCheck{},
		&doctor.RepositoryCheck{Dir: cwd, Inspector: gitstatus.NewInspector(log)},
		&doctor.TerminalCheck{},
		&doctor.MetricsCheck{Sampler: metrics.NewProvider(log)},
	}
}

// outputDoctorJSON outputs results in JSON format.
func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult) error {
	// Group by category, preserving first-seen order
	grouped := make(map[string][]doctor.CheckResult)
	categoryOrder := []string{}

	for i, check := range checks {
		cat := check.Category()
		if _, exists := grouped[cat]; !exists {
			categoryOrder = append(categoryOrder, cat)
		}
		grouped[cat] = append(grouped[cat], results[i])
	}

	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(categoryOrder)),
	}
	for _, cat := range categoryOrder {
		output.Categories = append(output.Categories, CategoryOutput{
			Name:    cat,
			Results: grouped[cat],
		})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText outputs results in human-readable format. The report
// chrome uses the default palette; doctor must render even when the
// configured theme is the thing that is broken.
func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult) {
	th := theme.Default()
	r := render.NewRenderer(th, logger.Noop())
	mutedStyle := lipgloss.NewStyle().Foreground(th.Colors.Muted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Println()
	fmt.Println(headerStyle.Render("Terminal Decorator Diagnostic Report"))
	fmt.Println()

	// Group checks by category
	categoryOrder := []string{"CONFIG", "GIT", "TERMINAL", "METRICS"}
	grouped := make(map[string][]int) // category -> indices

	for i, check := range checks {
		cat := check.Category()
		grouped[cat] = append(grouped[cat], i)
	}

	for _, category := range categoryOrder {
		indices, ok := grouped[category]
		if !ok || len(indices) == 0 {
			continue
		}

		fmt.Println(headerStyle.Render(category))
		for _, idx := range indices {
			renderCheckResult(r, results[idx], mutedStyle)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("━", 60))
	fmt.Println()

	counts := doctor.CountByStatus(results)
	if !doctor.HasIssues(results) {
		fmt.Println(r.StatusLine("Everything looks good", render.SeverityOK))
	} else {
		total := counts[doctor.StatusFail] + counts[doctor.StatusWarn]
		fmt.Println(r.StatusLine(
			fmt.Sprintf("%d issue%s found", total, pluralSuffix(total)),
			render.SeverityError))
	}
	fmt.Println()
}

// renderCheckResult renders one status line with its suggestion
// indented underneath.
func renderCheckResult(r *render.Renderer, result doctor.CheckResult, mutedStyle lipgloss.Style) {
	fmt.Printf("  %s\n", r.StatusLine(result.Message, statusSeverity(result.Status)))

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		for _, line := range strings.Split(result.Suggestion, "\n") {
			fmt.Printf("    %s\n", mutedStyle.Render(line))
		}
	}
}

// statusSeverity maps check statuses onto renderer severities.
func statusSeverity(s doctor.CheckStatus) render.Severity {
	switch s {
	case doctor.StatusWarn:
		return render.SeverityWarning
	case doctor.StatusFail:
		return render.SeverityError
	default:
		return render.SeverityOK
	}
}

// pluralSuffix returns "s" if n != 1.
func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
