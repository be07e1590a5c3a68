package cli

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/BotCoder254/Terminal-Decorator/internal/doctor"
	"github.com/BotCoder254/Terminal-Decorator/internal/logger"
	"github.com/BotCoder254/Terminal-Decorator/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluralSuffix(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{
			name:  "zero",
			input: 0,
			want:  "s",
		},
		{
			name:  "one",
			input: 1,
			want:  "",
		},
		{
			name:  "many",
			input: 5,
			want:  "s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pluralSuffix(tt.input))
		})
	}
}

func TestDoctorOutput_JSONMarshaling(t *testing.T) {
	output := DoctorOutput{
		Categories: []CategoryOutput{
			{
				Name: "CONFIG",
				Results: []doctor.CheckResult{
					{
						Name:    "config",
						Status:  doctor.StatusPass,
						Message: "config valid: .termdec.yaml",
					},
				},
			},
			{
				Name: "GIT",
				Results: []doctor.CheckResult{
					{
						Name:       "git-binary",
						Status:     doctor.StatusFail,
						Message:    "git not found",
						Suggestion: "Install git",
					},
				},
			},
		},
		Summary: SummaryOutput{
			Pass:     1,
			Warn:     0,
			Fail:     1,
			AllClear: false,
		},
	}

	data, err := json.Marshal(output)
	require.NoError(t, err)

	var decoded DoctorOutput
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Len(t, decoded.Categories, 2)
	assert.Equal(t, "CONFIG", decoded.Categories[0].Name)
	assert.Equal(t, "GIT", decoded.Categories[1].Name)
	assert.Len(t, decoded.Categories[0].Results, 1)
	assert.Len(t, decoded.Categories[1].Results, 1)

	assert.Equal(t, 1, decoded.Summary.Pass)
	assert.Equal(t, 0, decoded.Summary.Warn)
	assert.Equal(t, 1, decoded.Summary.Fail)
	assert.False(t, decoded.Summary.AllClear)
}

func TestDoctorOutput_EmptyCategories(t *testing.T) {
	output := DoctorOutput{
		Categories: []CategoryOutput{},
		Summary: SummaryOutput{
			AllClear: true,
		},
	}

	data, err := json.Marshal(output)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"categories":[]`)
	assert.Contains(t, string(data), `"all_clear":true`)
}

func TestCategoryOutput_JSONFields(t *testing.T) {
	cat := CategoryOutput{
		Name: "TERMINAL",
		Results: []doctor.CheckResult{
			{
				Name:       "terminal-size",
				Status:     doctor.StatusWarn,
				Message:    "terminal size unknown",
				Suggestion: "Run in a real terminal",
			},
		},
	}

	data, err := json.Marshal(cat)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"name":"TERMINAL"`)
	assert.Contains(t, string(data), `"results":[`)
}

func TestSummaryOutput_AllClear(t *testing.T) {
	tests := []struct {
		name     string
		summary  SummaryOutput
		wantJSON string
	}{
		{
			name: "all pass",
			summary: SummaryOutput{
				Pass:     6,
				AllClear: true,
			},
			wantJSON: `"all_clear":true`,
		},
		{
			name: "has warnings",
			summary: SummaryOutput{
				Pass:     4,
				Warn:     2,
				AllClear: false,
			},
			wantJSON: `"all_clear":false`,
		},
		{
			name: "has failures",
			summary: SummaryOutput{
				Pass:     1,
				Fail:     3,
				AllClear: false,
			},
			wantJSON: `"all_clear":false`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.summary)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.wantJSON)
		})
	}
}

func TestStatusSeverity(t *testing.T) {
	assert.Equal(t, render.SeverityOK, statusSeverity(doctor.StatusPass))
	assert.Equal(t, render.SeverityWarning, statusSeverity(doctor.StatusWarn))
	assert.Equal(t, render.SeverityError, statusSeverity(doctor.StatusFail))
}

func TestCollectChecks(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	origDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(t.TempDir()))

	checks := collectChecks(logger.Noop())
	require.Len(t, checks, 6)

	categories := make(map[string]bool)
	for _, check := range checks {
		categories[check.Category()] = true
	}

	assert.True(t, categories["CONFIG"], "should have CONFIG checks")
	assert.True(t, categories["GIT"], "should have GIT checks")
	assert.True(t, categories["TERMINAL"], "should have TERMINAL checks")
	assert.True(t, categories["METRICS"], "should have METRICS checks")
}
