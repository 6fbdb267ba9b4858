package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larpwiki/wikiscan/pkg/config"
	_ "github.com/larpwiki/wikiscan/pkg/lint/rules"
)

func TestValidateCleanConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Rules["WK020"] = config.RuleConfig{Severity: strPtr("error")}

	result := Validate(cfg)
	assert.True(t, result.Valid())
	assert.False(t, result.HasWarnings())
}

func TestValidateNilConfig(t *testing.T) {
	assert.True(t, Validate(nil).Valid())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		field   string
		message string
	}{
		{
			name:    "invalid format",
			mutate:  func(c *config.Config) { c.Format = "xml" },
			field:   "format",
			message: "invalid format",
		},
		{
			name:    "negative jobs",
			mutate:  func(c *config.Config) { c.Jobs = -1 },
			field:   "jobs",
			message: "jobs must be >= 0",
		},
		{
			name:    "extension without dot",
			mutate:  func(c *config.Config) { c.Extensions = []string{"txt"} },
			field:   "extensions[0]",
			message: "must start with a dot",
		},
		{
			name: "invalid rule severity",
			mutate: func(c *config.Config) {
				c.Rules["WK001"] = config.RuleConfig{Severity: strPtr("critical")}
			},
			field:   "rules.WK001.severity",
			message: "invalid severity",
		},
		{
			name:    "malformed exclude glob",
			mutate:  func(c *config.Config) { c.Exclude = []string{"[unclosed"} },
			field:   "exclude[0]",
			message: "invalid glob pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			tt.mutate(cfg)

			result := Validate(cfg)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tt.field, result.Errors[0].Field)
			assert.Contains(t, result.Errors[0].Message, tt.message)
		})
	}
}

func TestValidateUnknownRuleIsWarning(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Rules["WK999"] = config.RuleConfig{Enabled: boolPtr(true)}

	result := Validate(cfg)
	assert.True(t, result.Valid())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, `unknown rule "WK999"`)
}

func TestValidationErrorString(t *testing.T) {
	err := &ValidationError{Field: "jobs", Message: "jobs must be >= 0 (0 means auto)"}
	assert.Equal(t, "jobs: jobs must be >= 0 (0 means auto)", err.Error())

	err.FilePath = ".wikiscan.yml"
	assert.Equal(t, ".wikiscan.yml: jobs: jobs must be >= 0 (0 means auto)", err.Error())
}

func TestValidateWithFile(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Jobs = -1
	cfg.Rules["WK999"] = config.RuleConfig{}

	result := ValidateWithFile(cfg, "config.yaml")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "config.yaml", result.Errors[0].FilePath)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "config.yaml", result.Warnings[0].FilePath)

	messages := result.AllMessages()
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "error: config.yaml: jobs:")
	assert.Contains(t, messages[1], "warning: config.yaml: rules.WK999:")
}
