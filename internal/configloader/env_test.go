package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larpwiki/wikiscan/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WIKISCAN_BASE_URL", "https://wiki.example.org/")
	t.Setenv("WIKISCAN_FORMAT", "json")
	t.Setenv("WIKISCAN_JOBS", "6")
	t.Setenv("WIKISCAN_EXTENSIONS", ".txt, .wiki")
	t.Setenv("WIKISCAN_EXCLUDE", "HelpOn*,BadContent")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, "https://wiki.example.org/", cfg.BaseURL)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, 6, cfg.Jobs)
	assert.Equal(t, []string{".txt", ".wiki"}, cfg.Extensions)
	assert.Equal(t, []string{"HelpOn*", "BadContent"}, cfg.Exclude)
}

func TestLoadFromEnvUnsetLeavesConfig(t *testing.T) {
	t.Setenv("WIKISCAN_BASE_URL", "")
	t.Setenv("WIKISCAN_JOBS", "")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, config.DefaultBaseURL, cfg.BaseURL)
	assert.Zero(t, cfg.Jobs)
}

func TestLoadFromEnvInvalidInteger(t *testing.T) {
	t.Setenv("WIKISCAN_JOBS", "many")

	err := LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WIKISCAN_JOBS")
}

func TestLoadFromEnvNilConfig(t *testing.T) {
	assert.NoError(t, LoadFromEnv(nil))
}

func TestParseSliceValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: ".txt", want: []string{".txt"}},
		{name: "trims whitespace", input: " a , b ", want: []string{"a", "b"}},
		{name: "drops empty elements", input: "a,,b,", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSliceValue(tt.input))
		})
	}
}

func TestListEnvVars(t *testing.T) {
	vars := ListEnvVars()
	for name := range envMappings {
		assert.Contains(t, vars, envVarPrefix+name)
	}
}
