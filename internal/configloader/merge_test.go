package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larpwiki/wikiscan/pkg/config"
)

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }

func TestMergeScalars(t *testing.T) {
	base := &config.Config{
		BaseURL: "https://larpwiki.de/",
		Format:  config.FormatText,
		Jobs:    4,
	}

	t.Run("non-zero override wins", func(t *testing.T) {
		merged := merge(base, &config.Config{
			BaseURL: "https://wiki.example.org/",
			Jobs:    8,
		})
		assert.Equal(t, "https://wiki.example.org/", merged.BaseURL)
		assert.Equal(t, 8, merged.Jobs)
		// Untouched fields keep the base value.
		assert.Equal(t, config.FormatText, merged.Format)
	})

	t.Run("zero values do not override", func(t *testing.T) {
		merged := merge(base, &config.Config{})
		assert.Equal(t, "https://larpwiki.de/", merged.BaseURL)
		assert.Equal(t, config.FormatText, merged.Format)
		assert.Equal(t, 4, merged.Jobs)
	})

	t.Run("nil arguments pass through", func(t *testing.T) {
		assert.Equal(t, base, merge(nil, base))
		assert.Equal(t, base, merge(base, nil))
	})
}

func TestMergeSlices(t *testing.T) {
	base := &config.Config{
		Extensions: []string{".txt"},
		Exclude:    []string{"HelpOn*"},
	}

	t.Run("nil slice keeps base", func(t *testing.T) {
		merged := merge(base, &config.Config{})
		assert.Equal(t, []string{".txt"}, merged.Extensions)
		assert.Equal(t, []string{"HelpOn*"}, merged.Exclude)
	})

	t.Run("non-nil slice replaces base entirely", func(t *testing.T) {
		merged := merge(base, &config.Config{
			Extensions: []string{".txt", ".wiki"},
			Exclude:    []string{},
		})
		assert.Equal(t, []string{".txt", ".wiki"}, merged.Extensions)
		assert.Empty(t, merged.Exclude)
	})

	t.Run("cli rule lists replace", func(t *testing.T) {
		merged := merge(
			&config.Config{EnableRules: []string{"WK001"}},
			&config.Config{DisableRules: []string{"WK050"}},
		)
		assert.Equal(t, []string{"WK001"}, merged.EnableRules)
		assert.Equal(t, []string{"WK050"}, merged.DisableRules)
	})
}

func TestMergeRules(t *testing.T) {
	base := &config.Config{
		Rules: map[string]config.RuleConfig{
			"WK020": {
				Enabled:  boolPtr(true),
				Severity: strPtr("warning"),
				Options:  map[string]any{"tags": []string{"b", "i"}},
			},
			"WK001": {Enabled: boolPtr(true)},
		},
	}
	override := &config.Config{
		Rules: map[string]config.RuleConfig{
			"WK020": {
				Severity: strPtr("error"),
				Options:  map[string]any{"strict": true},
			},
			"WK050": {Enabled: boolPtr(false)},
		},
	}

	merged := merge(base, override)
	require.Len(t, merged.Rules, 3)

	// Severity is overridden, Enabled survives from base, options deep-merge.
	wk020 := merged.Rules["WK020"]
	require.NotNil(t, wk020.Enabled)
	assert.True(t, *wk020.Enabled)
	require.NotNil(t, wk020.Severity)
	assert.Equal(t, "error", *wk020.Severity)
	assert.Equal(t, []string{"b", "i"}, wk020.Options["tags"])
	assert.Equal(t, true, wk020.Options["strict"])

	// Base-only and override-only entries both survive.
	require.NotNil(t, merged.Rules["WK001"].Enabled)
	require.NotNil(t, merged.Rules["WK050"].Enabled)
	assert.False(t, *merged.Rules["WK050"].Enabled)
}

func TestMergeAll(t *testing.T) {
	assert.Nil(t, MergeAll())

	merged := MergeAll(
		&config.Config{BaseURL: "https://a.example/", Jobs: 1},
		&config.Config{Jobs: 2},
		&config.Config{Format: config.FormatJSON},
	)
	assert.Equal(t, "https://a.example/", merged.BaseURL)
	assert.Equal(t, 2, merged.Jobs)
	assert.Equal(t, config.FormatJSON, merged.Format)
}
