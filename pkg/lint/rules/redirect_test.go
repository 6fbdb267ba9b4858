package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectNotFirstRule(t *testing.T) {
	rule := NewRedirectNotFirstRule()

	tests := []struct {
		name      string
		input     string
		wantLines []int
	}{
		{
			name:  "redirect on first line",
			input: "#REDIRECT SomePage\n",
		},
		{
			name:  "redirect after comments",
			input: "## old page\n## see target\n#REDIRECT SomePage\n",
		},
		{
			name:  "redirect after directive",
			input: "#format wiki\n#REDIRECT SomePage\n",
		},
		{
			name:      "redirect after content",
			input:     "Some text.\n#REDIRECT SomePage\n",
			wantLines: []int{2},
		},
		{
			name:      "redirect after empty line",
			input:     "\n#REDIRECT SomePage\n",
			wantLines: []int{2},
		},
		{
			name:      "second redirect is misplaced",
			input:     "#REDIRECT First\n#REDIRECT Second\n",
			wantLines: []int{2},
		},
		{
			name:  "no redirect at all",
			input: "Just text.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := applyRule(t, rule, tt.input)

			var lines []int
			for _, f := range findings {
				assert.Equal(t, "WK010", f.RuleID)
				assert.Equal(t,
					"redirect on a non-first line is ignored by the wiki engine",
					f.Message)
				lines = append(lines, f.Line)
			}
			assert.Equal(t, tt.wantLines, lines)
		})
	}
}

func TestRedirectWithoutTargetRule(t *testing.T) {
	rule := NewRedirectWithoutTargetRule()

	t.Run("redirect with target", func(t *testing.T) {
		findings := applyRule(t, rule, "#REDIRECT SomePage\n")
		assert.Empty(t, findings)
	})

	t.Run("bare redirect keyword", func(t *testing.T) {
		findings := applyRule(t, rule, "#REDIRECT\n")
		require.Len(t, findings, 1)
		assert.Equal(t, "WK012", findings[0].RuleID)
		assert.Equal(t, "redirect without a target page", findings[0].Message)
	})

	t.Run("redirect with trailing whitespace only", func(t *testing.T) {
		findings := applyRule(t, rule, "#REDIRECT   \n")
		assert.Len(t, findings, 1)
	})

	t.Run("misplaced redirect is not double reported", func(t *testing.T) {
		findings := applyRule(t, rule, "text\n#REDIRECT\n")
		assert.Empty(t, findings)
	})
}

func TestContentAfterRedirectRule(t *testing.T) {
	rule := NewContentAfterRedirectRule()

	t.Run("redirect only", func(t *testing.T) {
		findings := applyRule(t, rule, "#REDIRECT SomePage\n")
		assert.Empty(t, findings)
	})

	t.Run("comments and blanks after redirect", func(t *testing.T) {
		findings := applyRule(t, rule, "#REDIRECT SomePage\n\n## kept for history\n")
		assert.Empty(t, findings)
	})

	t.Run("content after redirect", func(t *testing.T) {
		findings := applyRule(t, rule, "#REDIRECT SomePage\nOld content.\n  indented\n")
		require.Len(t, findings, 2)

		assert.Equal(t, "WK011", findings[0].RuleID)
		assert.Equal(t, 2, findings[0].Line)
		assert.Equal(t, 1, findings[0].Column)
		assert.Equal(t,
			"non-empty non-comment line after a valid redirect",
			findings[0].Message)

		// Leading whitespace is excluded from the reported range.
		assert.Equal(t, 3, findings[1].Line)
		assert.Equal(t, 3, findings[1].Column)
	})

	t.Run("no valid redirect means no findings", func(t *testing.T) {
		findings := applyRule(t, rule, "text\n#REDIRECT SomePage\nmore text\n")
		assert.Empty(t, findings)
	})

	t.Run("redirect without target does not claim the page", func(t *testing.T) {
		findings := applyRule(t, rule, "#REDIRECT\ncontent\n")
		assert.Empty(t, findings)
	})
}
