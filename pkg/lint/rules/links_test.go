package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotedInternalLinkRule(t *testing.T) {
	rule := NewQuotedInternalLinkRule()

	t.Run("quoted target", func(t *testing.T) {
		findings := applyRule(t, rule, `see ["Some Page"] for details` + "\n")
		require.Len(t, findings, 1)
		f := findings[0]
		assert.Equal(t, "WK040", f.RuleID)
		assert.Equal(t, "fail-converted unnamed internal UseMod link", f.Message)
		assert.Equal(t, 5, f.Column)
		assert.Equal(t, 18, f.EndColumn)
	})

	t.Run("proper double bracket link passes", func(t *testing.T) {
		findings := applyRule(t, rule, "see [[Some Page]] for details\n")
		assert.Empty(t, findings)
	})

	t.Run("multiple quoted links on one line", func(t *testing.T) {
		findings := applyRule(t, rule, `["One"] and ["Two"]` + "\n")
		assert.Len(t, findings, 2)
	})
}

func TestLegacyExternalLinkRule(t *testing.T) {
	rule := NewLegacyExternalLinkRule()

	t.Run("single bracket external link", func(t *testing.T) {
		findings := applyRule(t, rule, "[http://example.org Seite]\n")
		require.Len(t, findings, 1)
		assert.Equal(t, "WK041", findings[0].RuleID)
		assert.Equal(t, "fail-converted external UseMod link", findings[0].Message)
	})

	t.Run("double bracket external link passes", func(t *testing.T) {
		findings := applyRule(t, rule, "[[http://example.org|Seite]]\n")
		assert.Empty(t, findings)
	})

	t.Run("single bracket without scheme passes", func(t *testing.T) {
		findings := applyRule(t, rule, "[SomePage]\n")
		assert.Empty(t, findings)
	})

	t.Run("quoted links belong to the quote rule", func(t *testing.T) {
		findings := applyRule(t, rule, `["http://example.org"]` + "\n")
		assert.Empty(t, findings)
	})
}

func TestUsemodUploadLinkRule(t *testing.T) {
	rule := NewUsemodUploadLinkRule()

	t.Run("upload link", func(t *testing.T) {
		findings := applyRule(t, rule, "see upload:picture.jpg here\n")
		require.Len(t, findings, 1)
		f := findings[0]
		assert.Equal(t, "WK042", f.RuleID)
		assert.Equal(t, "UseMod upload link", f.Message)
		assert.Equal(t, 5, f.Column)
		assert.Equal(t, 23, f.EndColumn)
	})

	t.Run("upload link at line start", func(t *testing.T) {
		findings := applyRule(t, rule, "upload:file.pdf\n")
		require.Len(t, findings, 1)
		assert.Equal(t, 1, findings[0].Column)
	})

	t.Run("case insensitive", func(t *testing.T) {
		findings := applyRule(t, rule, "Upload:File.pdf\n")
		assert.Len(t, findings, 1)
	})

	t.Run("embedded in a word passes", func(t *testing.T) {
		findings := applyRule(t, rule, "reupload:file.pdf\n")
		assert.Empty(t, findings)
	})
}
