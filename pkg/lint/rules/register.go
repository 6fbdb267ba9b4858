package rules

import "github.com/larpwiki/wikiscan/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Encoding rules
	registry.Register(NewReplacementCharRule())     // WK001
	registry.Register(NewControlCharRule())         // WK002
	registry.Register(NewOrphanCombiningMarkRule()) // WK003

	// Directive rules
	registry.Register(NewRedirectNotFirstRule())     // WK010
	registry.Register(NewContentAfterRedirectRule()) // WK011
	registry.Register(NewRedirectWithoutTargetRule()) // WK012

	// Tag rules
	registry.Register(NewUsemodTagRule())        // WK020
	registry.Register(NewUsemodLinebreakRule())  // WK021
	registry.Register(NewMoinMoinTagCasingRule()) // WK022

	// Headline rules
	registry.Register(NewHeadlineLevelRule())         // WK030
	registry.Register(NewHeadlineWhitespaceRule())    // WK031
	registry.Register(NewHeadlineCloseMismatchRule()) // WK032
	registry.Register(NewHeadlineEmptyRule())         // WK033
	registry.Register(NewHeadlineMarkupRule())        // WK034
	registry.Register(NewHeadlineNumberingRule())     // WK035

	// Link rules
	registry.Register(NewQuotedInternalLinkRule()) // WK040
	registry.Register(NewLegacyExternalLinkRule()) // WK041
	registry.Register(NewUsemodUploadLinkRule())   // WK042

	// List and paragraph rules
	registry.Register(NewUsemodBulletListRule())     // WK050
	registry.Register(NewUsemodNumberedListRule())   // WK051
	registry.Register(NewUsemodIndentRule())         // WK052
	registry.Register(NewUsemodDefinitionListRule()) // WK053
}

//nolint:gochecknoinits // Rule self-registration mirrors database/sql driver style
func init() {
	RegisterAll(lint.DefaultRegistry)
}
