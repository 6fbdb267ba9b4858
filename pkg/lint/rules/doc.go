// Package rules provides the built-in anomaly rules for wikiscan.
//
// # Rule Domains
//
// Encoding (error severity):
//
//   - WK001: replacement-char - Undecodable bytes or literal U+FFFD
//
//   - WK002: control-char - Control character outside the tab exception
//
//   - WK003: orphan-combining-mark - Combining mark not preceded by a letter
//
// Directives (error severity):
//
//   - WK010: redirect-not-first - Redirect after the first non-comment line
//
//   - WK011: content-after-redirect - Content after a valid redirect
//
//   - WK012: redirect-without-target - Redirect with no target page
//
// Obsolete UseMod markup (warning severity):
//
//   - WK020: usemod-tag - Legacy HTML-style inline tags
//
//   - WK021: usemod-linebreak - UseMod <br> forced line break
//
//   - WK022: moinmoin-tag-casing - <<BR>>-style tag not fully upper case
//
//   - WK030: headline-level - Headline deeper than level 5
//
//   - WK031: headline-whitespace - Whitespace anomalies around headline tags
//
//   - WK032: headline-close-mismatch - Close tag missing or different length
//
//   - WK033: headline-empty - Headline without text
//
//   - WK034: headline-markup - Markup characters inside headline text
//
//   - WK035: headline-numbering - Legacy numbering indicator in headline
//
//   - WK040: quoted-internal-link - Quote artifacts from failed conversion
//
//   - WK041: legacy-external-link - Single-bracket external link
//
//   - WK042: usemod-upload-link - upload: attachment link
//
//   - WK050: usemod-bullet-list - Legacy bullet list line
//
//   - WK051: usemod-numbered-list - Legacy numbered list line
//
//   - WK052: usemod-indent - Legacy indent line
//
//   - WK053: usemod-definition-list - Legacy definition list line
//
// MoinMoin comment lines ("##" prefix) are exempt from markup rules but not
// from encoding rules. Directive lines (single "#") are exempt from markup
// rules.
package rules
