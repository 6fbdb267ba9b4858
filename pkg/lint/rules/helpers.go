package rules

import (
	"regexp"

	"github.com/larpwiki/wikiscan/pkg/wikitext"
)

// smilieRe matches a simple western LTR ASCII smilie like ";~P=" at the start
// of a string: eyes, optional nose, mouth, optional beard, then whitespace or
// end. Lines opening with a smilie must not be mistaken for legacy indent or
// definition-list markup.
var smilieRe = regexp.MustCompile(`^[:;,8B][-~]?[)}\]|({\[pPD][=#]?(\s|$)`)

// startsWithSmilie reports whether the line opens with an ASCII smilie.
func startsWithSmilie(line string) bool {
	return smilieRe.MatchString(line)
}

// contentLines calls fn for every line that is neither a MoinMoin comment nor
// a directive. Markup rules only apply to ordinary content.
func contentLines(page *wikitext.Page, fn func(line *wikitext.TextLine)) {
	for i := range page.Lines {
		line := &page.Lines[i]
		if wikitext.IsComment(line.Text) || wikitext.IsDirective(line.Text) {
			continue
		}
		fn(line)
	}
}
