package reporter

import (
	"net/url"
	"path/filepath"
	"strings"
)

// PageURL derives the live wiki URL for an exported page file. Export
// filenames encode subpage separators as " - " and carry a .txt suffix;
// both are undone before percent-escaping the page name against baseURL.
//
// "Orga - Checklisten.txt" under "https://larpwiki.de/" becomes
// "https://larpwiki.de/Orga/Checklisten".
func PageURL(path, baseURL string) string {
	if baseURL == "" {
		return ""
	}

	pageName := filepath.Base(path)
	pageName = strings.ReplaceAll(pageName, " - ", "/")
	pageName = strings.TrimSuffix(pageName, ".txt")

	segments := strings.Split(pageName, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.TrimSuffix(baseURL, "/") + "/" + strings.Join(segments, "/")
}
