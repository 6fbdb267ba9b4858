package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageURL(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		baseURL string
		want    string
	}{
		{
			name:    "subpage separator becomes slash",
			path:    "Orga - Checklisten.txt",
			baseURL: "https://larpwiki.de/",
			want:    "https://larpwiki.de/Orga/Checklisten",
		},
		{
			name:    "directory part is ignored",
			path:    "/backup/2026/Orga - Checklisten.txt",
			baseURL: "https://larpwiki.de/",
			want:    "https://larpwiki.de/Orga/Checklisten",
		},
		{
			name:    "plain page name",
			path:    "StartSeite.txt",
			baseURL: "https://larpwiki.de/",
			want:    "https://larpwiki.de/StartSeite",
		},
		{
			name:    "non-ascii and spaces are percent escaped",
			path:    "Ältere Werke.txt",
			baseURL: "https://larpwiki.de/",
			want:    "https://larpwiki.de/%C3%84ltere%20Werke",
		},
		{
			name:    "base url without trailing slash",
			path:    "StartSeite.txt",
			baseURL: "https://larpwiki.de",
			want:    "https://larpwiki.de/StartSeite",
		},
		{
			name:    "nested subpages",
			path:    "A - B - C.txt",
			baseURL: "https://larpwiki.de/",
			want:    "https://larpwiki.de/A/B/C",
		},
		{
			name:    "empty base url disables urls",
			path:    "StartSeite.txt",
			baseURL: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageURL(tt.path, tt.baseURL))
		})
	}
}
