package render

import (
	"net/url"
	"strings"

	"github.com/five82/roster/internal/roster"
)

// NoProfileLabel is shown when a record has no profile URL.
const NoProfileLabel = "No Profile"

// ShortLink derives the compact link label for a profile URL. A URL with a
// scheme and host renders as the lowercased host (without a leading "www.") plus its path
// when the path is more than "/". Anything else has a leading http(s)
// scheme stripped and is shown as is.
func ShortLink(profile string) string {
	if profile == "" || profile == roster.NoProfile {
		return NoProfileLabel
	}
	u, err := url.Parse(profile)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return stripScheme(profile)
	}
	label := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if path := u.EscapedPath(); len(path) > 1 {
		label += path
	}
	return label
}

func stripScheme(raw string) string {
	for _, prefix := range []string{"https://", "http://"} {
		if strings.HasPrefix(raw, prefix) {
			return strings.TrimPrefix(raw, prefix)
		}
	}
	return raw
}
