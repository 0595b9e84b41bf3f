package rfc822

import (
	"net/mail"
	"strings"
	"time"
)

// Layout matches email.utils.formatdate(usegmt=True) output, the date shape
// RSS 2.0 readers expect. The value being formatted must be UTC, so Format
// converts before applying it.
const Layout = "Mon, 02 Jan 2006 15:04:05 GMT"

func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Parse reads an RFC-822 style date string. Unparsable input yields the zero
// time so that callers sorting by date push unknown dates to the very end.
func Parse(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	t, err := mail.ParseDate(s)
	if err != nil {
		return time.Time{}
	}

	return t
}
