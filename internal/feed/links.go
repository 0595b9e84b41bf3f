package feed

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"podlinks/internal/domain"
)

// markerPhrases introduce an article list inside an episode description,
// matched as substrings of the lowercased bold-heading text.
var markerPhrases = []string{
	"free to read",
	"mentioned in this podcast",
}

// hrefExcludeSubstrings drop sign-up, survey and support links before the
// domain check runs, matched as substrings of the lowercased href.
var hrefExcludeSubstrings = []string{
	"ft.com/techtonicsurvey",
	"ft.com/survey",
	"ep.ft.com",
	"subscribe",
	"newsletters",
	"newsletter",
	"ft.com/support",
}

// allowedDomains accept a hostname that equals an entry or ends with
// "." plus an entry. The dot boundary keeps lookalikes such as
// notft.com out.
var allowedDomains = []string{
	"ft.com",
	"on.ft.com",
}

// textExcludeKeywords drop anchors whose visible text reads like a
// call to action rather than an article title.
var textExcludeKeywords = []string{
	"sign up",
	"subscribe",
	"transcript",
	"survey",
	"newsletter",
	"twitter",
}

var (
	boldTags     = map[string]struct{}{"strong": {}, "b": {}}
	boundaryTags = map[string]struct{}{"strong": {}, "b": {}, "hr": {}}
)

// ExtractArticleLinks scans an episode description for a bold heading
// matching one of the marker phrases and collects the article anchors that
// follow it in document order, stopping at the next bold heading or
// horizontal rule. Only the first matching heading is consulted: when its
// run yields nothing, the result is empty even if a later heading would
// have matched.
func ExtractArticleLinks(descriptionHTML string) []domain.ArticleLink {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(descriptionHTML))
	if err != nil {
		return nil
	}

	elements := doc.Find("*")

	start := -1
	for i := 0; i < elements.Length(); i++ {
		el := elements.Eq(i)
		if _, ok := boldTags[goquery.NodeName(el)]; !ok {
			continue
		}

		heading := strings.ToLower(strings.TrimSpace(el.Text()))
		if containsAny(heading, markerPhrases) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	var links []domain.ArticleLink

	for i := start + 1; i < elements.Length(); i++ {
		el := elements.Eq(i)

		name := goquery.NodeName(el)
		if _, ok := boundaryTags[name]; ok {
			break
		}
		if name != "a" {
			continue
		}

		if link, ok := linkFromAnchor(el); ok {
			links = append(links, link)
		}
	}

	return links
}

// linkFromAnchor vets a single anchor inside an article run and turns it
// into a link, reporting whether the anchor survived the filters.
func linkFromAnchor(el *goquery.Selection) (domain.ArticleLink, bool) {
	if el.Find("strong, b").Length() > 0 {
		// Bold anchors are transcript or promo callouts, not articles.
		return domain.ArticleLink{}, false
	}

	href, ok := el.Attr("href")
	if !ok || href == "" {
		return domain.ArticleLink{}, false
	}

	hrefLower := strings.ToLower(href)
	if strings.HasPrefix(hrefLower, "mailto:") {
		return domain.ArticleLink{}, false
	}
	if containsAny(hrefLower, hrefExcludeSubstrings) {
		return domain.ArticleLink{}, false
	}
	if !allowedArticleHost(href) {
		return domain.ArticleLink{}, false
	}

	title := strings.TrimSpace(el.Text())
	if containsAny(strings.ToLower(title), textExcludeKeywords) {
		return domain.ArticleLink{}, false
	}
	if title == "" {
		title = href
	}

	return domain.ArticleLink{Title: title, URL: href}, true
}

func allowedArticleHost(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}

	for _, allowed := range allowedDomains {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}

	return false
}

func containsAny(s string, substrings []string) bool {
	for _, substring := range substrings {
		if strings.Contains(s, substring) {
			return true
		}
	}

	return false
}
