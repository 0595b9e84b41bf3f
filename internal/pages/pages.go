// Package pages writes the paginated HTML listings of extracted links.
package pages

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"podlinks/internal/domain"
)

// DefaultPerPage is the number of episodes listed on each HTML page.
const DefaultPerPage = 10

const pageFileFormat = "links_page_%d.html"

var pageTemplate = template.Must(template.New("page").Parse(
	`<html><head><meta charset='utf-8'><title>FT Podcast Links - Page {{.Number}}</title></head><body>
{{range .Episodes}}<h2>{{.PubDate}} - {{.Podcast}}: {{.Title}}</h2>
<ul>
{{range .Links}}<li><a href='{{.URL}}'>{{.Title}}</a></li>
{{end}}</ul>
{{end}}{{if or .PrevName .NextName}}<p>{{if .PrevName}}<a href='{{.PrevName}}'>Previous</a>{{end}}{{if and .PrevName .NextName}} | {{end}}{{if .NextName}}<a href='{{.NextName}}'>Next</a>{{end}}</p>
{{end}}</body></html>
`))

type pageData struct {
	Number   int
	Episodes []domain.Episode
	PrevName string
	NextName string
}

// Write renders the episodes into numbered HTML pages under outputDir,
// perPage episodes per file, and returns how many pages it wrote. Page
// numbering starts at 1; no files are written when there are no episodes.
func Write(episodes []domain.Episode, outputDir string, perPage int) (int, error) {
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	totalPages := (len(episodes) + perPage - 1) / perPage

	for page := 1; page <= totalPages; page++ {
		start := (page - 1) * perPage
		end := min(start+perPage, len(episodes))

		data := pageData{
			Number:   page,
			Episodes: episodes[start:end],
		}
		if page > 1 {
			data.PrevName = fmt.Sprintf(pageFileFormat, page-1)
		}
		if page < totalPages {
			data.NextName = fmt.Sprintf(pageFileFormat, page+1)
		}

		var buf bytes.Buffer
		if err := pageTemplate.Execute(&buf, data); err != nil {
			return 0, fmt.Errorf("render page %d: %w", page, err)
		}

		path := filepath.Join(outputDir, fmt.Sprintf(pageFileFormat, page))
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return 0, fmt.Errorf("write page %d: %w", page, err)
		}
	}

	return totalPages, nil
}
