package domain

type ArticleLink struct {
	Title string
	URL   string
}

type Item struct {
	Title       string
	Link        string
	PubDate     string
	Description string
}

type Episode struct {
	Podcast string
	Title   string
	PubDate string
	Links   []ArticleLink
}
