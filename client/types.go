package client

// Blog is a blog as returned by the read endpoints.
type Blog struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// BlogCreated is the response to CreateBlog. ManageKey is returned exactly
// once, here; store it, it cannot be recovered later.
type BlogCreated struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ManageKey string `json:"manage_key"`
	ViewURL   string `json:"view_url"`
	ManageURL string `json:"manage_url"`
	APIBase   string `json:"api_base"`
}

// Post is a blog post. ContentHTML is the server-rendered markdown.
type Post struct {
	ID           string   `json:"id"`
	BlogID       string   `json:"blog_id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Content      string   `json:"content"`
	ContentHTML  string   `json:"content_html"`
	Summary      string   `json:"summary"`
	Tags         []string `json:"tags"`
	Status       string   `json:"status"`
	PublishedAt  *string  `json:"published_at"`
	AuthorName   string   `json:"author_name"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
	CommentCount int64    `json:"comment_count"`
}

// Comment is a reader comment on a post.
type Comment struct {
	ID         string `json:"id"`
	PostID     string `json:"post_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

// SearchResult is one full-text search hit.
type SearchResult struct {
	ID          string   `json:"id"`
	BlogID      string   `json:"blog_id"`
	BlogName    string   `json:"blog_name"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Summary     string   `json:"summary"`
	Tags        []string `json:"tags"`
	AuthorName  string   `json:"author_name"`
	PublishedAt *string  `json:"published_at"`
}

// SemanticHit is one semantic search hit with its similarity score.
type SemanticHit struct {
	PostID     string  `json:"post_id"`
	BlogID     string  `json:"blog_id"`
	Similarity float64 `json:"similarity"`
}

// JSONFeed is a JSON Feed 1.1 document.
type JSONFeed struct {
	Version     string         `json:"version"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	HomePageURL string         `json:"home_page_url"`
	FeedURL     string         `json:"feed_url"`
	Items       []JSONFeedItem `json:"items"`
}

// JSONFeedItem is one entry of a JSONFeed.
type JSONFeedItem struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	URL           string       `json:"url"`
	Summary       string       `json:"summary"`
	ContentHTML   string       `json:"content_html"`
	DatePublished *string      `json:"date_published"`
	Authors       []FeedAuthor `json:"authors"`
	Tags          []string     `json:"tags"`
}

// FeedAuthor names a post author inside a feed item.
type FeedAuthor struct {
	Name string `json:"name"`
}

// BlogStats carries per-blog analytics counters.
type BlogStats struct {
	BlogID       string           `json:"blog_id"`
	PostCount    int64            `json:"post_count"`
	CommentCount int64            `json:"comment_count"`
	TagCounts    map[string]int64 `json:"tag_counts,omitempty"`
}

// PreviewResult is the rendered HTML of a markdown preview.
type PreviewResult struct {
	HTML string `json:"html"`
}

// NostrEvent is a NIP-23 long-form content event produced by the nostr
// export endpoint.
type NostrEvent struct {
	ID        string     `json:"id,omitempty"`
	PubKey    string     `json:"pubkey,omitempty"`
	Kind      int        `json:"kind"`
	CreatedAt int64      `json:"created_at"`
	Tags      [][]string `json:"tags"`
	Content   string     `json:"content"`
	Sig       string     `json:"sig,omitempty"`
}

// DeleteResult acknowledges a delete operation.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

// HealthStatus is the health endpoint's answer.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
