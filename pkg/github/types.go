package github

// Repo represents a GitHub repository summary as returned by the
// user-repos listing endpoint. Only the fields the portfolio pipeline
// consumes are decoded.
type Repo struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description string   `json:"description"`
	Private     bool     `json:"private"`
	Fork        bool     `json:"fork"`
	Archived    bool     `json:"archived"`
	HTMLURL     string   `json:"html_url"`
	Homepage    string   `json:"homepage"`
	Language    string   `json:"language"`
	Stars       int      `json:"stargazers_count"`
	Topics      []string `json:"topics"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	PushedAt    string   `json:"pushed_at"`
}

// RepoWithReadme pairs a repository with its README text.
// HasReadme is false when the repository has no README or the fetch failed;
// Readme is empty in that case.
type RepoWithReadme struct {
	Repo      Repo
	Readme    string
	HasReadme bool
}

// readmeResponse is the GitHub API response for the readme endpoint.
type readmeResponse struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}
