package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	apperrors "campus-exchange-backend/internal/errors"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubService resolves repository metadata for project github links
type GitHubService struct {
	client *github.Client
}

// NewGitHubService creates a new GitHub service. An empty token yields an
// unauthenticated client, which is enough for public repos at low volume.
func NewGitHubService(token string) *GitHubService {
	var client *github.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		client = github.NewClient(oauth2.NewClient(context.Background(), ts))
	} else {
		client = github.NewClient(nil)
	}
	return &GitHubService{client: client}
}

// RepoInfo represents the metadata shown next to a project write-up
type RepoInfo struct {
	FullName    string    `json:"full_name" example:"owner/my-repo"`
	Description string    `json:"description" example:"An Arduino weather station"`
	Stars       int       `json:"stars" example:"42"`
	Forks       int       `json:"forks" example:"7"`
	Language    string    `json:"language" example:"Go"`
	HTMLURL     string    `json:"html_url" example:"https://github.com/owner/my-repo"`
	PushedAt    time.Time `json:"pushed_at" example:"2025-01-02T12:00:00Z"`
}

// GetRepositoryInfo fetches repo metadata for a github.com URL
func (s *GitHubService) GetRepositoryInfo(ctx context.Context, repoURL string) (*RepoInfo, error) {
	owner, name, err := parseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	repo, _, err := s.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository %s/%s: %w", owner, name, err)
	}

	return &RepoInfo{
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		Language:    repo.GetLanguage(),
		HTMLURL:     repo.GetHTMLURL(),
		PushedAt:    repo.GetPushedAt().Time,
	}, nil
}

// parseRepoURL extracts owner and repo name from a github.com URL
func parseRepoURL(repoURL string) (string, string, error) {
	parsed, err := url.Parse(repoURL)
	if err != nil {
		return "", "", apperrors.NewValidationError("github_link", "not a valid URL")
	}
	if !strings.HasSuffix(parsed.Host, "github.com") {
		return "", "", apperrors.NewValidationError("github_link", "not a github.com URL")
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", apperrors.NewValidationError("github_link", "URL must include owner and repository")
	}

	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
