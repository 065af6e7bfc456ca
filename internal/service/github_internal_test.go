package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "plain https url",
			url:       "https://github.com/octocat/hello-world",
			wantOwner: "octocat",
			wantRepo:  "hello-world",
		},
		{
			name:      "url with .git suffix",
			url:       "https://github.com/octocat/hello-world.git",
			wantOwner: "octocat",
			wantRepo:  "hello-world",
		},
		{
			name:      "url with trailing slash",
			url:       "https://github.com/octocat/hello-world/",
			wantOwner: "octocat",
			wantRepo:  "hello-world",
		},
		{
			name:      "url with extra path segments",
			url:       "https://github.com/octocat/hello-world/tree/main/docs",
			wantOwner: "octocat",
			wantRepo:  "hello-world",
		},
		{
			name:    "not a github host",
			url:     "https://gitlab.com/octocat/hello-world",
			wantErr: true,
		},
		{
			name:    "missing repo name",
			url:     "https://github.com/octocat",
			wantErr: true,
		},
		{
			name:    "empty path",
			url:     "https://github.com/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := parseRepoURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}
