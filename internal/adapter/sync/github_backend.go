package sync

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v39/github"
	"golang.org/x/oauth2"

	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

// GitHubBackend keeps the backup as one JSON file in a repository, using
// the commit history as a free audit trail of every sync.
type GitHubBackend struct {
	client *github.Client
	owner  string
	repo   string
	branch string
	path   string
}

var _ interfaces.ISyncBackend = (*GitHubBackend)(nil)

func NewGitHubBackend(token, owner, repo, branch, path string) (*GitHubBackend, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("github sync requires a token")
	}
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("github sync requires owner and repository")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := github.NewClient(oauth2.NewClient(context.Background(), ts))
	return &GitHubBackend{client: client, owner: owner, repo: repo, branch: branch, path: path}, nil
}

func (b *GitHubBackend) Name() string { return "github" }

// Upload commits the blob, updating in place when the file already exists.
// The key lands in the commit message; the path is fixed by configuration.
func (b *GitHubBackend) Upload(ctx context.Context, key string, blob []byte) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(fmt.Sprintf("chore: backup %s", key)),
		Content: blob,
		Branch:  github.String(b.branch),
	}

	current, _, resp, err := b.client.Repositories.GetContents(ctx, b.owner, b.repo, b.path,
		&github.RepositoryContentGetOptions{Ref: b.branch})
	switch {
	case err == nil && current != nil:
		opts.SHA = current.SHA
		_, _, err = b.client.Repositories.UpdateFile(ctx, b.owner, b.repo, b.path, opts)
	case err == nil:
		return fmt.Errorf("%s is a directory, not a backup file", b.path)
	case resp != nil && resp.StatusCode == http.StatusNotFound:
		_, _, err = b.client.Repositories.CreateFile(ctx, b.owner, b.repo, b.path, opts)
	}
	if err != nil {
		return fmt.Errorf("committing backup to %s/%s: %w", b.owner, b.repo, err)
	}
	return nil
}

func (b *GitHubBackend) Download(ctx context.Context, _ string) ([]byte, error) {
	file, _, resp, err := b.client.Repositories.GetContents(ctx, b.owner, b.repo, b.path,
		&github.RepositoryContentGetOptions{Ref: b.branch})
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return nil, interfaces.ErrRemoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching backup from %s/%s: %w", b.owner, b.repo, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%s is a directory, not a backup file", b.path)
	}
	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decoding backup content: %w", err)
	}
	return []byte(content), nil
}
