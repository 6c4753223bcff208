package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Abhinay9346/portfolio/internal/storage"
)

var ErrResumeUnavailable = errors.New("resume not available")

// ResumeLocation is either a remote URL or a local file path.
type ResumeLocation struct {
	URL  string
	Path string
}

type ResumeService struct {
	storage storage.Storage
	key     string
	path    string
	expiry  time.Duration
}

// NewResumeService serves the resume from store when it is non-nil,
// otherwise from the local file at path.
func NewResumeService(store storage.Storage, key, path string, expiry time.Duration) *ResumeService {
	return &ResumeService{
		storage: store,
		key:     key,
		path:    path,
		expiry:  expiry,
	}
}

func (s *ResumeService) Locate(ctx context.Context) (ResumeLocation, error) {
	if s.storage != nil {
		url, err := s.storage.PresignedURL(ctx, s.key, s.expiry)
		if err != nil {
			return ResumeLocation{}, fmt.Errorf("failed to locate resume: %w", err)
		}
		return ResumeLocation{URL: url}, nil
	}

	if s.path == "" {
		return ResumeLocation{}, ErrResumeUnavailable
	}

	info, err := os.Stat(s.path)
	if err != nil || info.IsDir() {
		return ResumeLocation{}, ErrResumeUnavailable
	}

	return ResumeLocation{Path: s.path}, nil
}
