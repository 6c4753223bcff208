package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	url string
	err error
}

func (f *fakeStorage) Save(context.Context, string, io.Reader, string) error { return nil }

func (f *fakeStorage) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url + "/" + key, nil
}

func TestResumeService_Storage(t *testing.T) {
	s := NewResumeService(&fakeStorage{url: "https://cdn.example.com"}, "Resume.pdf", "", time.Minute)

	loc, err := s.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/Resume.pdf", loc.URL)
	assert.Empty(t, loc.Path)

	s = NewResumeService(&fakeStorage{err: errors.New("no creds")}, "Resume.pdf", "", time.Minute)
	_, err = s.Locate(context.Background())
	assert.ErrorContains(t, err, "no creds")
}

func TestResumeService_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))

	loc, err := NewResumeService(nil, "", path, 0).Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, loc.Path)

	_, err = NewResumeService(nil, "", filepath.Join(t.TempDir(), "missing.pdf"), 0).Locate(context.Background())
	assert.ErrorIs(t, err, ErrResumeUnavailable)

	_, err = NewResumeService(nil, "", "", 0).Locate(context.Background())
	assert.ErrorIs(t, err, ErrResumeUnavailable)
}
