package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/Abhinay9346/portfolio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Disabled(t *testing.T) {
	s, err := New(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestS3Storage_PresignedURL(t *testing.T) {
	s, err := NewS3Storage(context.Background(), S3Config{
		Region:    "us-east-1",
		Bucket:    "portfolio",
		AccessKey: "minio",
		SecretKey: "minio-secret",
		Endpoint:  "http://localhost:9000",
	})
	require.NoError(t, err)

	raw, err := s.PresignedURL(context.Background(), "Resume.pdf", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/portfolio/Resume.pdf", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}
