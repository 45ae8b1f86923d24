package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stayloop/booking-api/internal/core/ports"
)

// PhotoStore abstracts the directory where ingested photos are kept.
type PhotoStore interface {
	Save(name string, r io.Reader) error
}

// MediaService ingests photos by remote URL or direct upload.
type MediaService struct {
	store  PhotoStore
	client *http.Client
	logger zerolog.Logger
}

func NewMediaService(store PhotoStore, client *http.Client, logger zerolog.Logger) *MediaService {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &MediaService{store: store, client: client, logger: logger}
}

// UploadByLink fetches the resource at url and stores it under a
// timestamp-derived name with a .jpg extension. Nothing is written when the
// fetch fails.
func (s *MediaService) UploadByLink(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("url", url).Msg("failed to fetch image")
		return "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error().Int("status", resp.StatusCode).Str("url", url).Msg("image fetch returned non-200")
		return "", fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	name := fmt.Sprintf("photo%d.jpg", time.Now().UnixMilli())
	if err := s.store.Save(name, resp.Body); err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	s.logger.Info().Str("filename", name).Msg("photo ingested by link")
	return name, nil
}

// UploadFiles stores each uploaded file under a generated name that keeps
// the original extension. No validation of type, size, or content is done.
func (s *MediaService) UploadFiles(ctx context.Context, files []ports.UploadedFile) ([]string, error) {
	names := make([]string, 0, len(files))
	for _, f := range files {
		name := uuid.NewString() + filepath.Ext(f.OriginalName)
		if err := s.store.Save(name, f.Content); err != nil {
			return nil, fmt.Errorf("store upload %q: %w", f.OriginalName, err)
		}
		names = append(names, name)
	}

	s.logger.Info().Int("count", len(names)).Msg("photos uploaded")
	return names, nil
}
