// Package storage proxies media uploads to the external storage endpoint.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gulfbridge/portal/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Preset selects server-side processing on the storage endpoint, e.g. image
// resizing or CV archival.
type Preset string

const (
	PresetImage Preset = "image"
	PresetVideo Preset = "video"
	PresetLogo  Preset = "logo"
	PresetCV    Preset = "cv"
)

func (p Preset) Valid() bool {
	switch p {
	case PresetImage, PresetVideo, PresetLogo, PresetCV:
		return true
	}
	return false
}

type File struct {
	Name    string
	Content []byte
}

type Uploader interface {
	// Upload sends one file and returns its public URL.
	Upload(ctx context.Context, preset Preset, file File) (string, error)
	// UploadMany uploads all files concurrently and preserves input order in
	// the returned URLs. One failure fails the whole batch.
	UploadMany(ctx context.Context, preset Preset, files []File) ([]string, error)
}

type Params struct {
	fx.In

	Cfg config.Config
	Log *zap.Logger
}

type client struct {
	endpoint string
	presets  map[Preset]string
	http     *http.Client
	log      *zap.Logger
}

func New(p Params) Uploader {
	return &client{
		endpoint: p.Cfg.Upload.Endpoint,
		presets: map[Preset]string{
			PresetImage: p.Cfg.Upload.ImagePreset,
			PresetVideo: p.Cfg.Upload.VideoPreset,
			PresetLogo:  p.Cfg.Upload.LogoPreset,
			PresetCV:    p.Cfg.Upload.CVPreset,
		},
		http: &http.Client{Timeout: 60 * time.Second},
		log:  p.Log.Named("providers.storage"),
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (c *client) Upload(ctx context.Context, preset Preset, file File) (string, error) {
	if !preset.Valid() {
		return "", fmt.Errorf("unknown upload preset %q", preset)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(file.Content); err != nil {
		return "", err
	}
	if err := writer.WriteField("preset", c.presets[preset]); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("storage endpoint returned %d: %s", resp.StatusCode, payload)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode storage response: %w", err)
	}
	if parsed.URL == "" {
		return "", fmt.Errorf("storage endpoint returned no url")
	}
	return parsed.URL, nil
}

func (c *client) UploadMany(ctx context.Context, preset Preset, files []File) ([]string, error) {
	urls := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			url, err := c.Upload(ctx, preset, file)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	c.log.Info("batch upload complete",
		zap.String("preset", string(preset)), zap.Int("count", len(files)))
	return urls, nil
}
