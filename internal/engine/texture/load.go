package texture

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/logger"
)

// Request names one image to load.
type Request struct {
	Name string
	Path string
}

// Decoded is an image ready for upload.
type Decoded struct {
	Name string
	Path string
	RGBA *image.RGBA
	// Size of the file before downscaling.
	SourceWidth, SourceHeight int
}

// LoadOptions controls decoding.
type LoadOptions struct {
	MaxSize int  // 0 keeps the source size
	FlipY   bool // store rows bottom-up
	Workers int  // decode concurrency; 0 means one per request
}

// Load decodes one file and prepares it for upload.
func Load(req Request, opts LoadOptions) (*Decoded, error) {
	img, err := DecodeFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", req.Name, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("texture %s: empty image", req.Name)
	}

	scaled := Downscale(img, opts.MaxSize)
	return &Decoded{
		Name:         req.Name,
		Path:         req.Path,
		RGBA:         ToRGBA(scaled, opts.FlipY),
		SourceWidth:  b.Dx(),
		SourceHeight: b.Dy(),
	}, nil
}

// LoadAll decodes all requests on a worker pool. Results keep the request
// order. The first error cancels the remaining work and is returned.
func LoadAll(ctx context.Context, reqs []Request, opts LoadOptions) ([]*Decoded, error) {
	workers := opts.Workers
	if workers <= 0 || workers > len(reqs) {
		workers = len(reqs)
	}
	if workers == 0 {
		return nil, nil
	}

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	start := time.Now()
	results := make([]*Decoded, len(reqs))
	group := pool.NewGroupContext(ctx)
	for i, req := range reqs {
		group.SubmitErr(func() error {
			d, err := Load(req, opts)
			if err != nil {
				return err
			}
			results[i] = d
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, d := range results {
		logger.Debug("texture decoded",
			zap.String("name", d.Name),
			zap.String("path", d.Path),
			zap.Int("source_width", d.SourceWidth),
			zap.Int("source_height", d.SourceHeight),
			zap.Int("width", d.RGBA.Bounds().Dx()),
			zap.Int("height", d.RGBA.Bounds().Dy()))
	}
	logger.Info("textures decoded",
		zap.Int("count", len(results)),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)))

	return results, nil
}
