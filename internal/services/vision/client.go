package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"

	"argus-worker-go/internal/config"
	"argus-worker-go/internal/helpers"
	"argus-worker-go/internal/models"
)

// Client wraps the Google Cloud Vision object-localization API. It is
// the upstream detector boundary: everything past it operates on
// DetectedEntity values only.
type Client struct {
	cfg *config.Config
	svc *vision.Service
}

// NewClient creates a Vision API client using the configured
// credentials file, falling back to application default credentials.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	var opts []option.ClientOption
	if cfg.GoogleCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentials))
	}

	svc, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Vision client: %w", err)
	}

	log.Info().Str("project_id", cfg.GCPProjectID).Msg("Google Cloud Vision client initialized")

	return &Client{cfg: cfg, svc: svc}, nil
}

// DetectObjects runs object localization on a JPEG-encoded image and
// returns entities above the confidence threshold, sorted by
// confidence descending and capped at maxObjects. Class names are
// lowercased.
func (c *Client) DetectObjects(ctx context.Context, imageData []byte, confidenceThreshold float64, maxObjects int) ([]models.DetectedEntity, error) {
	if confidenceThreshold <= 0 {
		confidenceThreshold = c.cfg.ConfidenceThreshold
	}
	if maxObjects <= 0 {
		maxObjects = c.cfg.MaxObjects
	}

	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{{
			Image: &vision.Image{
				Content: base64.StdEncoding.EncodeToString(imageData),
			},
			Features: []*vision.Feature{{
				Type:       "OBJECT_LOCALIZATION",
				MaxResults: int64(maxObjects),
			}},
		}},
	}

	resp, err := c.svc.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("vision annotate request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return []models.DetectedEntity{}, nil
	}

	annotated := resp.Responses[0]
	if annotated.Error != nil {
		return nil, fmt.Errorf("vision API error: %s", annotated.Error.Message)
	}

	entities := make([]models.DetectedEntity, 0, len(annotated.LocalizedObjectAnnotations))
	for _, obj := range annotated.LocalizedObjectAnnotations {
		if obj.Score < confidenceThreshold {
			continue
		}

		box := boundingBox(obj.BoundingPoly)
		entities = append(entities, models.DetectedEntity{
			Class:       strings.ToLower(obj.Name),
			Confidence:  obj.Score,
			BoundingBox: box,
			Midpoint:    helpers.Midpoint(box),
		})
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Confidence > entities[j].Confidence
	})

	if len(entities) > maxObjects {
		entities = entities[:maxObjects]
	}

	log.Debug().
		Int("annotations", len(annotated.LocalizedObjectAnnotations)).
		Int("entities", len(entities)).
		Float64("threshold", confidenceThreshold).
		Msg("Vision detection completed")

	return entities, nil
}

func boundingBox(poly *vision.BoundingPoly) []models.Point {
	if poly == nil {
		return []models.Point{}
	}

	box := make([]models.Point, 0, len(poly.NormalizedVertices))
	for _, v := range poly.NormalizedVertices {
		box = append(box, models.Point{X: v.X, Y: v.Y})
	}
	return box
}
