package helpers

import (
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	"gocv.io/x/gocv"

	"argus-worker-go/internal/models"
)

// DecodeBase64Frame converts a base64 encoded frame (optionally with a
// data URL prefix) into an OpenCV Mat. The caller owns the Mat and
// must Close it.
func DecodeBase64Frame(frame string) (gocv.Mat, error) {
	// Remove data URL prefix if present
	if idx := strings.Index(frame, ","); idx >= 0 {
		frame = frame[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(frame)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("invalid base64 frame data: %w", err)
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to decode image: %w", err)
	}
	if mat.Empty() {
		mat.Close()
		return gocv.NewMat(), fmt.Errorf("decoded image is empty")
	}

	return mat, nil
}

// DownscaleIfNeeded resizes the Mat in place when it exceeds the given
// bounds, preserving aspect ratio. Large frames slow down the provider
// round trip without improving detection.
func DownscaleIfNeeded(mat *gocv.Mat, maxWidth, maxHeight int) {
	if mat == nil || mat.Empty() || maxWidth <= 0 || maxHeight <= 0 {
		return
	}

	width := mat.Cols()
	height := mat.Rows()
	if width <= maxWidth && height <= maxHeight {
		return
	}

	scale := float64(maxWidth) / float64(width)
	if s := float64(maxHeight) / float64(height); s < scale {
		scale = s
	}

	newWidth := int(float64(width) * scale)
	newHeight := int(float64(height) * scale)
	gocv.Resize(*mat, mat, image.Pt(newWidth, newHeight), 0, 0, gocv.InterpolationArea)
}

// EncodeJPEG encodes a Mat as JPEG bytes for the provider call
func EncodeJPEG(mat gocv.Mat) ([]byte, error) {
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, mat)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	defer buf.Close()

	data := make([]byte, buf.Len())
	copy(data, buf.GetBytes())
	return data, nil
}

// Midpoint returns the center of a normalized bounding polygon. An
// empty polygon maps to the frame center.
func Midpoint(box []models.Point) models.Point {
	if len(box) == 0 {
		return models.Point{X: 0.5, Y: 0.5}
	}

	var sumX, sumY float64
	for _, p := range box {
		sumX += p.X
		sumY += p.Y
	}

	n := float64(len(box))
	return models.Point{X: sumX / n, Y: sumY / n}
}
