package imaging

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrLoadFailure is matched by every error returned from Load.
var ErrLoadFailure = errors.New("load failure")

// Load decodes the image at path into a new Buffer.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats
//     are PNG, JPEG, GIF, BMP, TIFF and WebP.
//
// Returns:
//   - *Buffer: The decoded pixels, rotated according to the EXIF
//     orientation tag when present.
//   - error: Non-nil if the file cannot be opened, cannot be decoded, or
//     decodes to an empty image. The error wraps ErrLoadFailure and the
//     underlying cause.
func Load(path string) (*Buffer, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailure, path, err)
	}

	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s: image has no pixels", ErrLoadFailure, path)
	}

	return FromImage(img), nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the buffer width in pixels, after orientation is applied.
	Width int `json:"width"`

	// Height is the buffer height in pixels, after orientation is applied.
	Height int `json:"height"`

	// Format is the format implied by the file extension: "jpeg", "png",
	// "gif", "tiff", "bmp", or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// String formats the info the way the startup log prints it.
func (i *ImageInfo) String() string {
	return fmt.Sprintf("%dx%d %s, %d bytes", i.Width, i.Height, i.Format, i.FileSizeBytes)
}

// DescribeFile returns metadata for an image that has already been loaded
// into buf from path.
//
// Format detection is based on the file extension, not file contents.
func DescribeFile(path string, buf *Buffer) (*ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	return &ImageInfo{
		Width:         buf.Width(),
		Height:        buf.Height(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
