package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage creates a simple test image file and returns its path.
// The caller is responsible for removing the file.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "test-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

func TestLoad(t *testing.T) {
	imgPath := createTestImage(t, 120, 80, color.RGBA{10, 20, 30, 255})
	defer os.Remove(imgPath)

	buf, err := Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if buf.Width() != 120 || buf.Height() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 120x80", buf.Width(), buf.Height())
	}

	got := buf.At(60, 40)
	want := color.NRGBA{10, 20, 30, 255}
	if got != want {
		t.Errorf("pixel: got %v, want %v", got, want)
	}
}

func TestLoad_JPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 16))
	path := filepath.Join(t.TempDir(), "photo.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := jpeg.Encode(f, img, nil); err != nil {
		f.Close()
		t.Fatalf("failed to encode jpeg: %v", err)
	}
	f.Close()

	buf, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if buf.Width() != 32 || buf.Height() != 16 {
		t.Errorf("unexpected dimensions: got %dx%d, want 32x16", buf.Width(), buf.Height())
	}
}

func TestLoad_NonExistent(t *testing.T) {
	buf, err := Load("missing.jpg")
	if err == nil {
		t.Fatal("Load should fail for non-existent file")
	}
	if buf != nil {
		t.Error("Load returned a buffer alongside an error")
	}
	if !errors.Is(err, ErrLoadFailure) {
		t.Errorf("error %v does not match ErrLoadFailure", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not carry the underlying cause", err)
	}
}

func TestLoad_InvalidImage(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "invalid-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.WriteString("not an image")
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	_, err = Load(tmpFile.Name())
	if !errors.Is(err, ErrLoadFailure) {
		t.Errorf("Load of invalid data: got %v, want ErrLoadFailure", err)
	}
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrLoadFailure) {
		t.Errorf("Load of a directory: got %v, want ErrLoadFailure", err)
	}
}

func TestDescribeFile(t *testing.T) {
	imgPath := createTestImage(t, 200, 150, color.RGBA{255, 128, 64, 255})
	defer os.Remove(imgPath)

	buf, err := Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	info, err := DescribeFile(imgPath, buf)
	if err != nil {
		t.Fatalf("DescribeFile failed: %v", err)
	}

	if info.Width != 200 {
		t.Errorf("Width: got %d, want 200", info.Width)
	}
	if info.Height != 150 {
		t.Errorf("Height: got %d, want 150", info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Error("FileSizeBytes should be positive")
	}
}

func TestDescribeFile_FormatDetection(t *testing.T) {
	buf := NewBuffer(10, 10)

	tests := []struct {
		ext    string
		format string
	}{
		{".png", "png"},
		{".jpg", "jpeg"},
		{".jpeg", "jpeg"},
		{".gif", "gif"},
		{".bmp", "bmp"},
		{".xyz", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test-format"+tt.ext)
			if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
				t.Fatalf("failed to create file: %v", err)
			}

			info, err := DescribeFile(path, buf)
			if err != nil {
				t.Fatalf("DescribeFile failed: %v", err)
			}

			if info.Format != tt.format {
				t.Errorf("Format for %s: got %s, want %s", tt.ext, info.Format, tt.format)
			}
		})
	}
}

func TestDescribeFile_NonExistent(t *testing.T) {
	_, err := DescribeFile("/nonexistent/image.png", NewBuffer(1, 1))
	if err == nil {
		t.Error("DescribeFile should fail for non-existent file")
	}
}

func TestImageInfo_String(t *testing.T) {
	info := &ImageInfo{Width: 640, Height: 480, Format: "jpeg", FileSizeBytes: 1234}
	if got, want := info.String(), "640x480 jpeg, 1234 bytes"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
