package core

import (
	"context"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// Upload kinds. The submission service applies a different artificial latency
// to each.
const (
	UploadKindFile  = "file"
	UploadKindPhoto = "photo"
	UploadKindVideo = "video"
)

type (
	// File describes an incoming file: name, declared media type and byte size.
	// The mock service never reads contents.
	File struct {
		Name        string
		ContentType string
		Size        int64
	}

	Upload struct {
		Kind string
		File File
		Meta map[string]string
	}

	// Reference is what a successful upload resolves to. ID is only set for
	// photo/video uploads; URL is a synthetic object handle.
	Reference struct {
		ID  string
		URL string
	}

	// UploadService simulates the asynchronous create/upload backend. It never
	// fails in the shipped implementation; the error return exists so the
	// create flows abort cleanly should an implementation start failing.
	UploadService interface {
		Upload(ctx context.Context, up Upload) (Reference, error)
	}
)

func (f File) IsZero() bool {
	return f.Name == "" && f.Size == 0
}

// Accepted type markers and size caps per file slot.
var (
	DocumentTypes  = []string{".pdf", ".doc", ".docx", "pdf", "document"}
	ImageTypes     = []string{".jpg", ".jpeg", ".png", "image"}
	VideoTypes     = []string{".mp4", ".mov", ".avi", "video"}
	MaxDocumentMB  = 10
	MaxImageMB     = 10
	MaxVideoMB     = 100
	MaxThumbnailMB = 5
)

// FileSizeOK reports whether f fits within maxMB megabytes.
func FileSizeOK(f File, maxMB int) bool {
	return f.Size <= int64(maxMB)*1024*1024
}

// FileTypeOK reports whether f's declared media type contains one of the
// markers, or its name (lowercased) ends with one. The substring check on the
// media type is deliberately loose; callers must supply precise markers.
func FileTypeOK(f File, markers ...string) bool {
	name := strings.ToLower(f.Name)
	for _, marker := range markers {
		if strings.Contains(f.ContentType, marker) || strings.HasSuffix(name, marker) {
			return true
		}
	}
	return false
}

// CheckFile validates a file slot against its markers and size cap, returning
// a field-scoped ValidationError on mismatch.
func CheckFile(f File, markers []string, maxMB int) error {
	if !FileTypeOK(f, markers...) {
		return NewValidationError(nil, FieldError{Field: "file", Error: "unsupported file type"})
	}
	if !FileSizeOK(f, maxMB) {
		return NewValidationError(nil, FieldError{
			Field: "file",
			Error: "file exceeds the maximum size of " + FormatSize(int64(maxMB)*1024*1024),
		})
	}
	return nil
}

// FormatSize renders a byte count in the largest unit keeping the value >= 1,
// rounded to two decimals ("1.5 KB", "1 MB").
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	val := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(val, 'f', -1, 64) + " " + sizes[i]
}

// TitleFromFilename strips the final extension from a filename. Used to
// pre-fill empty title fields from a selected file, never to overwrite one.
func TitleFromFilename(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
