package core

import "testing"

func TestFileSizeOK(t *testing.T) {
	tests := []struct {
		name  string
		size  int64
		maxMB int
		want  bool
	}{
		{name: "empty", size: 0, maxMB: 10, want: true},
		{name: "under", size: 5 * 1024 * 1024, maxMB: 10, want: true},
		{name: "exactly at limit", size: 10 * 1024 * 1024, maxMB: 10, want: true},
		{name: "one byte over", size: 10*1024*1024 + 1, maxMB: 10, want: false},
		{name: "video cap", size: 100 * 1024 * 1024, maxMB: 100, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileSizeOK(File{Name: "f", Size: tt.size}, tt.maxMB); got != tt.want {
				t.Errorf("FileSizeOK() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestFileTypeOK(t *testing.T) {
	tests := []struct {
		name string
		file File
		want bool
	}{
		{name: "pdf by suffix", file: File{Name: "laporan.pdf"}, want: true},
		{name: "uppercase name", file: File{Name: "LAPORAN.PDF"}, want: true},
		{name: "docx by suffix", file: File{Name: "proposal.docx"}, want: true},
		{name: "pdf by media type", file: File{Name: "x", ContentType: "application/pdf"}, want: true},
		{name: "suffix check is exact", file: File{Name: "invoice.pdfx"}, want: false},
		{name: "unrelated", file: File{Name: "foto.png", ContentType: "image/png"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileTypeOK(tt.file, DocumentTypes...); got != tt.want {
				t.Errorf("FileTypeOK() = %v; want %v", got, tt.want)
			}
		})
	}

	// a media type containing "image" anywhere matches the "image" marker
	if !FileTypeOK(File{Name: "x.bin", ContentType: "weird/image-stream"}, ImageTypes...) {
		t.Error("FileTypeOK() should match media types containing an allowed marker")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{1, "1 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{1572864, "1.5 MB"},
		{10 * 1024 * 1024, "10 MB"},
		{3 * 1024 * 1024 * 1024, "3 GB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q; want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"lecture.mp4", "lecture"},
		{"AD-ART 2024.pdf", "AD-ART 2024"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := TitleFromFilename(tt.in); got != tt.want {
			t.Errorf("TitleFromFilename(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
