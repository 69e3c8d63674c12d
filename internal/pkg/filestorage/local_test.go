package filestorage_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yigit/internlink/internal/pkg/filestorage"
)

// newFileHeader builds a real multipart.FileHeader by round-tripping a
// request body through the standard library parser.
func newFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	return req.MultipartForm.File["resume"][0]
}

func TestSaveGeneratesFreshName(t *testing.T) {
	ls, err := filestorage.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	header := newFileHeader(t, "my resume.pdf", "pdf-bytes")
	url, err := ls.Save(header, "resumes")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if !strings.HasPrefix(url, "/uploads/resumes/") {
		t.Errorf("unexpected URL prefix: %q", url)
	}
	if strings.Contains(url, "my resume") {
		t.Errorf("stored name should not reuse the original filename: %q", url)
	}
	if !strings.HasSuffix(url, ".pdf") {
		t.Errorf("stored name should keep the extension: %q", url)
	}

	path := ls.Resolve(url)
	if path == "" {
		t.Fatal("Resolve returned empty path for a stored URL")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "pdf-bytes" {
		t.Errorf("stored content mismatch: %q", data)
	}
}

func TestResolveRejectsTraversal(t *testing.T) {
	ls, err := filestorage.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if path := ls.Resolve("/uploads/../etc/passwd"); path != "" {
		t.Errorf("expected traversal URL to be rejected, got %q", path)
	}
	if path := ls.Resolve("/elsewhere/file.pdf"); path != "" {
		t.Errorf("expected foreign prefix to be rejected, got %q", path)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	ls, err := filestorage.NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	header := newFileHeader(t, "cv.pdf", "x")
	url, err := ls.Save(header, "resumes")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if err := ls.Delete(url); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "resumes")); err != nil && !os.IsNotExist(err) {
		t.Fatalf("unexpected stat error: %v", err)
	}
	if err := ls.Delete(url); err != nil {
		t.Errorf("second Delete should be a no-op, got %v", err)
	}
}
