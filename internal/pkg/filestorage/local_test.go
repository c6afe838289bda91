package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, header, err := req.FormFile("image")
	if err != nil {
		t.Fatalf("FormFile() error = %v", err)
	}
	return header
}

func TestSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "")
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	content := []byte("fake image bytes")
	ref, err := storage.Save(makeFileHeader(t, "photo.jpg", content))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasSuffix(ref, ".jpg") {
		t.Errorf("ref = %q, want the original extension preserved", ref)
	}

	stored := filepath.Join(dir, filepath.Base(ref))
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("reading stored blob: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Error("stored blob content differs from upload")
	}

	if err := storage.Delete(ref); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Error("blob still exists after Delete()")
	}

	// Deleting an already-deleted blob is not an error
	if err := storage.Delete(ref); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}
}

func TestSaveProducesUniqueRefs(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	first, err := storage.Save(makeFileHeader(t, "photo.jpg", []byte("a")))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second, err := storage.Save(makeFileHeader(t, "photo.jpg", []byte("b")))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if first == second {
		t.Error("two saves of the same filename produced the same ref")
	}
}

func TestSaveWithBaseURL(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	ref, err := storage.Save(makeFileHeader(t, "photo.png", []byte("img")))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasPrefix(ref, "http://localhost:8080/uploads/") {
		t.Errorf("ref = %q, want it prefixed with the base URL", ref)
	}

	// Delete resolves the URL back to the local file
	if err := storage.Delete(ref); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
}

func TestDeleteRejectsInvalidRef(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	if err := storage.Delete(""); err != nil {
		t.Errorf("Delete(\"\") error = %v, want nil", err)
	}
	if err := storage.Delete("uploads/"); err == nil {
		t.Error("Delete(\"uploads/\") accepted a directory reference")
	}
}

func TestSaveNilFileHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	if _, err := storage.Save(nil); err == nil {
		t.Error("Save(nil) did not return an error")
	}
}
