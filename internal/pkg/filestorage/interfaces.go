package filestorage

import "mime/multipart"

// BlobStore is the external collaborator that durably stores an uploaded
// image and returns a stable reference usable for retrieval and deletion.
// Handlers and services never resolve a reference themselves; local paths
// and remote URLs are interchangeable behind this interface.
type BlobStore interface {
	// Save persists the uploaded file and returns its reference.
	Save(fileHeader *multipart.FileHeader) (string, error)

	// Delete removes the blob a reference points to. Deleting a reference
	// that no longer resolves is not an error.
	Delete(ref string) error
}
