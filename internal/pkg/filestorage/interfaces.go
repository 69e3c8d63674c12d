package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// Save stores an uploaded file under a generated name inside subdir
	// and returns the public URL recorded in the database.
	Save(fileHeader *multipart.FileHeader, subdir string) (string, error)

	// Delete removes a previously stored file given its public URL.
	Delete(fileURL string) error

	// Resolve returns the filesystem path behind a public URL.
	Resolve(fileURL string) string
}
