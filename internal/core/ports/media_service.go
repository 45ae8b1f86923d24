package ports

import (
	"context"
	"io"
)

// UploadedFile is a single file received in a multipart upload.
type UploadedFile struct {
	// OriginalName is the client-supplied filename, used only to recover
	// the extension.
	OriginalName string
	Content      io.Reader
}

// MediaService ingests photos by remote URL or direct upload and returns
// filename handles relative to the upload directory. It performs no
// validation of file type, size, or content.
type MediaService interface {
	// UploadByLink fetches the resource at url and stores it under a
	// timestamp-derived name with a .jpg extension. Nothing is written when
	// the fetch fails.
	UploadByLink(ctx context.Context, url string) (string, error)
	// UploadFiles stores each file under a generated name that keeps the
	// original extension, returning the stored filenames in order.
	UploadFiles(ctx context.Context, files []UploadedFile) ([]string, error)
}
