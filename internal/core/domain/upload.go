package domain

import "io"

// ImageUpload is an image received from a client, not yet stored.
type ImageUpload struct {
	OriginalName string
	ContentType  string
	Size         int64
	Content      io.Reader
}

// StoredObject is an image read back from the image store.
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}
