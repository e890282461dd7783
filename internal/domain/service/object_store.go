package service

import (
	"context"
	"errors"
	"io"
	"net/url"
	"time"
)

// ErrObjectNotFound is returned when a key does not exist in the object store.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStore stores binary objects such as profile pictures.
type ObjectStore interface {
	// Upload writes data under key, replacing any existing object.
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether an object is stored under key.
	Exists(ctx context.Context, key string) (bool, error)

	// SignedURL returns a GET URL for key that stays valid for ttl.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// KeyFromURL extracts the object key from a URL produced by SignedURL.
	// ok is false when the URL does not point into this store.
	KeyFromURL(rawURL string) (key string, ok bool)
}

// ErrInvalidSignedURL is returned when a signed URL fails verification or has expired.
var ErrInvalidSignedURL = errors.New("invalid signed URL")

// SignedObjectReader serves objects addressed by URLs the store signed itself.
// Only stores without an external download endpoint provide one.
type SignedObjectReader interface {
	OpenSigned(ctx context.Context, signedURL *url.URL) (io.ReadCloser, string, error)
}
