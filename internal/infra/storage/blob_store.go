package storage

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"beerhaus/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob" // registers gs://
	"gocloud.dev/gcerrors"
)

// BlobStore implements service.ObjectStore on a gocloud bucket.
type BlobStore struct {
	bucket *blob.Bucket

	// set for fileblob buckets only
	baseURL *url.URL
	signer  *fileblob.URLSignerHMAC

	// set for gs:// buckets only
	gcsBucketName string
}

// OpenFileStore opens a directory-backed bucket whose signed URLs point at
// baseURL and are verified with secret.
func OpenFileStore(dir, baseURL, secret string) (*BlobStore, error) {
	if secret == "" {
		return nil, errors.New("local storage secret is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid local storage base URL")
	}

	signer := fileblob.NewURLSignerHMAC(parsed, []byte(secret))
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		URLSigner: signer,
		CreateDir: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file bucket %s", dir)
	}

	return &BlobStore{bucket: bucket, baseURL: parsed, signer: signer}, nil
}

// OpenBucketStore opens any gocloud bucket URL, e.g. gs://my-bucket.
func OpenBucketStore(ctx context.Context, bucketURL string) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	store := &BlobStore{bucket: bucket}
	if parsed, err := url.Parse(bucketURL); err == nil && parsed.Scheme == "gs" {
		store.gcsBucketName = parsed.Host
	}

	return store, nil
}

func (s *BlobStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})

	return errors.Wrapf(err, "failed to write object %s", key)
}

func (s *BlobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.Wrap(service.ErrObjectNotFound, key)
	}

	return errors.Wrapf(err, "failed to delete object %s", key)
}

func (s *BlobStore) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat object %s", key)
	}

	return exists, nil
}

func (s *BlobStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	signed, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry: ttl,
		Method: http.MethodGet,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign URL for %s", key)
	}

	return signed, nil
}

// KeyFromURL does not check the signature; an expired URL still identifies
// the object it pointed to.
func (s *BlobStore) KeyFromURL(rawURL string) (string, bool) {
	if s.gcsBucketName != "" {
		return keyFromGCSURL(rawURL, s.gcsBucketName)
	}
	if s.baseURL == nil {
		return "", false
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host != s.baseURL.Host || parsed.Path != s.baseURL.Path {
		return "", false
	}

	key := parsed.Query().Get("obj")

	return key, key != ""
}

// OpenSigned verifies a URL produced by SignedURL and opens the object it
// addresses. Only file-backed stores can verify their own URLs.
func (s *BlobStore) OpenSigned(ctx context.Context, signedURL *url.URL) (io.ReadCloser, string, error) {
	if s.signer == nil {
		return nil, "", errors.Wrap(service.ErrObjectNotFound, "store does not serve signed URLs")
	}

	key, err := s.signer.KeyFromURL(ctx, signedURL)
	if err != nil {
		return nil, "", errors.Wrap(service.ErrInvalidSignedURL, err.Error())
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", errors.Wrap(service.ErrObjectNotFound, key)
		}

		return nil, "", errors.Wrapf(err, "failed to open object %s", key)
	}

	return reader, reader.ContentType(), nil
}

// Close releases the underlying bucket.
func (s *BlobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
