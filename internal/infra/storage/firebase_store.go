package storage

import (
	"context"
	"net/url"
	"strings"
	"time"

	"beerhaus/internal/domain/service"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
)

const gcsHost = "storage.googleapis.com"

// firebaseStore implements service.ObjectStore on the Firebase project's
// default Cloud Storage bucket.
type firebaseStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
	now        func() time.Time
}

// NewFirebaseStore opens the default bucket configured on the Firebase app.
func NewFirebaseStore(ctx context.Context, app *firebase.App) (service.ObjectStore, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get storage client")
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open default bucket")
	}

	attrs, err := bucket.Attrs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read bucket attributes")
	}

	return &firebaseStore{
		bucket:     bucket,
		bucketName: attrs.Name,
		now:        time.Now,
	}, nil
}

func (s *firebaseStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	writer := s.bucket.Object(key).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()

		return errors.Wrapf(err, "failed to write object %s", key)
	}

	return errors.Wrapf(writer.Close(), "failed to finalize object %s", key)
}

func (s *firebaseStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Object(key).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return errors.Wrap(service.ErrObjectNotFound, key)
	}

	return errors.Wrapf(err, "failed to delete object %s", key)
}

func (s *firebaseStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.bucket.Object(key).Attrs(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat object %s", key)
	}

	return true, nil
}

// SignedURL issues a V2 signed GET URL using the app's service account.
func (s *firebaseStore) SignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	signed, err := s.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV2,
		Method:  "GET",
		Expires: s.now().Add(ttl),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign URL for %s", key)
	}

	return signed, nil
}

func (s *firebaseStore) KeyFromURL(rawURL string) (string, bool) {
	return keyFromGCSURL(rawURL, s.bucketName)
}

// keyFromGCSURL extracts the object key from a storage.googleapis.com URL of
// the form https://storage.googleapis.com/<bucket>/<key>?<signature>.
func keyFromGCSURL(rawURL, bucketName string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host != gcsHost {
		return "", false
	}

	key, found := strings.CutPrefix(parsed.Path, "/"+bucketName+"/")
	if !found || key == "" {
		return "", false
	}

	return key, true
}
