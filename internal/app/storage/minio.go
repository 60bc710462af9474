package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"speech-studio/internal/app/errors"
	"speech-studio/internal/app/model"
	"speech-studio/internal/app/util/files"
	"speech-studio/internal/config"
)

// MinioStore keeps collections as key prefixes in one S3-compatible bucket
type MinioStore struct {
	client   *minio.Client
	bucket   string
	prefixes map[model.Collection]string
	allowed  []string
}

// NewMinioStore connects to MinIO and makes sure the bucket exists
func NewMinioStore(ctx context.Context, cfg config.StorageConfig) (*MinioStore, error) {
	mc := cfg.Minio
	client, err := minio.New(mc.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(mc.AccessKey, mc.SecretKey, ""),
		Secure: mc.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, mc.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, mc.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return newMinioStore(client, cfg), nil
}

func newMinioStore(client *minio.Client, cfg config.StorageConfig) *MinioStore {
	return &MinioStore{
		client: client,
		bucket: cfg.Minio.Bucket,
		prefixes: map[model.Collection]string{
			model.Recordings:  keyPrefix(cfg.RecordingsDir),
			model.Synthesized: keyPrefix(cfg.SynthesizedDir),
		},
		allowed: cfg.AllowedExtensions,
	}
}

func (s *MinioStore) List(ctx context.Context, c model.Collection) ([]string, error) {
	prefix, err := s.prefix(c)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, errors.Wrapf(errors.ErrFileReadFailed, "list %s/%s: %v", s.bucket, prefix, obj.Err)
		}
		name, ok := nameFromKey(prefix, obj.Key)
		if ok && files.HasAllowedExt(name, s.allowed) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	slices.Reverse(names)
	return names, nil
}

func (s *MinioStore) Save(ctx context.Context, c model.Collection, name string, data []byte) error {
	if !files.IsSafeName(name) {
		return errors.Wrapf(errors.ErrFileWriteFailed, "invalid name %q", name)
	}
	key, err := s.key(c, name)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: files.ContentType(name),
	})
	if err != nil {
		return errors.Wrapf(errors.ErrFileWriteFailed, "put %s: %v", key, err)
	}
	return nil
}

func (s *MinioStore) Fetch(ctx context.Context, c model.Collection, name string) (io.ReadCloser, error) {
	key, err := s.key(c, name)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.objectError(c, name, key, err)
	}
	// GetObject is lazy; Stat surfaces a missing key.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, s.objectError(c, name, key, err)
	}
	return obj, nil
}

func (s *MinioStore) Stat(ctx context.Context, c model.Collection, name string) (model.FileInfo, error) {
	key, err := s.key(c, name)
	if err != nil {
		return model.FileInfo{}, err
	}

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return model.FileInfo{}, s.objectError(c, name, key, err)
	}
	return model.FileInfo{
		Collection: c,
		Name:       name,
		Size:       info.Size,
		ModTime:    info.LastModified,
	}, nil
}

func (s *MinioStore) prefix(c model.Collection) (string, error) {
	p, ok := s.prefixes[c]
	if !ok {
		return "", errors.Newf("unknown collection %q", c)
	}
	return p, nil
}

func (s *MinioStore) key(c model.Collection, name string) (string, error) {
	prefix, err := s.prefix(c)
	if err != nil {
		return "", err
	}
	if !files.IsSafeName(name) {
		return "", errors.NotFound(c.String(), name)
	}
	return prefix + name, nil
}

func (s *MinioStore) objectError(c model.Collection, name, key string, err error) error {
	if isNoSuchKey(err) {
		return errors.NotFound(c.String(), name)
	}
	return errors.Wrapf(errors.ErrFileReadFailed, "get %s: %v", key, err)
}

// keyPrefix turns a configured directory such as "./uploads/" into "uploads/"
func keyPrefix(dir string) string {
	p := strings.Trim(path.Clean("/"+strings.ReplaceAll(dir, `\`, "/")), "/")
	if p == "" {
		return ""
	}
	return p + "/"
}

// nameFromKey strips the collection prefix. Keys nested deeper than the
// collection are skipped.
func nameFromKey(prefix, key string) (string, bool) {
	if !strings.HasPrefix(key, prefix) {
		return "", false
	}
	name := strings.TrimPrefix(key, prefix)
	return name, files.IsSafeName(name)
}

func isNoSuchKey(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NoSuchObject"
}
