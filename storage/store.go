// Package storage is the typed gateway to the S3-compatible object store
// that owns all durable state. It knows the fixed key scheme and nothing
// about HTTP.
package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/jrsteele09/go-photo-catalog/internal/config"
)

// Store issues get/put/delete/list against a single bucket.
type Store struct {
	client *s3.Client
	bucket string
}

// Config holds explicit construction parameters, mostly for tests. Prod
// construction goes through Open with the env-backed config.
type Config struct {
	Region    string
	Bucket    string
	Endpoint  string // optional; enables a custom endpoint (e.g. MinIO)
	PathStyle bool
}

// New creates a store from explicit parameters.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &Store{client: client, bucket: cfg.Bucket}, nil
}

// Open creates a store from the service configuration. Credentials come
// from the default AWS chain.
func Open(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	return New(ctx, Config{
		Region:    cfg.GetS3Region(),
		Bucket:    cfg.GetS3BucketName(),
		Endpoint:  cfg.GetS3Endpoint(),
		PathStyle: cfg.GetS3PathStyle(),
	})
}

// Object is a streamed object with the headers the asset routes propagate.
type Object struct {
	Body            io.ReadCloser
	ContentType     string
	ContentEncoding string
	ContentLength   int64
}

// GetObject opens the object for streaming. The caller owns Body.
func (s *Store) GetObject(ctx context.Context, key string) (*Object, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		if isNotFound(err) {
			return nil, &Error{Op: "get", Key: key, Err: ErrNotFound}
		}
		return nil, &Error{Op: "get", Key: key, Err: err}
	}
	return &Object{
		Body:            out.Body,
		ContentType:     aws.ToString(out.ContentType),
		ContentEncoding: aws.ToString(out.ContentEncoding),
		ContentLength:   aws.ToInt64(out.ContentLength),
	}, nil
}

// Get reads the whole object into memory.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.GetObject(ctx, key)
	if err != nil {
		return nil, err
	}
	defer obj.Body.Close()
	body, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, &Error{Op: "get", Key: key, Err: err}
	}
	return body, nil
}

// Put writes the object, replacing any previous version.
func (s *Store) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	input := &s3.PutObjectInput{Bucket: &s.bucket, Key: &key, Body: body}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return &Error{Op: "put", Key: key, Err: err}
	}
	return nil
}

// PutBytes writes an in-memory payload.
func (s *Store) PutBytes(ctx context.Context, key string, body []byte, contentType string) error {
	return s.Put(ctx, key, bytes.NewReader(body), contentType)
}

// Delete removes the object. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &key}); err != nil {
		return &Error{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// ListKeys returns every key under the prefix, following continuation
// tokens until the listing is exhausted.
func (s *Store) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	var token *string
	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            &s.bucket,
			Prefix:            &prefix,
			ContinuationToken: token,
		})
		if err != nil {
			return nil, &Error{Op: "list", Key: prefix, Err: err}
		}
		for _, obj := range out.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
		if out.IsTruncated != nil && *out.IsTruncated && out.NextContinuationToken != nil {
			token = out.NextContinuationToken
			continue
		}
		break
	}
	return keys, nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	var respErr interface{ HTTPStatusCode() int }
	if errors.As(err, &respErr) {
		return respErr.HTTPStatusCode() == http.StatusNotFound
	}
	return false
}
