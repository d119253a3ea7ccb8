package config

import (
	"os"
	"strings"
)

const (
	s3BucketVar    = "S3_BUCKET_NAME"
	s3RegionVar    = "S3_REGION"
	s3EndpointVar  = "S3_ENDPOINT"
	s3PathStyleVar = "S3_PATH_STYLE"
)

type StorageConfig interface {
	GetS3BucketName() string
	GetS3Region() string
	GetS3Endpoint() string
	GetS3PathStyle() bool
}

type Storage struct{}

var _ StorageConfig = Storage{}

func (Storage) GetS3BucketName() string {
	return os.Getenv(s3BucketVar)
}

func (Storage) GetS3Region() string {
	return GetEnv(s3RegionVar, "us-east-1")
}

// GetS3Endpoint returns an optional custom endpoint (e.g. MinIO). Empty
// means the default AWS endpoint resolution.
func (Storage) GetS3Endpoint() string {
	return os.Getenv(s3EndpointVar)
}

func (Storage) GetS3PathStyle() bool {
	return strings.EqualFold(os.Getenv(s3PathStyleVar), "true")
}
