package minio

import (
	"strings"

	"insight-srv/config"
)

func validateConfig(cfg *config.MinIOConfig) error {
	if cfg.Endpoint == "" {
		return NewInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return NewInvalidInputError("access key is required")
	}
	if cfg.SecretKey == "" {
		return NewInvalidInputError("secret key is required")
	}
	if cfg.Bucket == "" {
		return NewInvalidInputError("bucket is required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint = cfg.Endpoint + DefaultEndpointPort
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	switch {
	case req == nil:
		return NewInvalidInputError("request is required")
	case req.BucketName == "":
		return NewInvalidInputError("bucket name is required")
	case req.ObjectName == "":
		return NewInvalidInputError("object name is required")
	case req.Reader == nil:
		return NewInvalidInputError("reader is required")
	case req.Size <= 0:
		return NewInvalidInputError("size must be positive")
	case req.ContentType == "":
		return NewInvalidInputError("content type is required")
	case strings.HasPrefix(req.ObjectName, "/"), strings.HasSuffix(req.ObjectName, "/"):
		return NewInvalidInputError("object name cannot start or end with '/'")
	case req.Size > MaxFileSizeBytes:
		return NewInvalidInputError("file size cannot exceed 5GB")
	}
	return nil
}

func validatePresignedURLRequest(req *PresignedURLRequest) error {
	switch {
	case req.BucketName == "":
		return NewInvalidInputError("bucket name is required")
	case req.ObjectName == "":
		return NewInvalidInputError("object name is required")
	case req.Expiry <= 0:
		return NewInvalidInputError("expiry must be positive")
	case req.Expiry > MaxPresignedExpiry:
		return NewInvalidInputError("expiry cannot exceed 7 days")
	}
	return nil
}

func validateBucketName(bucketName string) error {
	if len(bucketName) < 3 || len(bucketName) > 63 {
		return NewInvalidInputError("bucket name must be 3 to 63 characters")
	}
	for _, char := range bucketName {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '-') {
			return NewInvalidInputError("bucket name can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if strings.Contains(bucketName, "--") || strings.HasPrefix(bucketName, "-") || strings.HasSuffix(bucketName, "-") {
		return NewInvalidInputError("bucket name has misplaced hyphens")
	}
	return nil
}

func validateObjectName(objectName string) error {
	if objectName == "" {
		return NewInvalidInputError("object name is required")
	}
	if strings.Contains(objectName, "\\") {
		return NewInvalidInputError("object name cannot contain backslashes")
	}
	return nil
}
