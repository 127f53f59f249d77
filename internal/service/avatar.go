package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/respicy/backend/config"
)

// S3AvatarStore stores avatar binaries in the configured S3 bucket and
// returns the public object URL, normalizing blob uploads to the URL
// representation used everywhere else.
type S3AvatarStore struct {
	s3Config *config.S3Config
}

var _ AvatarStore = (*S3AvatarStore)(nil)

func NewS3AvatarStore(s3Config *config.S3Config) *S3AvatarStore {
	return &S3AvatarStore{s3Config: s3Config}
}

// Store uploads the avatar under a per-user key. Re-uploading replaces the
// previous object, so a user only ever has one stored avatar.
func (s *S3AvatarStore) Store(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("avatars/%s%s", userID, extensionFor(contentType))
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
