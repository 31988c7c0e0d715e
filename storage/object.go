package storage

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// ObjectAPI is the part of *s3.Client the object store needs.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ObjectStore keeps each slot as a JSON object in an S3-compatible bucket (Cloudflare R2).
type ObjectStore struct {
	client ObjectAPI
	bucket string
	prefix string
}

func NewObjectStore(client ObjectAPI, bucket, prefix string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, prefix: prefix}
}

func (s *ObjectStore) objectKey(key string) string {
	return s.prefix + key + ".json"
}

func (s *ObjectStore) Get(ctx context.Context, key string) (string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if isMissingObject(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "get object %s", s.objectKey(key))
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return "", errors.Wrapf(err, "read object %s", s.objectKey(key))
	}
	return string(body), nil
}

func (s *ObjectStore) Set(ctx context.Context, key, value string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        strings.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	return errors.Wrapf(err, "put object %s", s.objectKey(key))
}

func (s *ObjectStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if isMissingObject(err) {
		return nil
	}
	return errors.Wrapf(err, "delete object %s", s.objectKey(key))
}

func (s *ObjectStore) Close() error {
	return nil
}

// R2 reports a missing key either as a typed NoSuchKey or as a bare NotFound API error.
func isMissingObject(err error) bool {
	if err == nil {
		return false
	}
	var noSuchKey *s3types.NoSuchKey
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
	return false
}
