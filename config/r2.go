package config

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type R2Config struct {
	AccountID       string `yaml:"account_id"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	BucketName      string `yaml:"bucket_name"`
	Region          string `yaml:"region"`
	// Prefix is prepended to every object key, e.g. "mango/".
	Prefix string `yaml:"prefix"`
}

func (r R2Config) Endpoint() string {
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.AccountID)
}

// NewR2Client builds an S3 client pointed at the Cloudflare R2 account.
func NewR2Client(r R2Config) *s3.Client {
	return s3.New(s3.Options{
		BaseEndpoint: aws.String(r.Endpoint()),
		Credentials: credentials.NewStaticCredentialsProvider(
			r.AccessKeyID,
			r.SecretAccessKey,
			"",
		),
		Region: r.Region,
	})
}
