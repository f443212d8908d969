package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"journal-portal-api/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Folder names for uploaded documents.
const (
	FolderPapers       = "revista_papers"
	FolderCVs          = "revista_cvs"
	FolderCertificates = "revista_certificates"
)

var client *s3.Client

// Init creates the S3 client for the configured endpoint. Must be called
// before Upload.
func Init(cfg *config.Config) error {
	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               cfg.S3URL,
				SigningRegion:     cfg.S3Region,
				HostnameImmutable: true,
			}, nil
		},
	)
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3Key, cfg.S3Secret, "")),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return err
	}

	client = s3.NewFromConfig(awsCfg)
	return nil
}

// Upload stores data under folder with a collision-free key derived from
// filename and returns the durable URL.
func Upload(ctx context.Context, folder, filename string, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), filepath.Ext(filename))
	bucket := config.App.S3Bucket

	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", config.App.S3URL, bucket, key), nil
}
