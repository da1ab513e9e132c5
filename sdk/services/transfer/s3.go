// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/matconnect/connect-cli-sdk/sdk/config"
)

// Multipart upload kicks in above this size.
const multipartThreshold = 100 * 1024 * 1024

// s3Staging writes files into an S3-compatible object store. Used when
// the facility stages submissions through a data lake instead of an
// HTTPS transfer endpoint.
type s3Staging struct {
	s3     *s3.Client
	bucket string
}

// NewS3Staging builds the S3 staging backend from static credentials.
// The endpoint ID passed to the StagingClient methods is ignored; the
// bucket is fixed by configuration.
func NewS3Staging(ctx context.Context, cfgCreds config.StagingConfig) (StagingClient, error) {
	creds := aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
		cfgCreds.AccessKey,
		cfgCreds.SecretKey,
		cfgCreds.AccessToken,
	))

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion(cfgCreds.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Options := func(o *s3.Options) {
		if cfgCreds.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfgCreds.EndpointURL)
			// Most S3-compatible stores require path style.
			o.UsePathStyle = true
		}
	}

	bucket := cfgCreds.Bucket
	if bucket == "" {
		bucket = "datalake"
	}

	return &s3Staging{
		s3:     s3.NewFromConfig(cfg, s3Options),
		bucket: bucket,
	}, nil
}

func (c *s3Staging) ResolveBaseURL(ctx context.Context, endpointID string) (string, error) {
	return "s3://" + c.bucket, nil
}

// CreateDirectory writes a zero-byte placeholder object so the prefix
// shows up as a folder in object-store browsers.
func (c *s3Staging) CreateDirectory(ctx context.Context, endpointID, path string) error {
	key := strings.Trim(path, "/") + "/"
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(nil),
		ContentLength: aws.Int64(0),
	})
	if err != nil {
		return fmt.Errorf("failed to create directory marker %s: %w", key, err)
	}
	return nil
}

func (c *s3Staging) PutFile(ctx context.Context, endpointID, remotePath string, r io.Reader, size int64, contentType string) error {
	key := strings.TrimPrefix(remotePath, "/")

	if size > multipartThreshold {
		_, err := manager.NewUploader(c.s3).Upload(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(c.bucket),
			Key:         aws.String(key),
			Body:        r,
			ContentType: aws.String(contentType),
		})
		if err != nil {
			return fmt.Errorf("upload error (%s): %w", remotePath, err)
		}
		return nil
	}

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload error (%s): %w", remotePath, err)
	}
	return nil
}

func (c *s3Staging) BrowseURL(endpointID, path string) string {
	return "s3://" + c.bucket + "/" + strings.Trim(path, "/") + "/"
}
