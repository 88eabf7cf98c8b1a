// Package storage wraps the AWS SDK v2 S3 client for the Supabase storage
// buckets backing this site. Supabase exposes an S3-compatible endpoint, so
// uploads go through the SDK while public URLs are derived from the project
// URL the way the browser client would resolve them.
package storage

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Bucket names, mirroring the Supabase project layout.
const (
	BucketProjectImages = "project-images"
	BucketBlogImages    = "blog-images"
	BucketCVFiles       = "cv-files"
)

// cacheControl matches the upload options the site has always used.
const cacheControl = "max-age=3600"

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Object describes one stored file, as returned by List.
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Client issues requests against the three storage buckets using the
// service-role S3 credentials; row-level rules do not apply to it.
type Client struct {
	s3        *s3.Client
	publicURL string
}

// New builds a storage client for a Supabase S3 endpoint
// (https://<ref>.supabase.co/storage/v1/s3). projectURL is the plain
// project URL used to derive public object URLs.
func New(endpoint, region, accessKey, secretKey, projectURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("storage endpoint and credentials are required")
	}

	endpoint = strings.TrimRight(endpoint, "/")

	client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        client,
		publicURL: strings.TrimRight(projectURL, "/") + "/storage/v1/object/public",
	}, nil
}

// AllowedBucket reports whether name is one of the three site buckets.
// Admin storage endpoints reject anything else.
func AllowedBucket(name string) bool {
	switch name {
	case BucketProjectImages, BucketBlogImages, BucketCVFiles:
		return true
	}
	return false
}

// ObjectKey builds a collision-resistant object name from an upload's
// original filename: "<prefix>-<unix-millis>-<sanitized original>".
func ObjectKey(prefix, original string) string {
	sanitized := unsafeKeyChars.ReplaceAllString(original, "_")
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), sanitized)
}

// Upload stores an object and returns its publicly resolvable URL. Size
// and content-type limits are enforced by the calling handler, not here.
func (c *Client) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(cacheControl),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", bucket, key, err)
	}
	return c.FileURL(bucket, key), nil
}

// Delete removes an object. Record rows referencing the object are not
// touched; the admin flow issues both calls independently.
func (c *Client) Delete(ctx context.Context, bucket, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// List returns the objects in a bucket, optionally under a key prefix.
func (c *Client) List(ctx context.Context, bucket, prefix string) ([]Object, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(bucket)}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var objects []Object
	paginator := s3.NewListObjectsV2Paginator(c.s3, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list %s: %w", bucket, err)
		}
		for _, item := range page.Contents {
			objects = append(objects, Object{
				Key:          aws.ToString(item.Key),
				Size:         aws.ToInt64(item.Size),
				LastModified: aws.ToTime(item.LastModified),
			})
		}
	}
	return objects, nil
}

// FileURL derives the public URL for an object the same way the hosted
// platform serves it: <project-url>/storage/v1/object/public/<bucket>/<key>.
func (c *Client) FileURL(bucket, key string) string {
	return c.publicURL + "/" + bucket + "/" + key
}
