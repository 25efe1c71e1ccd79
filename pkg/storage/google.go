package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"cloud.google.com/go/storage"
)

const timeout = 30 * time.Second

type GoogleCloudClient struct {
	client *storage.Client
	bucket *storage.BucketHandle
}

// NewGoogleCloudClient returns a Google Cloud Storage client of the bucket.
// The credentials are looked up the default way.
func NewGoogleCloudClient(bucket string) (*GoogleCloudClient, error) {
	if bucket == "" {
		return nil, errors.New("no bucket name")
	}
	client, err := storage.NewClient(context.Background())
	if err != nil {
		return nil, err
	}
	return &GoogleCloudClient{client: client, bucket: client.Bucket(bucket)}, nil
}

// Save uploads the file.
func (c *GoogleCloudClient) Save(name string, localPath string) error {
	reader, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	wc := c.bucket.Object(name).NewWriter(ctx)
	wc.ContentType = "application/vnd.chess-pgn"
	if _, err = io.Copy(wc, reader); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}

func (c *GoogleCloudClient) Close() error { return c.client.Close() }
