// Where: cli/internal/assets/assets.go
// What: Demo asset bundle download.
// Why: Fetch public orthoimagery and terrain data the demo scenario mounts.
package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/skyfield-robotics/navbox/cli/internal/constants"
	"github.com/skyfield-robotics/navbox/cli/internal/envutil"
	"github.com/skyfield-robotics/navbox/cli/internal/meta"
)

const (
	// DefaultBucket holds the public demo data bundle.
	DefaultBucket = "skyfield-navbox-demo"
	// DefaultRegion is the bucket's home region.
	DefaultRegion = "eu-north-1"
)

// DefaultKeys lists the bundle objects the demo scenario expects.
var DefaultKeys = []string{
	"demo/orthoimagery.tif",
	"demo/elevation.tif",
	"demo/flightplan.yaml",
}

// ObjectFetcher retrieves one object from the bundle source.
type ObjectFetcher interface {
	Fetch(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

type s3Fetcher struct {
	client *s3.Client
}

func (f s3Fetcher) Fetch(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

// NewFetcher builds an S3-backed fetcher. The default bundle bucket is
// public and is read with anonymous credentials; static keys may be passed
// for private mirrors.
func NewFetcher(ctx context.Context, region, accessKey, secretKey string) (ObjectFetcher, error) {
	if region == "" {
		region = DefaultRegion
	}
	provider := aws.CredentialsProvider(aws.AnonymousCredentials{})
	if accessKey != "" && secretKey != "" {
		provider = credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(provider),
	)
	if err != nil {
		return nil, err
	}
	return s3Fetcher{client: s3.NewFromConfig(cfg)}, nil
}

// Source resolves the bundle bucket and region, honoring env and config
// overrides.
func Source(cfgBucket, cfgRegion string) (bucket, region string) {
	bucket = strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixAssetsBucket))
	if bucket == "" {
		bucket = strings.TrimSpace(cfgBucket)
	}
	if bucket == "" {
		bucket = DefaultBucket
	}
	region = strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixAssetsRegion))
	if region == "" {
		region = strings.TrimSpace(cfgRegion)
	}
	if region == "" {
		region = DefaultRegion
	}
	return bucket, region
}

// DestDir returns the local directory the bundle is written to.
func DestDir() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixHome)); override != "" {
		return filepath.Join(override, meta.AssetsDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, meta.AssetsDir), nil
}

// Puller downloads bundle objects to the local assets directory.
type Puller struct {
	Fetcher ObjectFetcher
}

// Pull downloads each key into destDir, preserving the key's base name.
// Existing files are overwritten. Returns the written file paths.
func (p Puller) Pull(ctx context.Context, bucket string, keys []string, destDir string) ([]string, error) {
	if p.Fetcher == nil {
		return nil, fmt.Errorf("object fetcher is nil")
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(keys))
	for _, key := range keys {
		body, err := p.Fetcher.Fetch(ctx, bucket, key)
		if err != nil {
			return written, fmt.Errorf("fetch %s: %w", key, err)
		}

		dest := filepath.Join(destDir, filepath.Base(key))
		file, err := os.Create(dest)
		if err != nil {
			body.Close()
			return written, err
		}
		_, copyErr := io.Copy(file, body)
		body.Close()
		if closeErr := file.Close(); copyErr == nil {
			copyErr = closeErr
		}
		if copyErr != nil {
			return written, fmt.Errorf("write %s: %w", dest, copyErr)
		}
		written = append(written, dest)
	}
	return written, nil
}
