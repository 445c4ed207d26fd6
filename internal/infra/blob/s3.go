package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/buildra-io/sitetrack/internal/config"
)

// S3Deps wraps the S3 client together with the three logical buckets
// used by the tracker: construction drawings, site photos and invoices.
type S3Deps struct {
	Client        *s3.Client
	Uploader      *manager.Uploader
	Presigner     *s3.PresignClient
	Drawings      string
	Photos        string
	Invoices      string
	PublicBaseURL string
}

func NewS3(ctx context.Context, cfg *config.Config) (*S3Deps, error) {
	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	s3Opts := func(o *s3.Options) {
		if ep := strings.TrimSpace(cfg.S3.Endpoint); ep != "" {
			if !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
				ep = "https://" + ep
			}
			if u, uerr := url.Parse(ep); uerr == nil {
				o.BaseEndpoint = aws.String(u.String())
			}
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	}

	client := s3.NewFromConfig(acfg, s3Opts)

	base := strings.TrimRight(cfg.S3.PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(cfg.S3.Endpoint, "/")
	}

	return &S3Deps{
		Client:        client,
		Uploader:      manager.NewUploader(client),
		Presigner:     s3.NewPresignClient(client),
		Drawings:      cfg.S3.DrawingsBucket,
		Photos:        cfg.S3.PhotosBucket,
		Invoices:      cfg.S3.InvoicesBucket,
		PublicBaseURL: base,
	}, nil
}

type UploadedMeta struct {
	Bucket    string
	Key       string
	ETag      string
	SHA256    string
	MIME      string
	SizeB     int64
	PublicURL string
}

// UploadFormFile streams a multipart upload into the given bucket.
// Keys are content addressed under a date prefix so re-uploads of the
// same file land on the same object.
func (u *S3Deps) UploadFormFile(ctx context.Context, bucket string, fh *multipart.FileHeader) (*UploadedMeta, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sumHex, err := sha256OfFileHeader(fh)
	if err != nil {
		return nil, fmt.Errorf("calc sha256: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	datePrefix := time.Now().UTC().Format("2006/01/02")
	key := fmt.Sprintf("%s/%s%s", datePrefix, sumHex, ext)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(fh.Header.Get("Content-Type")),
		Metadata: map[string]string{
			"sha256": sumHex,
			"name":   fh.Filename,
		},
	}

	out, err := u.Uploader.Upload(ctx, input)
	if err != nil {
		return nil, err
	}

	return &UploadedMeta{
		Bucket:    bucket,
		Key:       key,
		ETag:      aws.ToString(out.ETag),
		SHA256:    sumHex,
		MIME:      fh.Header.Get("Content-Type"),
		SizeB:     fh.Size,
		PublicURL: u.PublicURL(bucket, key),
	}, nil
}

// PublicURL returns the stable, publicly reachable URL of an object.
func (u *S3Deps) PublicURL(bucket, key string) string {
	if u.PublicBaseURL == "" {
		return fmt.Sprintf("https://%s/%s", bucket, key)
	}
	return fmt.Sprintf("%s/%s/%s", u.PublicBaseURL, bucket, key)
}

// PresignGet generates a pre-signed GET URL for private reads.
func (u *S3Deps) PresignGet(ctx context.Context, bucket, key string, expire time.Duration) (string, error) {
	if key == "" {
		return "", errors.New("key is empty")
	}
	ps, err := u.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, func(po *s3.PresignOptions) {
		po.Expires = expire
	})
	if err != nil {
		return "", err
	}
	return ps.URL, nil
}

func sha256OfFileHeader(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
