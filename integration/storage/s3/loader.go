package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/mailkit/core/email"
)

// DefaultMaxObjectSize caps the bytes read for a single attachment.
const DefaultMaxObjectSize int64 = 10 << 20

// S3Client defines the S3 operations used by AttachmentLoader.
type S3Client interface {
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error)
}

// AttachmentLoader reads objects from a bucket and encodes them as email
// attachments. Safe for concurrent use.
type AttachmentLoader struct {
	client        S3Client
	bucket        string
	maxObjectSize int64
}

// Option configures an AttachmentLoader.
type Option func(*options)

type options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3aws.Options)
}

// WithS3Client sets a pre-configured S3 client.
// Primarily used for testing with mocks.
func WithS3Client(client S3Client) Option {
	return func(o *options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// New creates an attachment loader for cfg.Bucket.
// Static credentials are used when both keys are set; otherwise the default
// AWS credential chain applies.
func New(ctx context.Context, cfg Config, opts ...Option) (*AttachmentLoader, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: bucket and region are required", ErrInvalidConfig)
	}
	if cfg.MaxObjectSize < 0 {
		return nil, fmt.Errorf("%w: max object size must not be negative", ErrInvalidConfig)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.s3Client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}

		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}

		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}

		awsOptions = append(awsOptions, o.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle

			for _, opt := range o.s3ClientOptions {
				opt(so)
			}
		})
	}

	maxSize := cfg.MaxObjectSize
	if maxSize == 0 {
		maxSize = DefaultMaxObjectSize
	}

	return &AttachmentLoader{
		client:        client,
		bucket:        cfg.Bucket,
		maxObjectSize: maxSize,
	}, nil
}

// Attachment fetches key and names the attachment after the key's base name.
// The file kind is derived from the extension; keys with an extension outside
// the supported set fail with ErrUnsupportedFileKind.
func (l *AttachmentLoader) Attachment(ctx context.Context, key string) (email.Attachment, error) {
	name := path.Base(strings.TrimPrefix(key, "/"))
	kind, ok := email.FileKindFromName(name)
	if !ok {
		return email.Attachment{}, fmt.Errorf("%w: %s", ErrUnsupportedFileKind, name)
	}
	return l.AttachmentAs(ctx, key, name, kind)
}

// AttachmentAs fetches key and encodes it with an explicit name and kind.
func (l *AttachmentLoader) AttachmentAs(ctx context.Context, key, name string, kind email.FileKind) (email.Attachment, error) {
	if !kind.Valid() {
		return email.Attachment{}, fmt.Errorf("%w: %s", ErrUnsupportedFileKind, kind)
	}

	data, err := l.read(ctx, key)
	if err != nil {
		return email.Attachment{}, err
	}

	return email.NewAttachment(data, name, kind), nil
}

// Exists reports whether key is present in the bucket.
func (l *AttachmentLoader) Exists(ctx context.Context, key string) bool {
	key, err := cleanKey(key)
	if err != nil {
		return false
	}

	_, err = l.client.HeadObject(ctx, &s3aws.HeadObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

func (l *AttachmentLoader) read(ctx context.Context, key string) ([]byte, error) {
	key, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	out, err := l.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, "get object")
	}
	defer func() { _ = out.Body.Close() }()

	if size := aws.ToInt64(out.ContentLength); size > l.maxObjectSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrObjectTooLarge, key, size)
	}

	// ContentLength may be missing, so the read itself is bounded too.
	data, err := io.ReadAll(io.LimitReader(out.Body, l.maxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadObject, err)
	}
	if int64(len(data)) > l.maxObjectSize {
		return nil, fmt.Errorf("%w: %s", ErrObjectTooLarge, key)
	}

	return data, nil
}

// cleanKey strips a leading slash and rejects keys that try to escape a prefix.
func cleanKey(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return key, nil
}
