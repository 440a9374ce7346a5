package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

var (
	ErrInvalidConfig       = errors.New("s3: invalid configuration")
	ErrInvalidKey          = errors.New("s3: invalid object key")
	ErrObjectNotFound      = errors.New("s3: object not found")
	ErrBucketNotFound      = errors.New("s3: bucket not found")
	ErrAccessDenied        = errors.New("s3: access denied")
	ErrObjectTooLarge      = errors.New("s3: object exceeds size limit")
	ErrUnsupportedFileKind = errors.New("s3: unsupported attachment file kind")
	ErrOperationTimeout    = errors.New("s3: operation timed out")
	ErrOperationCanceled   = errors.New("s3: operation canceled")
	ErrServiceUnavailable  = errors.New("s3: service unavailable")
	ErrFailedToReadObject  = errors.New("s3: failed to read object")
)

// classifyS3Error converts SDK errors into the package sentinels.
// Unknown API errors keep their code in the message and stay unwrappable.
func classifyS3Error(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation", ErrOperationCanceled, operation)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, err)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch code {
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %s operation", ErrAccessDenied, operation)
		case "RequestTimeout":
			return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: %s operation", ErrServiceUnavailable, operation)
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", ErrObjectNotFound, err)
		case "NoSuchBucket":
			return ErrBucketNotFound
		default:
			return fmt.Errorf("%s operation failed (code: %s): %w", operation, code, err)
		}
	}

	return fmt.Errorf("%s operation failed: %w", operation, err)
}
