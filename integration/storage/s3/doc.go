// Package s3 loads email attachments from Amazon S3 and S3-compatible
// services such as MinIO, DigitalOcean Spaces and Wasabi.
//
// core/email never reads files itself; AttachmentLoader is the collaborator
// that fetches the bytes and hands them to email.NewAttachment.
//
// Basic usage:
//
//	import (
//		"github.com/dmitrymomot/mailkit/core/email"
//		"github.com/dmitrymomot/mailkit/integration/storage/s3"
//	)
//
//	loader, err := s3.New(ctx, s3.Config{
//		Bucket:      "invoices",
//		Region:      "us-east-1",
//		AccessKeyID: "AKIA...", // Optional - uses the default credential chain if empty
//		SecretKey:   "...",
//	})
//	if err != nil {
//		return err
//	}
//
//	// Kind is taken from the extension: .pdf -> application/pdf
//	att, err := loader.Attachment(ctx, "2024/03/invoice-1042.pdf")
//	if err != nil {
//		return err
//	}
//
//	msg := email.NewMessage(from, to, "Your invoice is attached.").WithAttachment(att)
//
// Use AttachmentAs to choose the file name and kind explicitly, for keys
// without a meaningful extension:
//
//	att, err := loader.AttachmentAs(ctx, "exports/7f3a", "report.csv", email.FileKindCsv)
//
// # S3-Compatible Services
//
// Set Endpoint and ForcePathStyle for MinIO and similar services:
//
//	cfg := s3.Config{
//		Bucket:         "attachments",
//		Region:         "us-east-1",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	}
//
// # Configuration
//
// LoadConfig reads Config from S3_BUCKET, S3_REGION, S3_ACCESS_KEY_ID,
// S3_SECRET_KEY, S3_ENDPOINT, S3_FORCE_PATH_STYLE and S3_MAX_OBJECT_SIZE.
// Objects larger than MaxObjectSize (10 MiB by default) are rejected with
// ErrObjectTooLarge before they are encoded.
//
// # Error Handling
//
// SDK errors are mapped to package sentinels:
//
//	att, err := loader.Attachment(ctx, key)
//	switch {
//	case errors.Is(err, s3.ErrObjectNotFound):
//		// missing object
//	case errors.Is(err, s3.ErrAccessDenied):
//		// check bucket policy
//	case errors.Is(err, s3.ErrUnsupportedFileKind):
//		// extension outside the supported attachment kinds
//	}
//
// Keys containing ".." are rejected with ErrInvalidKey.
//
// # Testing
//
// WithS3Client accepts any S3Client, so tests can supply a mock instead of
// talking to AWS.
package s3
