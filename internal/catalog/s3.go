package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bradykim7/mealplanner/internal/models"
	"go.uber.org/zap"
)

// ObjectGetter is the part of the S3 client the source uses
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads the catalog document from an S3 object
type S3Source struct {
	client ObjectGetter
	bucket string
	key    string
	log    *zap.Logger
}

// NewS3Source creates an S3 catalog source from the default AWS credential chain
func NewS3Source(ctx context.Context, region, bucket, key string, log *zap.Logger) (*S3Source, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3SourceWithClient(s3.NewFromConfig(cfg), bucket, key, log), nil
}

// NewS3SourceWithClient creates an S3 catalog source around an existing client
func NewS3SourceWithClient(client ObjectGetter, bucket, key string, log *zap.Logger) *S3Source {
	return &S3Source{
		client: client,
		bucket: bucket,
		key:    key,
		log:    log.Named("s3-catalog"),
	}
}

// Name returns the name of the source
func (s *S3Source) Name() string {
	return "s3"
}

// Load downloads and decodes the catalog object
func (s *S3Source) Load(ctx context.Context) (models.Catalog, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		s.log.Warn("Failed to get catalog object",
			zap.Error(err),
			zap.String("bucket", s.bucket),
			zap.String("key", s.key))
		return nil, fmt.Errorf("%w: %v", models.ErrFetch, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read object: %v", models.ErrFetch, err)
	}

	return Decode(data, DetectFormat(aws.ToString(out.ContentType), s.key))
}
