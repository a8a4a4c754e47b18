package persistence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence/codec"
	"github.com/jhoicas/mm-inventario/pkg/config"
)

// S3Repository guarda el snapshot como un objeto (AWS S3 o MinIO). PutObject reemplaza
// el objeto completo, así que una lectura ve la versión anterior o la nueva.
type S3Repository struct {
	client *s3.Client
	bucket string
	key    string
}

// NewS3Repository construye el cliente. Sin credenciales explícitas usa la cadena por defecto.
func NewS3Repository(ctx context.Context, cfg config.S3Config, key string) (*S3Repository, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3: bucket requerido")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.Endpoint != "" {
		// Con endpoint propio (MinIO) el checksum solo se calcula si la operación lo exige.
		loadOpts = append(loadOpts, awsconfig.WithRequestChecksumCalculation(aws.RequestChecksumCalculationWhenRequired))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &S3Repository{client: client, bucket: cfg.Bucket, key: key + ".json"}, nil
}

// Load descarga el objeto; (nil, nil) si no existe.
func (r *S3Repository) Load(ctx context.Context) (*entity.AppState, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &r.bucket, Key: &r.key})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, nil
		}
		return nil, fmt.Errorf("s3: get %s/%s: %w", r.bucket, r.key, err)
	}
	defer func() { _ = out.Body.Close() }()
	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3: leer cuerpo: %w", err)
	}
	return codec.Decode(data)
}

// Save sube el snapshot completo.
func (r *S3Repository) Save(ctx context.Context, state *entity.AppState) error {
	data, err := codec.Encode(state)
	if err != nil {
		return err
	}
	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &r.bucket,
		Key:         &r.key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3: put %s/%s: %w", r.bucket, r.key, err)
	}
	return nil
}
