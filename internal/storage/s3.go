package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	appconfig "github.com/valkirianails/salon-api/internal/config"
)

// Uploader sube imágenes de diseños al bucket: decodifica, reescala al
// ancho máximo y recodifica a WebP antes del PutObject.
type Uploader struct {
	client   *s3.Client
	bucket   string
	maxWidth int
	quality  float32
}

func NewUploader(cfg *appconfig.Config) (*Uploader, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME no está configurado")
	}

	client := s3.New(s3.Options{
		Region: cfg.AWSRegion,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKeyID,
				cfg.AWSSecretKey,
				"",
			),
		),
	})

	return &Uploader{
		client:   client,
		bucket:   cfg.S3Bucket,
		maxWidth: cfg.UploadMaxWidth,
		quality:  cfg.UploadQuality,
	}, nil
}

// Upload procesa el archivo y devuelve la URL pública del objeto.
func (u *Uploader) Upload(ctx context.Context, file multipart.File) (string, error) {
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("imagen inválida: %w", err)
	}

	src = u.resize(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: u.quality}); err != nil {
		return "", fmt.Errorf("no se pudo codificar a webp: %w", err)
	}

	key := uuid.NewString() + ".webp"

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("fallo al subir a S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.bucket, key), nil
}

func (u *Uploader) resize(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= u.maxWidth {
		return src
	}

	h := b.Dy() * u.maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, u.maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
