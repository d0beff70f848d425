// Package storage implementa el bucket de archivos subidos sobre un object
// store compatible con S3.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tlt-imports/reposicion-api/pkg/config"
)

// MinioAlmacen adapta minio-go al puerto Almacen de la carga masiva.
type MinioAlmacen struct {
	client *minio.Client
	bucket string
}

// NewMinioAlmacen conecta al endpoint y asegura que el bucket exista.
func NewMinioAlmacen(ctx context.Context, cfg config.StorageConfig) (*MinioAlmacen, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: conectar a %s: %w", cfg.Endpoint, err)
	}

	existe, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: verificar bucket %s: %w", cfg.Bucket, err)
	}
	if !existe {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: crear bucket %s: %w", cfg.Bucket, err)
		}
	}
	return &MinioAlmacen{client: client, bucket: cfg.Bucket}, nil
}

// Descargar abre el objeto para lectura. El caller debe cerrar el reader.
func (a *MinioAlmacen) Descargar(ctx context.Context, ruta string) (io.ReadCloser, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, ruta, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("storage: descargar %s: %w", ruta, err)
	}
	return obj, nil
}

// Eliminar borra el objeto del bucket.
func (a *MinioAlmacen) Eliminar(ctx context.Context, ruta string) error {
	if err := a.client.RemoveObject(ctx, a.bucket, ruta, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: eliminar %s: %w", ruta, err)
	}
	return nil
}

// Subir guarda un objeto en el bucket y devuelve la ruta.
func (a *MinioAlmacen) Subir(ctx context.Context, ruta string, r io.Reader, tamano int64, contentType string) (string, error) {
	_, err := a.client.PutObject(ctx, a.bucket, ruta, r, tamano, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("storage: subir %s: %w", ruta, err)
	}
	return ruta, nil
}
