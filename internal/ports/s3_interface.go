package ports

import (
	"context"
	"io"
	"time"
)

// UploadedFile : файл из multipart-формы, готовый к отправке в хранилище
type UploadedFile struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	ContentType string
}

// S3Storage : внешнее медиахранилище
type S3Storage interface {
	// UploadObject кладёт объект и возвращает постоянный URL
	UploadObject(ctx context.Context, key string, file UploadedFile) (string, error)
	GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error)
	DeleteObject(ctx context.Context, key string) error
}
