package export

import (
	"context"

	"github.com/IPampurin/LinkManager/pkg/db"
	"github.com/wb-go/wbf/logger"
)

// LinkReader — часть хранилища, нужная выгрузке (её реализует *db.DataBase)
type LinkReader interface {
	// GetAllLinks возвращает все ссылки в порядке created_at DESC
	GetAllLinks(ctx context.Context) ([]*db.Link, error)
}

// Uploader — объектное хранилище для готового CSV
type Uploader interface {
	// Upload загружает объект под указанным ключом
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// PublicURL возвращает публично доступный адрес объекта по его ключу
	PublicURL(key string) string
}

// ExportMethods — операции выгрузки, которые видит слой API
type ExportMethods interface {
	// ExportCSV выгружает все ссылки в CSV, заливает файл в объектное
	// хранилище и возвращает публичную ссылку на него
	ExportCSV(ctx context.Context, log logger.Logger) (string, error)
}
