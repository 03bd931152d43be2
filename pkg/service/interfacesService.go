package service

import (
	"context"

	"github.com/wb-go/wbf/logger"
)

type ServiceMethods interface {
	// CreateShortLink создаёт новую короткую ссылку
	CreateShortLink(ctx context.Context, log logger.Logger, originalURL, customCode string) (*ResponseLink, error)

	// LinkInfo возвращает информацию о ссылке по её короткому коду
	LinkInfo(ctx context.Context, log logger.Logger, shortCode string) (*ResponseLink, error)

	// ListLinks возвращает страницу ссылок в порядке created_at DESC с курсором пагинации
	ListLinks(ctx context.Context, log logger.Logger, limit int, cursor string) (*ResponsePage, error)

	// DeleteLink безвозвратно удаляет ссылку по идентификатору
	DeleteLink(ctx context.Context, log logger.Logger, id string) error

	// Redirect возвращает оригинальный URL для перехода и фиксирует переход в счётчике
	Redirect(ctx context.Context, log logger.Logger, shortCode string) (string, error)

	// SearchByOriginalURL ищет ссылки, OriginalURL которых содержит подстроку query
	SearchByOriginalURL(ctx context.Context, log logger.Logger, query string) ([]*ResponseLink, error)

	// SearchByShortCode ищет ссылки, ShortCode которых содержит подстроку query
	SearchByShortCode(ctx context.Context, log logger.Logger, query string) ([]*ResponseLink, error)
}
