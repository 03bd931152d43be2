package db

import (
	"context"
	"time"
)

// методы по таблице Link
type LinkMethods interface {
	// CreateLink создаёт новую запись в таблице links
	CreateLink(ctx context.Context, id, shortCode, originalURL string) (*Link, error)

	// GetLinkByShortCode возвращает ссылку по её короткому коду (nil, nil — если записи нет)
	GetLinkByShortCode(ctx context.Context, shortCode string) (*Link, error)

	// ListLinks возвращает первую страницу ссылок в порядке created_at DESC, id DESC
	ListLinks(ctx context.Context, limit int) ([]*Link, error)

	// ListLinksAfter возвращает страницу ссылок строго после позиции (createdAt, id)
	// в порядке created_at DESC, id DESC
	ListLinksAfter(ctx context.Context, createdAt time.Time, id string, limit int) ([]*Link, error)

	// DeleteLink удаляет запись по идентификатору и возвращает её короткий код
	// (пустая строка — если записи не было)
	DeleteLink(ctx context.Context, id string) (string, error)

	// IncrementAccessCount атомарно увеличивает счётчик переходов по ссылке на единицу
	IncrementAccessCount(ctx context.Context, id string) error

	// GetAllLinks возвращает все ссылки в порядке created_at DESC (для выгрузки)
	GetAllLinks(ctx context.Context) ([]*Link, error)

	// GetLinksOfPeriod возвращает ссылки, созданные за указанный период времени
	GetLinksOfPeriod(ctx context.Context, period time.Duration) ([]*Link, error)

	// SearchByOriginalURL ищет ссылки, OriginalURL которых содержит подстроку query
	SearchByOriginalURL(ctx context.Context, search string) ([]*Link, error)

	// SearchByShortCode ищет ссылки, ShortCode которых содержит подстроку query
	SearchByShortCode(ctx context.Context, search string) ([]*Link, error)
}
