package service

import (
	"context"
	"net/url"

	"github.com/IPampurin/LinkManager/pkg/db"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	maxCreateAttempts = 5 // лимит попыток вставки при сгенерированном коде

	defaultPageLimit = 20  // размер страницы списка по умолчанию
	maxPageLimit     = 100 // потолок размера страницы
)

// CreateShortLink создаёт новую короткую ссылку
// (если customCode не пуст, проверяет его формат и занятость без повторных попыток,
// иначе генерирует случайный код и вставляет с ограниченным числом попыток,
// полагаясь при гонках на уникальный индекс short_code в БД)
func (s *Service) CreateShortLink(ctx context.Context, log logger.Logger, originalURL, customCode string) (*ResponseLink, error) {

	// 1. Проверяем оригинальный URL
	if !validOriginalURL(originalURL) {
		return nil, ErrBadOriginalURL
	}

	// 2. Пользовательский код: одна попытка, занятость — конфликт
	if customCode != "" {

		if !ValidShortCode(customCode) {
			return nil, ErrBadShortCode
		}

		existing, err := s.link.GetLinkByShortCode(ctx, customCode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrShortCodeTaken
		}

		link, err := s.link.CreateLink(ctx, uuid.New().String(), customCode, originalURL)
		if err != nil {
			// параллельный запрос мог занять код между проверкой и вставкой
			if db.IsUniqueViolation(err) {
				return nil, ErrShortCodeTaken
			}
			return nil, err
		}

		s.cacheLink(ctx, log, link)

		log.Ctx(ctx).Info("новая короткая ссылка создана",
			"short_code", link.ShortCode,
			"original_url", originalURL,
			"is_custom", true)

		return toResponseLink(link), nil
	}

	// 3. Сгенерированный код: цикл генерация — проверка — вставка
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {

		shortCode := NewShortCode(0)

		// контроль формата един для пользовательских и сгенерированных кодов
		if !ValidShortCode(shortCode) {
			continue
		}

		existing, err := s.link.GetLinkByShortCode(ctx, shortCode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			// код занят, тратим попытку на следующий
			continue
		}

		link, err := s.link.CreateLink(ctx, uuid.New().String(), shortCode, originalURL)
		if err != nil {
			// проигрыш гонки за код — неудачная попытка,
			// любая другая ошибка БД прекращает цикл сразу
			if db.IsUniqueViolation(err) {
				log.Ctx(ctx).Warn("код занят параллельной вставкой",
					"short_code", shortCode, "attempt", attempt)
				continue
			}
			return nil, err
		}

		s.cacheLink(ctx, log, link)

		log.Ctx(ctx).Info("новая короткая ссылка создана",
			"short_code", link.ShortCode,
			"original_url", originalURL,
			"is_custom", false)

		return toResponseLink(link), nil
	}

	log.Ctx(ctx).Error("попытки создания ссылки исчерпаны", "original_url", originalURL)

	return nil, ErrCreateFailed
}

// LinkInfo возвращает информацию о ссылке по короткому коду
func (s *Service) LinkInfo(ctx context.Context, log logger.Logger, shortCode string) (*ResponseLink, error) {

	link, err := s.findByShortCode(ctx, log, shortCode)
	if err != nil {
		return nil, err
	}
	if link == nil {
		log.Ctx(ctx).Info("ссылка не найдена", "short_code", shortCode)
		return nil, ErrNotFound
	}

	return toResponseLink(link), nil
}

// ListLinks возвращает страницу списка ссылок в порядке created_at DESC, id DESC
func (s *Service) ListLinks(ctx context.Context, log logger.Logger, limit int, cursor string) (*ResponsePage, error) {

	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	var (
		links []*db.Link
		err   error
	)

	if cursor == "" {
		links, err = s.link.ListLinks(ctx, limit)
	} else {
		createdAt, id, errCursor := decodeCursor(cursor)
		if errCursor != nil {
			return nil, errCursor
		}
		links, err = s.link.ListLinksAfter(ctx, createdAt, id, limit)
	}
	if err != nil {
		log.Ctx(ctx).Error("ошибка получения списка ссылок", "error", err)
		return nil, err
	}

	items := make([]*ResponseLink, len(links))
	for i, l := range links {
		items[i] = toResponseLink(l)
	}

	page := &ResponsePage{Items: items}

	// курсор выдаём только при полной странице:
	// неполная страница означает конец списка
	if len(links) == limit {
		last := links[len(links)-1]
		page.NextCursor = encodeCursor(last.CreatedAt, last.ID)
	}

	log.Ctx(ctx).Info("список ссылок запрошен", "count", len(items))

	return page, nil
}

// DeleteLink безвозвратно удаляет ссылку по идентификатору
func (s *Service) DeleteLink(ctx context.Context, log logger.Logger, id string) error {

	if _, err := uuid.Parse(id); err != nil {
		return ErrBadID
	}

	shortCode, err := s.link.DeleteLink(ctx, id)
	if err != nil {
		log.Ctx(ctx).Error("ошибка удаления ссылки", "error", err, "id", id)
		return err
	}
	if shortCode == "" {
		return ErrNotFound
	}

	// вычищаем удалённую ссылку из кэша, чтобы редирект не отдавал её до конца TTL
	if s.cache != nil {
		if err := s.cache.DeleteLink(ctx, shortCode); err != nil {
			log.Ctx(ctx).Error("ошибка удаления из кэша", "error", err, "short_code", shortCode)
		}
	}

	log.Ctx(ctx).Info("ссылка удалена", "id", id, "short_code", shortCode)

	return nil
}

// Redirect возвращает оригинальный URL для перехода и увеличивает счётчик переходов
func (s *Service) Redirect(ctx context.Context, log logger.Logger, shortCode string) (string, error) {

	link, err := s.findByShortCode(ctx, log, shortCode)
	if err != nil {
		return "", err
	}
	if link == nil {
		log.Ctx(ctx).Info("переход по несуществующему коду", "short_code", shortCode)
		return "", ErrNotFound
	}

	// счётчик увеличиваем синхронно до ответа, само приращение атомарно в БД
	if err := s.link.IncrementAccessCount(ctx, link.ID); err != nil {
		log.Ctx(ctx).Error("ошибка увеличения счётчика", "error", err, "id", link.ID)
		return "", err
	}

	log.Ctx(ctx).Debug("переход по ссылке", "short_code", shortCode)

	return link.OriginalURL, nil
}

// SearchByOriginalURL ищет ссылки, OriginalURL которых содержит query (регистронезависимо)
func (s *Service) SearchByOriginalURL(ctx context.Context, log logger.Logger, query string) ([]*ResponseLink, error) {

	links, err := s.link.SearchByOriginalURL(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error("ошибка поиска по OriginalURL", "error", err, "query", query)
		return nil, err
	}

	result := make([]*ResponseLink, len(links))
	for i, l := range links {
		result[i] = toResponseLink(l)
	}

	log.Ctx(ctx).Info("поиск по OriginalURL выполнен", "query", query, "found", len(result))

	return result, nil
}

// SearchByShortCode ищет ссылки, ShortCode которых содержит query (регистронезависимо)
func (s *Service) SearchByShortCode(ctx context.Context, log logger.Logger, query string) ([]*ResponseLink, error) {

	links, err := s.link.SearchByShortCode(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error("ошибка поиска по ShortCode", "error", err, "query", query)
		return nil, err
	}

	result := make([]*ResponseLink, len(links))
	for i, l := range links {
		result[i] = toResponseLink(l)
	}

	log.Ctx(ctx).Info("поиск по ShortCode выполнен", "query", query, "found", len(result))

	return result, nil
}

// findByShortCode ищет ссылку сначала в кэше, затем в БД
// (nil, nil — если ссылки нет; найденная в БД запись докладывается в кэш)
func (s *Service) findByShortCode(ctx context.Context, log logger.Logger, shortCode string) (*db.Link, error) {

	if s.cache != nil {
		link, err := s.cache.GetLink(ctx, shortCode)
		if err != nil {
			log.Ctx(ctx).Error("ошибка получения из кэша", "error", err)
		}
		if link != nil {
			log.Ctx(ctx).Debug("ссылка получена из кэша", "short_code", shortCode)
			return link, nil
		}
	}

	link, err := s.link.GetLinkByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, nil
	}

	s.cacheLink(ctx, log, link)

	return link, nil
}

// cacheLink кладёт ссылку в кэш, ошибки кэша не фатальны
func (s *Service) cacheLink(ctx context.Context, log logger.Logger, link *db.Link) {

	if s.cache == nil {
		return
	}

	if err := s.cache.SetLink(ctx, link.ShortCode, link); err != nil {
		log.Ctx(ctx).Error("ошибка сохранения в кэш", "error", err)
	}
}

// validOriginalURL проверяет, что строка — синтаксически корректный абсолютный URL
func validOriginalURL(rawURL string) bool {

	u, err := url.Parse(rawURL)

	return err == nil && u.Scheme != "" && u.Host != ""
}

// toResponseLink преобразует db.Link в service.ResponseLink
func toResponseLink(l *db.Link) *ResponseLink {

	return &ResponseLink{
		ID:          l.ID,
		ShortCode:   l.ShortCode,
		OriginalURL: l.OriginalURL,
		AccessCount: l.AccessCount,
		CreatedAt:   l.CreatedAt,
	}
}
