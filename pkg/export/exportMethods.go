package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/IPampurin/LinkManager/pkg/db"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// Export выполняет выгрузку всех ссылок в CSV с заливкой в объектное хранилище
type Export struct {
	link    LinkReader
	store   Uploader
	baseURL string
}

// InitExport собирает сервис выгрузки
// (baseURL используется при сборке колонок short_url вида <baseURL>/r/<код>)
func InitExport(storage LinkReader, store Uploader, baseURL string) *Export {

	return &Export{
		link:    storage,
		store:   store,
		baseURL: baseURL,
	}
}

// ExportCSV читает все ссылки, сериализует их в CSV с заголовком,
// загружает файл под уникальным ключом и возвращает публичную ссылку.
// Сбой на любом этапе — единая ошибка выгрузки, частичное состояние не сохраняется
func (e *Export) ExportCSV(ctx context.Context, log logger.Logger) (string, error) {

	// 1. Читаем все ссылки
	links, err := e.link.GetAllLinks(ctx)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения ссылок при выгрузке: %w", err)
	}

	// 2. Сериализуем в CSV
	data, err := buildCSV(links, e.baseURL)
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации CSV при выгрузке: %w", err)
	}

	// 3. Загружаем под уникальным ключом
	key := fmt.Sprintf("exports/links_%d_%s.csv", time.Now().UnixMilli(), uuid.New().String())

	if err := e.store.Upload(ctx, key, data, "text/csv"); err != nil {
		return "", fmt.Errorf("ошибка загрузки CSV при выгрузке: %w", err)
	}

	url := e.store.PublicURL(key)

	log.Ctx(ctx).Info("выгрузка ссылок выполнена", "key", key, "count", len(links))

	return url, nil
}

// buildCSV собирает содержимое CSV-файла: строка заголовка и по строке на ссылку
func buildCSV(links []*db.Link, baseURL string) ([]byte, error) {

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// заголовок
	if err := w.Write([]string{"original_url", "short_url", "access_count", "created_at"}); err != nil {
		return nil, err
	}

	for _, l := range links {
		row := []string{
			l.OriginalURL,
			baseURL + "/r/" + l.ShortCode,
			strconv.Itoa(l.AccessCount),
			l.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
