package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/IPampurin/LinkManager/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

// fakeReader отдаёт заранее подготовленный список ссылок
type fakeReader struct {
	links []*db.Link
	err   error
}

func (f *fakeReader) GetAllLinks(ctx context.Context) ([]*db.Link, error) {
	return f.links, f.err
}

// fakeUploader запоминает загруженный объект вместо похода в S3
type fakeUploader struct {
	key         string
	data        []byte
	contentType string
	err         error
}

func (f *fakeUploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {

	if f.err != nil {
		return f.err
	}

	f.key = key
	f.data = data
	f.contentType = contentType

	return nil
}

func (f *fakeUploader) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

// newTestLogger создаёт логгер для тестов
func newTestLogger(t *testing.T) logger.Logger {

	t.Helper()

	log, err := logger.InitLogger(
		logger.ZapEngine,
		"LinkManagerTest",
		"",
		logger.WithLevel(logger.InfoLevel),
	)
	require.NoError(t, err)

	return log
}

// TestExportCSV тестирует полный цикл выгрузки: чтение, сериализация, загрузка
func TestExportCSV(t *testing.T) {

	created := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	reader := &fakeReader{links: []*db.Link{
		{
			ID:          "id-1",
			ShortCode:   "abc123",
			OriginalURL: "https://example.com/first",
			AccessCount: 7,
			CreatedAt:   created,
		},
		{
			ID:          "id-2",
			ShortCode:   "xyz789",
			OriginalURL: "https://example.com/second",
			AccessCount: 0,
			CreatedAt:   created.Add(-time.Hour),
		},
	}}
	uploader := &fakeUploader{}

	exporter := InitExport(reader, uploader, "http://localhost:8081")

	url, err := exporter.ExportCSV(context.Background(), newTestLogger(t))
	require.NoError(t, err)

	// публичная ссылка указывает на загруженный ключ
	assert.Equal(t, "https://cdn.example.com/"+uploader.key, url)

	// ключ уникален по времени и идентификатору, лежит в каталоге exports
	assert.True(t, strings.HasPrefix(uploader.key, "exports/links_"), "ключ %q", uploader.key)
	assert.True(t, strings.HasSuffix(uploader.key, ".csv"), "ключ %q", uploader.key)
	assert.Equal(t, "text/csv", uploader.contentType)

	// разбираем загруженный CSV обратно
	records, err := csv.NewReader(bytes.NewReader(uploader.data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "заголовок и по строке на ссылку")

	assert.Equal(t, []string{"original_url", "short_url", "access_count", "created_at"}, records[0])

	assert.Equal(t, []string{
		"https://example.com/first",
		"http://localhost:8081/r/abc123",
		"7",
		"2025-06-01T09:30:00Z",
	}, records[1])

	assert.Equal(t, []string{
		"https://example.com/second",
		"http://localhost:8081/r/xyz789",
		"0",
		"2025-06-01T08:30:00Z",
	}, records[2])
}

// TestExportCSVEmpty тестирует выгрузку пустого хранилища: остаётся только заголовок
func TestExportCSVEmpty(t *testing.T) {

	uploader := &fakeUploader{}
	exporter := InitExport(&fakeReader{}, uploader, "http://localhost:8081")

	_, err := exporter.ExportCSV(context.Background(), newTestLogger(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(uploader.data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"original_url", "short_url", "access_count", "created_at"}, records[0])
}

// TestExportCSVErrors тестирует, что сбой любого этапа — единая ошибка выгрузки
func TestExportCSVErrors(t *testing.T) {

	log := newTestLogger(t)

	// сбой чтения из БД
	readErr := errors.New("БД недоступна")
	exporter := InitExport(&fakeReader{err: readErr}, &fakeUploader{}, "http://localhost:8081")

	_, err := exporter.ExportCSV(context.Background(), log)
	assert.ErrorIs(t, err, readErr)

	// сбой загрузки в объектное хранилище
	uploadErr := errors.New("хранилище недоступно")
	exporter = InitExport(&fakeReader{}, &fakeUploader{err: uploadErr}, "http://localhost:8081")

	_, err = exporter.ExportCSV(context.Background(), log)
	assert.ErrorIs(t, err, uploadErr)
}
