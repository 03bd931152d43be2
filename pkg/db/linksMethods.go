package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// CreateLink добавляет новую запись в таблицу links БД
func (d *DataBase) CreateLink(ctx context.Context, id, shortCode, originalURL string) (*Link, error) {

	query := `   INSERT INTO links (id, short_code, original_url, access_count, created_at)
                 VALUES ($1, $2, $3, $4, NOW())
			  RETURNING created_at`

	link := &Link{
		ID:          id,
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		AccessCount: 0,
	}

	err := d.Pool.QueryRow(ctx, query, id, shortCode, originalURL, 0).
		Scan(&link.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("ошибка добавления записи о ссылке в CreateLink: %w", err)
	}

	return link, nil
}

// GetLinkByShortCode получает из таблицы links БД запись по короткому коду
func (d *DataBase) GetLinkByShortCode(ctx context.Context, shortCode string) (*Link, error) {

	query := `SELECT id, short_code, original_url, access_count, created_at
	            FROM links
			   WHERE short_code = $1`

	link := &Link{}

	err := d.Pool.QueryRow(ctx, query, shortCode).
		Scan(&link.ID,
			&link.ShortCode,
			&link.OriginalURL,
			&link.AccessCount,
			&link.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения записи о ссылке в GetLinkByShortCode: %w", err)
	}

	return link, nil
}

// ListLinks получает первую страницу записей в порядке created_at DESC, id DESC
func (d *DataBase) ListLinks(ctx context.Context, limit int) ([]*Link, error) {

	query := `SELECT id, short_code, original_url, access_count, created_at
	            FROM links
			   ORDER BY created_at DESC, id DESC
			   LIMIT $1`

	rows, err := d.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка ссылок в ListLinks: %w", err)
	}
	defer rows.Close()

	return scanLinks(rows, "ListLinks")
}

// ListLinksAfter получает страницу записей строго после позиции (createdAt, id).
// id выступает разрешителем ничьих при совпадающих created_at, чтобы порядок был полным
func (d *DataBase) ListLinksAfter(ctx context.Context, createdAt time.Time, id string, limit int) ([]*Link, error) {

	query := `SELECT id, short_code, original_url, access_count, created_at
	            FROM links
			   WHERE created_at < $1 OR (created_at = $1 AND id < $2)
			   ORDER BY created_at DESC, id DESC
			   LIMIT $3`

	rows, err := d.Pool.Query(ctx, query, createdAt, id, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка ссылок в ListLinksAfter: %w", err)
	}
	defer rows.Close()

	return scanLinks(rows, "ListLinksAfter")
}

// DeleteLink удаляет запись по идентификатору и возвращает короткий код удалённой ссылки
// (пустая строка — если записи с таким id не было)
func (d *DataBase) DeleteLink(ctx context.Context, id string) (string, error) {

	query := `   DELETE FROM links
	              WHERE id = $1
			  RETURNING short_code`

	var shortCode string

	err := d.Pool.QueryRow(ctx, query, id).Scan(&shortCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("ошибка удаления записи о ссылке в DeleteLink: %w", err)
	}

	return shortCode, nil
}

// IncrementAccessCount увеличивает счётчик переходов по ссылке.
// Инкремент выполняется одним SQL-выражением, а не чтением-изменением-записью,
// поэтому параллельные переходы не теряют обновлений
func (d *DataBase) IncrementAccessCount(ctx context.Context, id string) error {

	query := `UPDATE links
	             SET access_count = access_count + 1
			   WHERE id = $1`

	_, err := d.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка увеличения счётчика переходов в IncrementAccessCount: %w", err)
	}

	return nil
}

// GetAllLinks получает все записи по сокращению ссылок для выгрузки в CSV
func (d *DataBase) GetAllLinks(ctx context.Context) ([]*Link, error) {

	query := `SELECT id, short_code, original_url, access_count, created_at
	            FROM links
			   ORDER BY created_at DESC, id DESC`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка ссылок в GetAllLinks: %w", err)
	}
	defer rows.Close()

	return scanLinks(rows, "GetAllLinks")
}

// GetLinksOfPeriod возвращает записи за крайний period времени
func (d *DataBase) GetLinksOfPeriod(ctx context.Context, period time.Duration) ([]*Link, error) {

	threshold := time.Now().Add(-period)

	query := `SELECT id, short_code, original_url, access_count, created_at
	            FROM links
			   WHERE created_at >= $1`

	rows, err := d.Pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка ссылок в GetLinksOfPeriod: %w", err)
	}
	defer rows.Close()

	return scanLinks(rows, "GetLinksOfPeriod")
}

// SearchByOriginalURL ищет ссылки, OriginalURL которых содержит подстроку query (регистронезависимо)
func (d *DataBase) SearchByOriginalURL(ctx context.Context, search string) ([]*Link, error) {

	query := `SELECT id, short_code, original_url, access_count, created_at
	            FROM links
			   WHERE original_url ILIKE '%' || $1 || '%'
			   ORDER BY created_at DESC
			   LIMIT 100`

	rows, err := d.Pool.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка ссылок в SearchByOriginalURL: %w", err)
	}
	defer rows.Close()

	return scanLinks(rows, "SearchByOriginalURL")
}

// SearchByShortCode ищет ссылки, ShortCode которых содержит подстроку query (регистронезависимо)
func (d *DataBase) SearchByShortCode(ctx context.Context, search string) ([]*Link, error) {

	query := `SELECT id, short_code, original_url, access_count, created_at
	            FROM links
			   WHERE short_code ILIKE '%' || $1 || '%'
			   ORDER BY created_at DESC
			   LIMIT 100`

	rows, err := d.Pool.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка ссылок в SearchByShortCode: %w", err)
	}
	defer rows.Close()

	return scanLinks(rows, "SearchByShortCode")
}

// scanLinks вычитывает строки результата в срез ссылок
func scanLinks(rows pgx.Rows, caller string) ([]*Link, error) {

	links := make([]*Link, 0)
	for rows.Next() {
		var link Link
		err := rows.Scan(
			&link.ID,
			&link.ShortCode,
			&link.OriginalURL,
			&link.AccessCount,
			&link.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки списка ссылок в %s: %w", caller, err)
		}

		links = append(links, &link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по списку ссылок в %s: %w", caller, err)
	}

	return links, nil
}
