package db

import (
	"context"
	"fmt"
)

const (
	linksSchema = `CREATE TABLE IF NOT EXISTS links (
			           id UUID PRIMARY KEY,
		       short_code VARCHAR(64) UNIQUE NOT NULL,
		     original_url TEXT NOT NULL,
		     access_count INT NOT NULL DEFAULT 0,
		       created_at TIMESTAMPTZ NOT NULL DEFAULT NOW());

			 CREATE INDEX IF NOT EXISTS idx_links_short_code ON links(short_code);
		     CREATE INDEX IF NOT EXISTS idx_links_created_at ON links(created_at);`
)

// Migration создаёт таблицу links, если она ещё не существует, добавляет индексы
func (d *DataBase) Migration(ctx context.Context) error {

	// создаём таблицу links с индексами
	query := linksSchema
	_, err := d.Pool.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("ошибка создания таблицы links: %w", err)
	}

	return nil
}
