package db

import (
	"database/sql"
)

// MigrateUp creates the articles table and its indexes if they do not
// exist. Feed sources live in the YAML sources file, not in the database,
// so articles carry the source name denormalized.
//
// url deliberately has NO unique constraint: deduplication is enforced by
// the ingest pipeline before insert, and a constraint violation would turn
// an expected duplicate into an error path. The index only serves the
// existence probe.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id           BIGSERIAL PRIMARY KEY,
    source       TEXT NOT NULL,
    url          TEXT NOT NULL,
    title        TEXT NOT NULL,
    summary      TEXT,
    content_raw  TEXT,
    published_at TIMESTAMPTZ,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// 重複チェック用(ExistsByURL)
		`CREATE INDEX IF NOT EXISTS idx_articles_url ON articles(url)`,
		// 新着順の読み出し用
		`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
