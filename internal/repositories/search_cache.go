package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// CacheEntry is one persisted title resolution.
type CacheEntry struct {
	Title     string
	MediaType string
	TraktID   int64
	CreatedAt time.Time
}

// SearchCacheRepository persists title → Trakt id resolutions in SQLite.
//
// The table is loaded wholesale into memory at the start of a run and new
// entries are flushed back in a single transaction once resolution finishes,
// before any batch submission begins.
type SearchCacheRepository struct {
	db *sql.DB
}

// NewSearchCacheRepository creates a new [SearchCacheRepository] with the given database connection
func NewSearchCacheRepository(db *sql.DB) *SearchCacheRepository {
	return &SearchCacheRepository{db: db}
}

// LoadAll returns every cached title → id mapping.
func (r *SearchCacheRepository) LoadAll() (map[string]int64, error) {
	rows, err := r.db.Query("SELECT title, trakt_id FROM search_cache")
	if err != nil {
		return nil, fmt.Errorf("failed to query search cache: %w", err)
	}
	defer rows.Close()

	cache := make(map[string]int64)
	for rows.Next() {
		var (
			title   string
			traktID int64
		)
		if err := rows.Scan(&title, &traktID); err != nil {
			return nil, fmt.Errorf("failed to scan cache entry: %w", err)
		}
		cache[title] = traktID
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return cache, nil
}

// SaveAll upserts the given entries in one transaction.
// An empty slice is a no-op.
func (r *SearchCacheRepository) SaveAll(entries []CacheEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO search_cache (title, media_type, trakt_id) VALUES (?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET media_type = excluded.media_type, trakt_id = excluded.trakt_id
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		if _, err := stmt.Exec(entry.Title, entry.MediaType, entry.TraktID); err != nil {
			return fmt.Errorf("failed to upsert cache entry %q: %w", entry.Title, err)
		}
	}

	return tx.Commit()
}

// List returns all cache entries ordered by insertion time, newest last.
func (r *SearchCacheRepository) List() ([]CacheEntry, error) {
	rows, err := r.db.Query("SELECT title, media_type, trakt_id, created_at FROM search_cache ORDER BY created_at ASC, title ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query search cache: %w", err)
	}
	defer rows.Close()

	var entries []CacheEntry
	for rows.Next() {
		var entry CacheEntry
		if err := rows.Scan(&entry.Title, &entry.MediaType, &entry.TraktID, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cache entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}

// Delete removes a single cached title. Returns the number of rows removed.
func (r *SearchCacheRepository) Delete(title string) (int64, error) {
	result, err := r.db.Exec("DELETE FROM search_cache WHERE title = ?", title)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cache entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}

// Clear removes every cached entry. Returns the number of rows removed.
func (r *SearchCacheRepository) Clear() (int64, error) {
	result, err := r.db.Exec("DELETE FROM search_cache")
	if err != nil {
		return 0, fmt.Errorf("failed to clear search cache: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}
