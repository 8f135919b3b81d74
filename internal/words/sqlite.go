// internal/words/sqlite.go
//
// SQLite dictionary source.
// A dictionary database carries two single-column tables:
//
//	CREATE TABLE answers (word TEXT NOT NULL);
//	CREATE TABLE allowed (word TEXT NOT NULL);
//
// The file is opened read-only; the game never writes to it.

package words

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Dictionary table names.
const (
	TableAnswers = "answers"
	TableAllowed = "allowed"
)

// openDB opens an existing SQLite file read-only with a busy timeout.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	// sql.Open is lazy; surface a missing or corrupt file here.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// LoadSQLite reads every word from table in rowid order.
// table must be TableAnswers or TableAllowed.
func LoadSQLite(ctx context.Context, path, table string) ([]game.Word, error) {
	if table != TableAnswers && table != TableAllowed {
		return nil, fmt.Errorf("words: unknown dictionary table %q", table)
	}
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT word FROM `+table+` ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query %s.%s: %w", path, table, err)
	}
	defer rows.Close()

	var out []game.Word
	n := 0
	for rows.Next() {
		n++
		var s sql.NullString
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan %s.%s row %d: %w", path, table, n, err)
		}
		if !s.Valid {
			return nil, fmt.Errorf("%s.%s row %d: NULL word: %w", path, table, n, game.ErrWrongLength)
		}
		w, err := game.ParseWord(s.String)
		if err != nil {
			return nil, fmt.Errorf("%s.%s row %d: %q: %w", path, table, n, s.String, err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s.%s: %w", path, table, err)
	}
	log.Debug().Str("db", path).Str("table", table).Int("words", len(out)).Msg("dictionary table read")
	return out, nil
}
