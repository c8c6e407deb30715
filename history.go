package main // import "github.com/tonobo/snake-top"

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const gamesTable = "snake_games"

type GameRecord struct {
	GameID    string     `json:"game_id"`
	SnakeID   string     `json:"snake_id"`
	Ruleset   string     `json:"ruleset"`
	Turns     int        `json:"turns"`
	Result    string     `json:"result"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// History keeps a record of played games, one row per game and snake. It is bookkeeping only; move
// selection never reads from it.
type History struct {
	db *sql.DB
}

func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	h := &History{db: db}
	if err := h.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

func (h *History) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + gamesTable + ` (
		game_id TEXT NOT NULL,
		snake_id TEXT NOT NULL,
		ruleset TEXT NOT NULL DEFAULT '',
		turns INTEGER NOT NULL DEFAULT 0,
		result TEXT NOT NULL DEFAULT '',
		started_at INTEGER NOT NULL,
		ended_at INTEGER,
		PRIMARY KEY (game_id, snake_id)
	);`

	if _, err := h.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	return nil
}

func (h *History) RecordStart(gameID, snakeID, ruleset string) error {
	const insertSQL = `
	INSERT OR REPLACE INTO ` + gamesTable + ` (game_id, snake_id, ruleset, started_at)
	VALUES (?, ?, ?, ?);`

	if _, err := h.db.Exec(insertSQL, gameID, snakeID, ruleset, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to record start of %s: %w", gameID, err)
	}
	return nil
}

// RecordEnd closes a game. A game whose start was missed is inserted.
func (h *History) RecordEnd(gameID, snakeID string, turns int, result string) error {
	const upsertSQL = `
	INSERT INTO ` + gamesTable + ` (game_id, snake_id, turns, result, started_at, ended_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(game_id, snake_id) DO UPDATE SET turns = excluded.turns, result = excluded.result, ended_at = excluded.ended_at;`

	now := time.Now().Unix()
	if _, err := h.db.Exec(upsertSQL, gameID, snakeID, turns, result, now, now); err != nil {
		return fmt.Errorf("failed to record end of %s: %w", gameID, err)
	}
	return nil
}

// Recent returns up to limit games, newest first.
func (h *History) Recent(limit int) ([]GameRecord, error) {
	const selectSQL = `
	SELECT game_id, snake_id, ruleset, turns, result, started_at, ended_at
	FROM ` + gamesTable + `
	ORDER BY started_at DESC, rowid DESC
	LIMIT ?;`

	rows, err := h.db.Query(selectSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	records := []GameRecord{}
	for rows.Next() {
		var (
			rec     GameRecord
			started int64
			ended   sql.NullInt64
		)
		if err := rows.Scan(&rec.GameID, &rec.SnakeID, &rec.Ruleset, &rec.Turns, &rec.Result, &started, &ended); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		rec.StartedAt = time.Unix(started, 0)
		if ended.Valid {
			t := time.Unix(ended.Int64, 0)
			rec.EndedAt = &t
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return records, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

// GameResult classifies the end of a game from the final board.
func GameResult(r *Request) string {
	switch {
	case r.Alive():
		return "won"
	case r.Board == nil || len(r.Board.Snakes) == 0:
		return "draw"
	}
	return "lost"
}
