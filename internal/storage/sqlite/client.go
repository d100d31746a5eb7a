package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/aurora-assist/backend/internal/storage/models"
	"github.com/aurora-assist/backend/pkg/logger"
)

// Client is a best-effort history log for questions and raw feedback. The
// in-memory feedback aggregator stays authoritative; losing this database
// loses only the audit trail.
type Client struct {
	db *sql.DB
}

func NewClient(dbPath string) (*Client, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec("PRAGMA journal_mode = WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	logger.Info("SQLite client initialized", zap.String("path", dbPath))

	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS question_history (
		id TEXT PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT,
		in_domain INTEGER NOT NULL,
		confidence REAL,
		status TEXT NOT NULL,
		latency_ms INTEGER,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_status ON question_history(status);
	CREATE INDEX IF NOT EXISTS idx_history_created ON question_history(created_at);

	CREATE TABLE IF NOT EXISTS feedback_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request_id TEXT,
		question TEXT NOT NULL,
		answer TEXT,
		vote TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_feedback_vote ON feedback_log(vote);
	CREATE INDEX IF NOT EXISTS idx_feedback_created ON feedback_log(created_at);
	`

	_, err := c.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("Database schema initialized")
	return nil
}

func (c *Client) InsertQuestionRecord(record *models.QuestionRecord) error {
	inDomain := 0
	if record.InDomain {
		inDomain = 1
	}

	_, err := c.db.Exec(`
		INSERT INTO question_history (id, question, answer, in_domain, confidence, status, latency_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Question, record.Answer, inDomain,
		record.Confidence, record.Status, record.LatencyMS,
		record.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert question record: %w", err)
	}
	return nil
}

func (c *Client) InsertFeedbackRecord(record *models.FeedbackRecord) error {
	_, err := c.db.Exec(`
		INSERT INTO feedback_log (request_id, question, answer, vote, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		record.RequestID, record.Question, record.Answer, record.Vote,
		record.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert feedback record: %w", err)
	}
	return nil
}

func (c *Client) RecentQuestions(limit int) ([]models.QuestionRecord, error) {
	rows, err := c.db.Query(`
		SELECT id, question, answer, in_domain, confidence, status, latency_ms, created_at
		FROM question_history ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query question history: %w", err)
	}
	defer rows.Close()

	var records []models.QuestionRecord
	for rows.Next() {
		var r models.QuestionRecord
		var inDomain int
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Question, &r.Answer, &inDomain, &r.Confidence, &r.Status, &r.LatencyMS, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan question record: %w", err)
		}
		r.InDomain = inDomain == 1
		r.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, r)
	}
	return records, rows.Err()
}
