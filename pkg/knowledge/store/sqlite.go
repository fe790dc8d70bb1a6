package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/easyops/qamatch-go/pkg/knowledge"
)

// SQLiteStore SQLite 语料存储
//
// 基于 SQLite 的持久化语料存储，适用于生产环境。示例按
// position 列保持插入顺序，Save 整表替换。
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore 创建 SQLite 语料存储
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, ErrPathRequired
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return store, nil
}

// initSchema 初始化表结构
func (s *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS examples (
		position INTEGER PRIMARY KEY,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		weight REAL NOT NULL DEFAULT 1.0,
		metadata TEXT
	);
	`

	_, err := s.db.Exec(query)
	return err
}

// Load 按插入顺序加载全部训练示例
func (s *SQLiteStore) Load(ctx context.Context) ([]knowledge.Example, error) {
	query := `SELECT input, output, weight, metadata FROM examples ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var examples []knowledge.Example
	for rows.Next() {
		var input, output string
		var weight float64
		var metadata sql.NullString

		if err := rows.Scan(&input, &output, &weight, &metadata); err != nil {
			return nil, err
		}

		ex := knowledge.Example{Input: input, Weight: float32(weight)}
		if err := json.Unmarshal([]byte(output), &ex.Output); err != nil {
			return nil, fmt.Errorf("failed to unmarshal output: %w", err)
		}
		if metadata.Valid && metadata.String != "" {
			if err := json.Unmarshal([]byte(metadata.String), &ex.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
			}
		}

		examples = append(examples, ex)
	}

	return examples, rows.Err()
}

// Save 整体保存训练示例
//
// 在单个事务内清空旧内容并重写，避免读者看到部分状态。
func (s *SQLiteStore) Save(ctx context.Context, examples []knowledge.Example) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM examples`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO examples (position, input, output, weight, metadata) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, ex := range examples {
		output, err := json.Marshal(ex.Output)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}

		var metadata interface{}
		if ex.Metadata != nil {
			data, err := json.Marshal(ex.Metadata)
			if err != nil {
				return fmt.Errorf("failed to marshal metadata: %w", err)
			}
			metadata = string(data)
		}

		if _, err := stmt.ExecContext(ctx, i, ex.Input, string(output), float64(ex.Weight), metadata); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Close 关闭数据库连接
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// 编译时接口检查
var _ Store = (*SQLiteStore)(nil)
