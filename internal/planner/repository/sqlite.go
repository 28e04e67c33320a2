package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"house-planner/internal/planner/models"
)

// ============================================================
// SQLite Repository
// ============================================================

var ErrNotFound = errors.New("not found")

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init запускает миграции.
func (r *Repository) Init(ctx context.Context, migrationsPath string) error {
	data, err := os.ReadFile(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

// Insert сохраняет результат генерации и возвращает его id.
func (r *Repository) Insert(ctx context.Context, req *models.Request) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO requests
        (bhk, sqft, facing, pincode, rate, cost_estimate, style, chat_history, final_prompt, model_file, plan_text, plan_file)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `,
		req.BHK, req.Sqft, req.Facing, req.Pincode, req.Rate, req.CostEstimate,
		req.Style, req.ChatHistory, req.FinalPrompt, req.ModelFile, req.PlanText, req.PlanFile,
	)
	if err != nil {
		return 0, fmt.Errorf("insert request: %w", err)
	}
	return res.LastInsertId()
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Request, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, bhk, sqft, facing, pincode, rate, cost_estimate, style, chat_history, final_prompt, model_file, plan_text, plan_file, created_at
        FROM requests
        WHERE id = ?
    `, id)

	var req models.Request
	if err := scanRequest(row.Scan, &req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// ListRecent возвращает последние запросы, новые первыми.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]models.Request, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, bhk, sqft, facing, pincode, rate, cost_estimate, style, chat_history, final_prompt, model_file, plan_text, plan_file, created_at
        FROM requests
        ORDER BY created_at DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Request
	for rows.Next() {
		var req models.Request
		if err := scanRequest(rows.Scan, &req); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func scanRequest(scan func(...any) error, req *models.Request) error {
	return scan(
		&req.ID, &req.BHK, &req.Sqft, &req.Facing, &req.Pincode, &req.Rate,
		&req.CostEstimate, &req.Style, &req.ChatHistory, &req.FinalPrompt,
		&req.ModelFile, &req.PlanText, &req.PlanFile, &req.CreatedAt,
	)
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
