// Package store persists projects and their generated articles in SQLite.
// Articles keep the markup exactly as generated; plain views are derived on
// demand and never written back.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a project or article does not exist.
var ErrNotFound = errors.New("not found")

// Kind distinguishes blog articles from e-commerce category descriptions.
type Kind string

const (
	KindBlog     Kind = "blog"
	KindCategory Kind = "category"
)

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindBlog, KindCategory:
		return k, nil
	case "":
		return KindBlog, nil
	default:
		return "", fmt.Errorf("unknown article kind %q (want blog or category)", s)
	}
}

// Project groups articles.
type Project struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Article is one generated piece of content.
type Article struct {
	ID        string
	ProjectID string
	Kind      Kind
	Title     string
	Markup    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store manages persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// Open initializes or connects to the database at path and applies
// migrations. A nil logger disables logging.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	s := &Store{db: db, path: path, logger: logger}
	if err := s.applyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Debug("opened store", zap.String("path", path))
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateProject inserts a new project.
func (s *Store) CreateProject(ctx context.Context, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("project name is required")
	}
	p := &Project{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO projects (id, name, created_at) VALUES (?, ?, ?)",
		p.ID, p.Name, formatTime(p.CreatedAt),
	); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

// GetProject returns the project with the given id.
func (s *Store) GetProject(ctx context.Context, id string) (*Project, error) {
	var (
		p       Project
		created string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM projects WHERE id = ?", id,
	).Scan(&p.ID, &p.Name, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query project: %w", err)
	}
	p.CreatedAt = parseTime(created)
	return &p, nil
}

// ListProjects returns all projects, oldest first.
func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, created_at FROM projects ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var (
			p       Project
			created string
		)
		if err := rows.Scan(&p.ID, &p.Name, &created); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.CreatedAt = parseTime(created)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// SaveArticle inserts a (when a.ID is empty) or updates an article. The
// markup is stored verbatim.
func (s *Store) SaveArticle(ctx context.Context, a *Article) error {
	if a == nil {
		return errors.New("article is nil")
	}
	kind, err := ParseKind(string(a.Kind))
	if err != nil {
		return err
	}
	a.Kind = kind
	now := time.Now().UTC()

	if a.ID == "" {
		a.ID = uuid.NewString()
		a.CreatedAt = now
		a.UpdatedAt = now
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO articles (id, project_id, kind, title, markup, created_at, updated_at)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.ProjectID, string(a.Kind), a.Title, a.Markup, formatTime(now), formatTime(now),
		); err != nil {
			a.ID = ""
			return fmt.Errorf("insert article: %w", err)
		}
		return nil
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE articles SET kind = ?, title = ?, markup = ?, updated_at = ? WHERE id = ?`,
		string(a.Kind), a.Title, a.Markup, formatTime(now), a.ID,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("article %s: %w", a.ID, ErrNotFound)
	}
	a.UpdatedAt = now
	return nil
}

const articleColumns = "id, project_id, kind, title, markup, created_at, updated_at"

func scanArticle(row interface{ Scan(...any) error }) (*Article, error) {
	var (
		a                Article
		kind             string
		created, updated string
	)
	if err := row.Scan(&a.ID, &a.ProjectID, &kind, &a.Title, &a.Markup, &created, &updated); err != nil {
		return nil, err
	}
	a.Kind = Kind(kind)
	a.CreatedAt = parseTime(created)
	a.UpdatedAt = parseTime(updated)
	return &a, nil
}

// GetArticle returns the article with the given id.
func (s *Store) GetArticle(ctx context.Context, id string) (*Article, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = ?", id)
	a, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query article: %w", err)
	}
	return a, nil
}

// ListArticles returns a project's articles, oldest first.
func (s *Store) ListArticles(ctx context.Context, projectID string) ([]Article, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE project_id = ? ORDER BY created_at, id", projectID)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

// DeleteArticle removes an article.
func (s *Store) DeleteArticle(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("article %s: %w", id, ErrNotFound)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
