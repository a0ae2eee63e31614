// Package catalog keeps track of the generated sprites and the user settings
// in a SQLite database. It uses the pure-Go modernc.org/sqlite driver.
package catalog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tptassets/spritegen"
)

// timeLayout is fixed width so that timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned when the requested asset does not exist.
var ErrNotFound = errors.New("catalog: asset not found")

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Asset is one catalogued sprite.
type Asset struct {
	ID           string          `json:"id"`
	AssetType    string          `json:"asset_type"`
	Name         string          `json:"name"`
	Config       json.RawMessage `json:"config,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	FilePath     string          `json:"file_path,omitempty"`
	FileSize     int64           `json:"file_size,omitempty"`
	QualityScore *int            `json:"quality_score,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Filter narrows the assets returned by Assets.
type Filter struct {
	// Type matches the asset type exactly.
	Type string
	// Search matches a substring of the asset name.
	Search string
	// Limit caps the number of results. Zero means no limit.
	Limit int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("catalog: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("catalog: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("catalog: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS assets (
			id TEXT PRIMARY KEY,
			asset_type TEXT NOT NULL,
			name TEXT NOT NULL,
			config TEXT,
			metadata TEXT,
			file_path TEXT,
			file_size INTEGER,
			quality_score INTEGER,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_assets_type ON assets(asset_type);
		CREATE INDEX IF NOT EXISTS idx_assets_updated ON assets(updated_at DESC);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveAsset inserts or replaces the asset and returns its ID.
// A new ID is assigned when the asset has none, the creation time is kept when
// set and the update time is always refreshed.
func (s *Store) SaveAsset(a Asset) (string, error) {
	if a.AssetType == "" {
		return "", errors.New("catalog: missing asset type")
	}
	if a.Name == "" {
		return "", errors.New("catalog: missing asset name")
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	now := s.now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}

	var quality sql.NullInt64
	if a.QualityScore != nil {
		quality = sql.NullInt64{Int64: int64(*a.QualityScore), Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO assets
		 (id, asset_type, name, config, metadata, file_path, file_size, quality_score, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.AssetType,
		a.Name,
		nullString(string(a.Config)),
		nullString(string(a.Metadata)),
		nullString(a.FilePath),
		sql.NullInt64{Int64: a.FileSize, Valid: a.FileSize > 0},
		quality,
		a.CreatedAt.UTC().Format(timeLayout),
		now.Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("catalog: cannot save asset: %w", err)
	}
	return a.ID, nil
}

// Assets returns the assets matching the filter, most recently updated first.
func (s *Store) Assets(f Filter) ([]Asset, error) {
	query := `SELECT id, asset_type, name, config, metadata, file_path, file_size, quality_score, created_at, updated_at
		 FROM assets`

	var (
		conds []string
		args  []any
	)
	if f.Type != "" {
		conds = append(conds, "asset_type = ?")
		args = append(args, f.Type)
	}
	if f.Search != "" {
		conds = append(conds, "name LIKE ?")
		args = append(args, "%"+f.Search+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY updated_at DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: cannot query assets: %w", err)
	}
	defer rows.Close()

	var assets []Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: row iteration error: %w", err)
	}
	return assets, nil
}

// Asset retrieves a single asset by ID.
func (s *Store) Asset(id string) (Asset, error) {
	row := s.db.QueryRow(
		`SELECT id, asset_type, name, config, metadata, file_path, file_size, quality_score, created_at, updated_at
		 FROM assets WHERE id = ?`,
		id,
	)
	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Asset{}, ErrNotFound
	}
	return a, err
}

// DeleteAsset removes the asset with the given ID.
func (s *Store) DeleteAsset(id string) error {
	res, err := s.db.Exec("DELETE FROM assets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("catalog: cannot delete asset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("catalog: cannot delete asset: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Setting returns the value stored under key. The boolean reports whether the key exists.
func (s *Store) Setting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("catalog: cannot query setting: %w", err)
	}
	return value, true, nil
}

// SaveSetting stores value under key, replacing any previous value.
func (s *Store) SaveSetting(key, value string) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO settings (key, value, updated_at) VALUES (?, ?, ?)",
		key, value, s.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("catalog: cannot save setting: %w", err)
	}
	return nil
}

// FromDescriptor maps a generated sprite to a catalog entry of the given asset type.
// path and size describe the written file, if any.
func FromDescriptor(assetType string, d *spritegen.SpriteDescriptor, path string, size int64) (Asset, error) {
	cfg, err := json.Marshal(d.Config)
	if err != nil {
		return Asset{}, fmt.Errorf("catalog: cannot encode config: %w", err)
	}
	md, err := json.Marshal(d.Metadata)
	if err != nil {
		return Asset{}, fmt.Errorf("catalog: cannot encode metadata: %w", err)
	}
	return Asset{
		ID:        d.ID,
		AssetType: assetType,
		Name:      d.Name,
		Config:    cfg,
		Metadata:  md,
		FilePath:  path,
		FileSize:  size,
		CreatedAt: d.Metadata.Generated,
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(row scanner) (Asset, error) {
	var (
		a                   Asset
		cfg, md, path       sql.NullString
		size, quality       sql.NullInt64
		createdAt, updateAt string
	)
	if err := row.Scan(&a.ID, &a.AssetType, &a.Name, &cfg, &md, &path, &size, &quality, &createdAt, &updateAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, err
		}
		return a, fmt.Errorf("catalog: cannot scan row: %w", err)
	}

	if cfg.Valid && json.Valid([]byte(cfg.String)) {
		a.Config = json.RawMessage(cfg.String)
	}
	if md.Valid && json.Valid([]byte(md.String)) {
		a.Metadata = json.RawMessage(md.String)
	}
	a.FilePath = path.String
	a.FileSize = size.Int64
	if quality.Valid {
		q := int(quality.Int64)
		a.QualityScore = &q
	}
	a.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	a.UpdatedAt, _ = time.Parse(timeLayout, updateAt)

	return a, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
