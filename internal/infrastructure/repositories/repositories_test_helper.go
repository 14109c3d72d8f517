package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		name TEXT,
		password_hash TEXT,
		role TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createShopTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE shops (
		id TEXT PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		tagline TEXT,
		description TEXT,
		primary_color TEXT,
		secondary_color TEXT,
		accent_color TEXT,
		background_color TEXT,
		text_color TEXT,
		heading_color TEXT,
		heading_font TEXT,
		body_font TEXT,
		nav_background_color TEXT,
		nav_text_color TEXT,
		hero_style TEXT,
		hero_height TEXT,
		hero_media_url TEXT,
		background_pattern TEXT,
		background_gradient TEXT,
		background_image_url TEXT,
		background_opacity REAL,
		app_background_pattern TEXT,
		app_background_gradient TEXT,
		app_background_image_url TEXT,
		app_background_opacity REAL,
		is_public BOOLEAN,
		accepting_orders BOOLEAN,
		city TEXT,
		region TEXT,
		pickup_instructions TEXT,
		created_by TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createDesignTokenTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE shop_design_tokens (
		id TEXT PRIMARY KEY,
		shop_id TEXT NOT NULL,
		tokens TEXT NOT NULL DEFAULT '{}',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_by TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE UNIQUE INDEX idx_tokens_shop_active
		ON shop_design_tokens (shop_id) WHERE is_active;`)
}

func createProductTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		shop_id TEXT NOT NULL,
		category_id TEXT,
		name TEXT NOT NULL,
		description TEXT,
		price_cents INTEGER,
		image_url TEXT,
		is_featured BOOLEAN,
		is_available BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE categories (
		id TEXT PRIMARY KEY,
		shop_id TEXT NOT NULL,
		name TEXT NOT NULL,
		position INTEGER,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createShopHoursTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE shop_hours (
		id TEXT PRIMARY KEY,
		shop_id TEXT NOT NULL,
		day_of_week INTEGER NOT NULL,
		opens_at TEXT,
		closes_at TEXT,
		is_closed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (shop_id, day_of_week)
	);`)
}
