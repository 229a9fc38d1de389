package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/cardfolio/cardfolio/internal/config"
)

// Open initializes and returns the shared connection pool. Every handler
// issues its statements through this one pool; callers queue for a free
// connection when all of them are checked out.
func Open(cfg config.DBConfig) (*sql.DB, error) {
	// parseTime=true so DATETIME columns scan into time.Time.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:3306)/%s?parseTime=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.PoolSize)
	db.SetMaxIdleConns(cfg.PoolSize)
	db.SetConnMaxLifetime(5 * time.Minute)

	// sql.Open alone does not dial; ping to verify the database is reachable.
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
