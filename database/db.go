package database

import (
	"context"
	"database/sql"
	"fmt"
	"giftingstudio_server/config"
	"log"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DB wraps the bun database handle with additional functionality
type DB struct {
	*bun.DB
}

var instance *DB

// Connect establishes a connection to the database using centralized configuration
func Connect() (*DB, error) {
	logger := config.GetLogger()
	cfg := config.GetConfig()
	dbCfg := cfg.Database

	connector := pgdriver.NewConnector(
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", dbCfg.Host, dbCfg.Port)),
		pgdriver.WithUser(dbCfg.User),
		pgdriver.WithPassword(dbCfg.Password),
		pgdriver.WithDatabase(dbCfg.Name),
		pgdriver.WithInsecure(true),
		pgdriver.WithReadTimeout(dbCfg.ReadTimeout),
		pgdriver.WithWriteTimeout(dbCfg.WriteTimeout),
	)

	sqldb := sql.OpenDB(connector)
	sqldb.SetMaxOpenConns(dbCfg.MaxConns)
	sqldb.SetMaxIdleConns(dbCfg.MinConns)
	sqldb.SetConnMaxLifetime(dbCfg.MaxLifetime)
	sqldb.SetConnMaxIdleTime(dbCfg.MaxIdleTime)

	db := bun.NewDB(sqldb, pgdialect.New())

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to database successfully")

	return &DB{db}, nil
}

// Initialize sets up the global database instance using centralized configuration
func Initialize() error {
	db, err := Connect()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	instance = db
	return nil
}

// GetInstance returns the global database instance
// This is the primary way to access the database throughout the application
func GetInstance() *DB {
	if instance == nil {
		log.Fatal("Database instance is not initialized. Call Initialize() first.")
	}
	return instance
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// CloseInstance closes the global database instance
func CloseInstance() error {
	if instance != nil {
		return instance.Close()
	}
	return nil
}

// Health checks the database connection health
func (db *DB) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

// GetStats returns connection pool statistics for monitoring
func (db *DB) GetStats() sql.DBStats {
	return db.DB.DB.Stats()
}
