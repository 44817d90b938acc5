// Package mock provides in-memory infrastructure for integration tests.
package mock

import (
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finsight/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// NewDb returns a shared in-memory SQLite database with the record schema
// migrated. Scenarios reuse the connection and call ClearDB between runs.
func NewDb() *gorm.DB {
	dbOnce.Do(func() {
		dbConn = openDbConn()
	})
	return dbConn
}

func openDbConn() *gorm.DB {
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	sqlDB, err := conn.DB()
	if err != nil {
		panic(err)
	}
	// A single connection keeps the shared in-memory database alive.
	sqlDB.SetMaxOpenConns(1)

	if err := conn.AutoMigrate(&model.IncomeModel{}, &model.ExpenseModel{}); err != nil {
		panic("failed to migrate database: " + err.Error())
	}

	return conn
}

// ClearDB removes all rows so every scenario starts from an empty ledger.
func ClearDB(db *gorm.DB) error {
	if err := db.Exec("DELETE FROM incomes").Error; err != nil {
		return err
	}
	return db.Exec("DELETE FROM expenses").Error
}
