package service

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with in-memory fakes).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// hoje is the ledger date for "now". All daily grouping keys off this string.
func hoje() string { return time.Now().Format("2006-01-02") }

func horaAgora() string { return time.Now().Format("15:04") }
