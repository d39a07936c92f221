package infra

import (
	"strings"

	"github.com/misterzhermit/URSTORE/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection and migrates the schema. The driver is
// chosen from the DSN: a postgres:// URL connects via pgx, anything else is
// treated as a sqlite file path (single-operator local mode).
func NewDatabase(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if dialector.Name() == "postgres" {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	} else {
		// sqlite allows a single writer; extra connections only add lock churn
		sqlDB.SetMaxOpenConns(1)
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations applies the schema via AutoMigrate. Also used by tooling that
// opens its own connection (seeduser).
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Empresa{},
		&model.Usuario{},
		&model.Produto{},
		&model.ItemColeta{},
		&model.Divergencia{},
		&model.Pedido{},
		&model.PedidoItem{},
		&model.Despesa{},
		&model.Perda{},
		&model.FechamentoDia{},
	)
}
