package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/comissio/commission-service/internal/config"
)

func MustInitDB(cfg *config.CommissionConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.CommissionDB.Dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}
	return db
}
