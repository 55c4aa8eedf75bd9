package configs

import (
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the local sqlite file that holds session tokens.
func ConnectionDB(source string) error {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(&entity.Session{})
}
