package db

import (
	"fmt"
	"log"

	"github.com/linskybing/ticketboard/internal/config"
	"github.com/linskybing/ticketboard/internal/domain/bid"
	"github.com/linskybing/ticketboard/internal/domain/comment"
	"github.com/linskybing/ticketboard/internal/domain/community"
	"github.com/linskybing/ticketboard/internal/domain/gig"
	"github.com/linskybing/ticketboard/internal/domain/ticket"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// DSN builds the libpq connection string from config. The same string is
// used by gorm and by the change-feed listener.
func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)
}

func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

func Init() {
	var err error
	DB, err = Open(DSN())
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}
	log.Println("Database connected")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Migrate creates or updates the tables this service owns.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&ticket.Ticket{},
		&bid.Bid{},
		&comment.Comment{},
		&gig.Gig{},
		&community.Community{},
		&community.Post{},
		&community.Vote{},
	)
}
