package postgres

import (
	"log"

	"github.com/solidtrack/timelock-service/internal/config"
	"github.com/solidtrack/timelock-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.TimelockConfig) *gorm.DB {
	dsn := cfg.TimelockDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.OrganizationModel{},
		&models.MemberModel{},
		&models.ProjectModel{},
		&models.ProjectMemberModel{},
		&models.TimeEntryModel{},
		&models.UnlockRequestModel{},
		&models.AuditModel{},
	)

	return db
}
