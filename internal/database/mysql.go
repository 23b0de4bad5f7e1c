package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

// GormDB is the MySQL repository
type GormDB struct {
	db *gorm.DB
}

func NewGormDB(host, port, user, password, dbname string) (*GormDB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, password, host, port, dbname)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	// Test connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	gdb := NewGormDBFromDB(db)
	if err := gdb.InitSchema(); err != nil {
		return nil, fmt.Errorf("init mysql schema: %w", err)
	}
	if err := gdb.seed(); err != nil {
		return nil, err
	}
	return gdb, nil
}

// NewGormDBFromDB creates a GormDB wrapper from an existing gorm.DB instance
func NewGormDBFromDB(db *gorm.DB) *GormDB {
	return &GormDB{db: db}
}

func (gdb *GormDB) Close() error {
	sqlDB, err := gdb.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InitSchema creates tables using GORM AutoMigrate
func (gdb *GormDB) InitSchema() error {
	return gdb.db.AutoMigrate(
		&models.Property{},
		&models.Lead{},
		&models.Message{},
	)
}

// seed inserts the demo data into an empty properties table
func (gdb *GormDB) seed() error {
	var count int64
	if err := gdb.db.Model(&models.Property{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		properties := seedProperties()
		if err := tx.Create(&properties).Error; err != nil {
			return err
		}
		leads := seedLeads()
		return tx.Create(&leads).Error
	})
}

func (gdb *GormDB) Properties(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	err := gdb.db.WithContext(ctx).Order("seq ASC").Find(&properties).Error
	return properties, err
}

func (gdb *GormDB) Leads(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	err := gdb.db.WithContext(ctx).Order("seq ASC").Find(&leads).Error
	return leads, err
}

func (gdb *GormDB) Messages(ctx context.Context) ([]models.Message, error) {
	messages := []models.Message{}
	err := gdb.db.WithContext(ctx).Order("timestamp DESC").Find(&messages).Error
	return messages, err
}

func (gdb *GormDB) SaveMessage(ctx context.Context, m models.Message) error {
	return gdb.db.WithContext(ctx).Create(&m).Error
}
