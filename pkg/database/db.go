package database

import (
	"Tweeter/config"
	"Tweeter/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(conf.Database)
	if err != nil {
		return nil, err
	}

	gormConf := &gorm.Config{
		// 唯一索引冲突统一翻译为 gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	if conf.Debug() {
		gormConf.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		log.L.Error("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
		return nil, err
	}

	if conf.Database.Driver == config.DriverSQLite {
		// sqlite 只允许单写连接
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
	}

	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db, nil
}

func Dialector(conf *config.Database) (gorm.Dialector, error) {
	switch conf.Driver {
	case config.DriverMySQL:
		return mysql.Open(conf.Dsn()), nil
	case config.DriverSQLite:
		return sqlite.Open(conf.Dsn()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}
