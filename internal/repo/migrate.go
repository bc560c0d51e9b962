package repo

import (
	"fmt"

	"gorm.io/gorm"

	"hair-scanner-api/internal/feature/questionnaire"
	"hair-scanner-api/internal/feature/user"
)

// Migrate 建表 + lower(email) 函数唯一索引（AutoMigrate 建不了表达式索引）
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&user.UserModel{}, &questionnaire.QuestionnaireModel{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return ensureEmailIndex(db)
}

func ensureEmailIndex(db *gorm.DB) error {
	if db.Migrator().HasIndex(&user.UserModel{}, user.EmailIndex) {
		return nil
	}
	expr := "(lower(email))"
	if db.Dialector.Name() == "mysql" {
		expr = "((lower(email)))" // MySQL 8.0.13+ functional key part
	}
	if err := db.Exec("CREATE UNIQUE INDEX " + user.EmailIndex + " ON users " + expr).Error; err != nil {
		return fmt.Errorf("create %s: %w", user.EmailIndex, err)
	}
	return nil
}
