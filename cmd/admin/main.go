package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hair-scanner-api/internal/core/config"
	"hair-scanner-api/internal/core/database"
	"hair-scanner-api/internal/core/logger"
	"hair-scanner-api/internal/repo"
)

const usage = `usage: admin <command> [flags]

commands:
  migrate                   create / update tables and the lower(email) index
  delete-user -email ADDR   remove a user and their questionnaire
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(logger.Options{
		Level:       cfg.Log.Level,
		JSON:        cfg.Log.JSON,
		Development: !cfg.Log.JSON,
		Service:     cfg.App.Name + "-admin",
	})
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       2,
		MaxIdleConns:       1,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Logger:             log,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch cmd := os.Args[1]; cmd {
	case "migrate":
		if err := repo.Migrate(db.WithContext(ctx)); err != nil {
			log.Fatal("migrate failed", zap.Error(err))
		}
		log.Info("migrate done")
	case "delete-user":
		fs := flag.NewFlagSet("delete-user", flag.ExitOnError)
		email := fs.String("email", "", "email of the user to delete (case-insensitive)")
		_ = fs.Parse(os.Args[2:])
		if *email == "" {
			fs.Usage()
			os.Exit(2)
		}
		id, err := deleteUser(ctx, db, *email)
		if err != nil {
			log.Fatal("delete-user failed", zap.String("email", *email), zap.Error(err))
		}
		log.Info("user deleted", zap.String("user_id", id))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
}

var errUserNotFound = errors.New("user not found")

// deleteUser 同一事务内删画像再删用户；已签发的 token 会在守卫回查时失效
func deleteUser(ctx context.Context, db *gorm.DB, email string) (string, error) {
	var id string
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repo.NewUserRepo(tx)
		u, err := users.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if u == nil {
			return errUserNotFound
		}
		if err := repo.NewQuestionnaireRepo(tx).DeleteByUserID(ctx, u.ID); err != nil {
			return err
		}
		id = u.ID
		return users.Delete(ctx, u.ID)
	})
	return id, err
}
