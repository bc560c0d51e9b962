package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
)

var ErrUnsupportedDriver = errors.New("unsupported db driver")

type Opts struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
	Logger             *zap.Logger
}

func NewGorm(o Opts) (*gorm.DB, error) {
	l := o.Logger
	if l == nil {
		l = zap.NewNop()
	}
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres":
		dial = postgres.Open(o.DSN)
	case "mysql":
		dsn := normalizeMySQLDSN(o.DSN, o.Username, o.Password)
		l.Info("mysql dsn", zap.String("dsn", maskDSN(dsn)))
		dial = mysql.Open(dsn)
	case "sqlite":
		// 本地开发用；:memory: 库随连接销毁，必须单连接且常驻
		dial = sqlite.Open(o.DSN)
		if o.DSN == ":memory:" {
			o.MaxOpenConns, o.MaxIdleConns, o.ConnMaxLifetimeMin = 1, 1, 0
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, o.Driver)
	}
	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Default.LogMode(lvl),
		TranslateError: true, // 唯一冲突 → gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)
	db = db.
		Session(&gorm.Session{
			PrepareStmt:            true, // 预编译缓存，提高 QPS
			SkipDefaultTransaction: true, // 只在需要时手动开 Tx
		})
	return db, nil
}

// Ping 健康检查：SELECT 1
func Ping(ctx context.Context, db *gorm.DB) error {
	var one int
	return db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error
}

func maskDSN(dsn string) string {
	masked := dsn
	if at := strings.Index(masked, "@"); at > 0 {
		if colon := strings.Index(masked[:at], ":"); colon > 0 {
			masked = masked[:colon+1] + "****" + masked[at:]
		}
	}
	return masked
}

// normalizeMySQLDSN 把 jdbc:mysql:// / mysql:// URL 转成 go-sql-driver 的 DSN；
// 已经是 user:pass@tcp(...) 形式的原样返回
func normalizeMySQLDSN(input, userOverride, passOverride string) string {
	in := strings.TrimPrefix(strings.TrimSpace(input), "jdbc:")
	if !strings.HasPrefix(in, "mysql://") {
		return strings.TrimSpace(input)
	}
	u, err := url.Parse(in)
	if err != nil {
		return in // 交给驱动报错
	}

	cfg := mysqldrv.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	cfg.ParseTime = true
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}

	q := u.Query()
	if v := q.Get("user"); v != "" {
		cfg.User = v
	}
	if v := q.Get("password"); v != "" {
		cfg.Passwd = v
	}
	if userOverride != "" {
		cfg.User = userOverride
	}
	if passOverride != "" {
		cfg.Passwd = passOverride
	}

	params := map[string]string{"charset": "utf8mb4"}
	if v := q.Get("characterEncoding"); v != "" {
		params["charset"] = v
	}
	if v := q.Get("charset"); v != "" {
		params["charset"] = v
	}
	switch strings.ToLower(q.Get("useSSL")) {
	case "":
	case "true", "1":
		cfg.TLSConfig = "true"
	case "skip-verify", "preferred":
		cfg.TLSConfig = strings.ToLower(q.Get("useSSL"))
	default:
		cfg.TLSConfig = "false"
	}
	if tz := q.Get("serverTimezone"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			cfg.Loc = loc
		}
	}
	cfg.Params = params
	return cfg.FormatDSN()
}
