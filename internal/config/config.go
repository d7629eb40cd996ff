package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// BackendDB 使用关系型数据库持久化
	BackendDB = "db"
	// BackendFile 使用 JSON 文件持久化
	BackendFile = "file"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr     string
	Port           string
	StorageBackend string
	DatabasePath   string
	DataDir        string
	SessionSecret  string
	GinMode        string
	AdminPassword  string
	AdminEmail     string
	ResendAPIKey   string
	FromEmail      string
	CloudinaryURL  string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	backend := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_BACKEND")))
	if backend != BackendFile {
		backend = BackendDB
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "website.db"
	}

	dataDir := strings.TrimSpace(os.Getenv("DATA_DIR"))
	if dataDir == "" {
		dataDir = "data"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "website-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	adminPassword := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD"))
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	adminEmail := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))

	return AppConfig{
		ListenAddr:     listenAddr,
		Port:           port,
		StorageBackend: backend,
		DatabasePath:   databasePath,
		DataDir:        dataDir,
		SessionSecret:  sessionSecret,
		GinMode:        ginMode,
		AdminPassword:  adminPassword,
		AdminEmail:     adminEmail,
		ResendAPIKey:   strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
		FromEmail:      strings.TrimSpace(os.Getenv("RESEND_FROM_EMAIL")),
		CloudinaryURL:  strings.TrimSpace(os.Getenv("CLOUDINARY_URL")),
	}
}
