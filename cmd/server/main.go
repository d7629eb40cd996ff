package main

import (
	"log"

	"github.com/buxinhealth/website/internal/config"
	"github.com/buxinhealth/website/internal/db"
	"github.com/buxinhealth/website/internal/handler"
	"github.com/buxinhealth/website/internal/router"
	"github.com/buxinhealth/website/internal/service"
	"github.com/buxinhealth/website/internal/store"
	"github.com/buxinhealth/website/internal/store/filestore"
	"github.com/buxinhealth/website/internal/store/gormstore"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// .env 不存在时静默跳过
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	var (
		content     store.ContentStore
		submissions store.SubmissionStore
	)
	switch cfg.StorageBackend {
	case config.BackendFile:
		fs, err := filestore.New(cfg.DataDir, cfg.FromEmail)
		if err != nil {
			log.Fatalf("failed to initialize file store: %v", err)
		}
		content, submissions = fs, fs
		log.Printf("storage backend: json files in %s", cfg.DataDir)
	default:
		if err := db.Init(cfg.DatabasePath); err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		gs := gormstore.New(db.DB, cfg.FromEmail)
		content, submissions = gs, gs
		log.Printf("storage backend: sqlite at %s", cfg.DatabasePath)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	mailer := service.NewMailer(cfg.ResendAPIKey, cfg.FromEmail)
	if !mailer.Enabled() {
		log.Print("RESEND_API_KEY not set, emails will be logged instead of sent")
	}
	dispatcher := service.NewDispatcher(mailer, content, cfg.AdminEmail)

	media, err := service.NewMediaService(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("failed to configure media service: %v", err)
	}
	if !media.Enabled() {
		log.Print("CLOUDINARY_URL not set, file uploads are disabled")
	}

	api := handler.NewAPI(content, submissions, mailer, dispatcher, media, string(passwordHash))

	r := router.SetupRouter(api, cfg.SessionSecret)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
