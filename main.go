package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/phoneix12356/RenuHealthCare/internal/config"
	"github.com/phoneix12356/RenuHealthCare/internal/db"
	"github.com/phoneix12356/RenuHealthCare/internal/gelf"
	"github.com/phoneix12356/RenuHealthCare/internal/handler"
	"github.com/phoneix12356/RenuHealthCare/internal/letter"
	"github.com/phoneix12356/RenuHealthCare/internal/mailer"
	"github.com/phoneix12356/RenuHealthCare/internal/media"
	"github.com/phoneix12356/RenuHealthCare/internal/repository"
	"github.com/phoneix12356/RenuHealthCare/internal/router"
	"github.com/phoneix12356/RenuHealthCare/internal/service"
)

func main() {
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr, "renuhealthcare")
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer database.Close(ctx)
	log.Printf("Connected to MongoDB (database: %s)", cfg.MongoDatabase)

	store, err := media.NewCloudinaryStore(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("Failed to init Cloudinary: %v", err)
	}

	var mail mailer.Mailer
	if cfg.SendGridKey != "" {
		mail = mailer.NewSendGrid(cfg.SendGridKey, "Renu Sharma Healthcare", cfg.FromEmail)
	} else {
		log.Printf("Warning: SENDGRID_API_KEY not set, logging emails to stdout")
		mail = mailer.NewConsole()
	}

	// Repositories
	userRepo := repository.NewUserRepo(database)
	subRepo := repository.NewSubmissionRepo(database)
	offerRepo := repository.NewOfferLetterRepo(database)
	certRepo := repository.NewCertificateRepo(database)
	deptRepo := repository.NewDepartmentRepo(database)
	taskRepo := repository.NewTaskRepo(database)
	projectRepo := repository.NewProjectRepo(database)

	// Services
	letterSvc := service.NewLetterService(offerRepo, certRepo, letter.NewGenerator(letter.DefaultCompany()))
	authSvc := service.NewAuthService(userRepo, letterSvc, mail, cfg.JWTSecret, cfg.FrontendURL)
	subSvc := service.NewSubmissionService(subRepo, store)
	deptSvc := service.NewDepartmentService(deptRepo)
	taskSvc := service.NewTaskService(taskRepo)
	projectSvc := service.NewProjectService(projectRepo)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	deptH := handler.NewDepartmentHandler(deptSvc)
	subH := handler.NewSubmissionHandler(subSvc, authSvc)
	taskH := handler.NewTaskHandler(taskSvc)
	projectH := handler.NewProjectHandler(projectSvc)
	letterH := handler.NewLetterHandler(letterSvc)

	// Router
	r := router.New(cfg.JWTSecret, cfg.FrontendURL, authH, deptH, subH, taskH, projectH, letterH)

	// Index builds run in background so startup never blocks on Mongo.
	go func() {
		initCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		log.Printf("Background init: creating indexes...")
		for name, ensure := range map[string]func(context.Context) error{
			"users":        userRepo.EnsureIndexes,
			"submissions":  subRepo.EnsureIndexes,
			"offerletters": offerRepo.EnsureIndexes,
			"iccs":         certRepo.EnsureIndexes,
			"tasks":        taskRepo.EnsureIndexes,
		} {
			if err := ensure(initCtx); err != nil {
				log.Printf("Warning: %s index creation failed: %v", name, err)
			}
		}
		log.Printf("Background init: done")
	}()

	log.Printf("Server starting on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
