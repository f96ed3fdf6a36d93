package app

import (
	"employabilityWeb/internal/config"
	"employabilityWeb/internal/repository"
	"employabilityWeb/internal/service"
	"employabilityWeb/internal/session"
	"employabilityWeb/internal/storage"
	"log"
	"net/http"
)

func App(cfg *config.Config) (*service.Service, *session.Guard) {
	// backend API client
	client := repository.NewClient(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout})
	repo := repository.NewRepository(client)

	// connection MinIO, optional
	var certificates storage.CertificateStorage
	if cfg.MinIO.Enabled() {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO: %v", err)
		}
		certificates = minioClient
	} else {
		log.Println("MINIO_ENDPOINT is not set, certificate downloads are disabled")
	}

	// session cookies
	store, err := session.NewStore(session.Options{
		Name:   cfg.Session.Name,
		Secret: cfg.Session.Secret,
		MaxAge: cfg.Session.MaxAge,
		Secure: cfg.Session.Secure,
	})
	if err != nil {
		log.Fatalf("Failed to initialize the session store: %v", err)
	}
	guard := session.NewGuard(store, session.NewTokenChecker(cfg.JWTSecretKey))

	services := service.NewService(repo, cfg, certificates)

	return services, guard
}
