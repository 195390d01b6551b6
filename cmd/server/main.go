package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	"tar1ksite/config"
	"tar1ksite/internal/adapters/audience"
	"tar1ksite/internal/adapters/checkin"
	emailadapter "tar1ksite/internal/adapters/email"
	httpdelivery "tar1ksite/internal/delivery/http"
	"tar1ksite/internal/delivery/http/controllers"
	"tar1ksite/internal/delivery/http/middleware"
	"tar1ksite/internal/domain"
	"tar1ksite/internal/repository/postgres"
	"tar1ksite/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger()

	// The store is constructed once and reused for the process lifetime.
	// Without a configured database the pipeline still runs; writes become
	// logged no-ops and the capacity gate stays open.
	var store domain.SubmissionStore
	if cfg.PersistenceEnabled() {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		store = postgres.NewSubmissionStore(db)
		logger.Info("persistence enabled")
	} else {
		store = postgres.NewDisabledStore(logger)
		logger.Warn("persistence disabled; submissions will not be stored")
	}

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider: cfg.EmailProvider,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}
	renderer := emailadapter.NewTemplateRenderer()

	// Nil when no contact list is configured; the newsletter service then
	// notifies the operators instead.
	registrar := audience.NewSESRegistrar(audience.Config{
		Region:          cfg.SESRegion,
		AccessKeyID:     cfg.SESAccessKeyID,
		SecretAccessKey: cfg.SESSecretAccessKey,
		ContactListName: cfg.SESContactList,
	})

	codec := checkin.NewCodec(cfg.CheckinTokenSecret)

	contactService := services.NewContactService(logger, store, mailer, renderer, cfg.FromEmail, cfg.ContactEmails)
	newsletterService := services.NewNewsletterService(logger, store, mailer, renderer, registrar, cfg.FromEmail, cfg.ContactEmails)
	generalService := services.NewGeneralInviteService(logger, store, mailer, renderer, cfg.FromEmail, cfg.ContactEmails)
	nov21Service := services.NewNov21InviteService(logger, store, mailer, renderer, codec, cfg.FromEmail, cfg.ContactEmails)
	checkinService := services.NewCheckinService(store, codec)

	mux := httpdelivery.NewRouter(
		controllers.NewContactController(logger, contactService),
		controllers.NewNewsletterController(logger, newsletterService),
		controllers.NewInviteGeneralController(logger, generalService),
		controllers.NewInviteNov21Controller(logger, nov21Service),
		controllers.NewCheckinController(logger, checkinService),
		cfg.CheckinPasscodeHash,
	)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
