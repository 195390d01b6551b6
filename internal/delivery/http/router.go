package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"tar1ksite/internal/delivery/http/controllers"
	"tar1ksite/internal/delivery/http/helpers"
	"tar1ksite/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes.
// Each route also registers a method-less fallback so unsupported methods
// get the JSON 405 body instead of the ServeMux plain-text response.
func NewRouter(
	contactController *controllers.ContactController,
	newsletterController *controllers.NewsletterController,
	inviteGeneralController *controllers.InviteGeneralController,
	inviteNov21Controller *controllers.InviteNov21Controller,
	checkinController *controllers.CheckinController,
	checkinPasscodeHash string,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Submission flows
	mux.HandleFunc("POST /api/contact", contactController.Submit)
	mux.HandleFunc("/api/contact", helpers.MethodNotAllowed)

	mux.HandleFunc("POST /api/newsletter", newsletterController.Subscribe)
	mux.HandleFunc("/api/newsletter", helpers.MethodNotAllowed)

	mux.HandleFunc("GET /api/invite-general", inviteGeneralController.Status)
	mux.HandleFunc("POST /api/invite-general", inviteGeneralController.Submit)
	mux.HandleFunc("/api/invite-general", helpers.MethodNotAllowed)

	mux.HandleFunc("POST /api/invite-nov21", inviteNov21Controller.Submit)
	mux.HandleFunc("/api/invite-nov21", helpers.MethodNotAllowed)

	// Door check-in
	requirePasscode := middleware.RequirePasscode(checkinPasscodeHash)
	mux.HandleFunc("POST /api/checkin/verify", requirePasscode(checkinController.Verify))
	mux.HandleFunc("/api/checkin/verify", helpers.MethodNotAllowed)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
