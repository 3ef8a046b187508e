package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/phoneix12356/RenuHealthCare/internal/auth"
	"github.com/phoneix12356/RenuHealthCare/internal/handler"
	mw "github.com/phoneix12356/RenuHealthCare/internal/middleware"
)

func New(
	jwtSecret string,
	frontendURL string,
	authH *handler.AuthHandler,
	deptH *handler.DepartmentHandler,
	subH *handler.SubmissionHandler,
	taskH *handler.TaskHandler,
	projectH *handler.ProjectHandler,
	letterH *handler.LetterHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(mw.Logger)
	r.Use(mw.CORS(frontendURL))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/user/register", authH.Register)
		r.Post("/user/login", authH.Login)
		r.Post("/user/logout", authH.Logout)
		r.Post("/user/send-reset-password", authH.SendPasswordReset)
		r.Post("/user/reset-password/{id}/{token}", authH.ResetPassword)

		r.Get("/department", deptH.List)
		r.Get("/department/{name}", deptH.Get)

		r.Post("/certificate/offerLetter", letterH.GenerateOfferLetter)
		r.Get("/certificate/offerLetter", letterH.DownloadOfferLetter)
		r.Post("/certificate/generateIcc", letterH.GenerateCertificate)
		r.Get("/certificate/icc", letterH.DownloadCertificate)

		r.Post("/project", projectH.Get)
		r.Post("/task/particularweek", taskH.GetWeek)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret))

			// Account
			r.Get("/user", authH.Me)
			r.Post("/user/change-password", authH.ChangePassword)

			// Weekly submissions
			r.Post("/submission", subH.Create)
			r.Get("/submission", subH.Get)
			r.Get("/submission/week/{weekNumber}", subH.GetWeek)
			r.Delete("/submission/{id}", subH.Delete)

			// Department administration
			r.Post("/department", deptH.Add)
			r.Put("/department/{name}", deptH.Update)
			r.Delete("/department/{name}", deptH.Delete)

			// Weekly task plans
			r.Get("/task", taskH.Get)
			r.Post("/task", taskH.Add)
			r.Put("/task/update", taskH.UpdateWeek)
			r.Delete("/task/delete", taskH.DeleteWeek)

			// Project overviews
			r.Post("/project/add", projectH.Add)
			r.Put("/project/update", projectH.Update)
			r.Delete("/project/delete", projectH.Delete)
		})
	})

	return r
}
