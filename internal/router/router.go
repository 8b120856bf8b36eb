package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dentalogix/dentalogix-api/internal/auth"
	"github.com/dentalogix/dentalogix-api/internal/contact"
	"github.com/dentalogix/dentalogix-api/internal/middlewares"
	"github.com/dentalogix/dentalogix-api/internal/offer"
	"github.com/dentalogix/dentalogix-api/internal/post"
	"github.com/dentalogix/dentalogix-api/internal/procedure"
	"github.com/dentalogix/dentalogix-api/internal/question"
	"github.com/dentalogix/dentalogix-api/internal/quiz"
	"github.com/dentalogix/dentalogix-api/internal/settings"
	"github.com/dentalogix/dentalogix-api/internal/team"
	"github.com/dentalogix/dentalogix-api/internal/testimonial"
)

type RouterConfig struct {
	AllowedOrigin      string
	ProcedureHandler   *procedure.Handler
	QuestionHandler    *question.Handler
	QuizHandler        *quiz.Handler
	ContactHandler     *contact.Handler
	PostHandler        *post.Handler
	OfferHandler       *offer.Handler
	SettingsHandler    *settings.Handler
	TeamHandler        *team.Handler
	TestimonialHandler *testimonial.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Mount("/procedures", procedure.Routes(cfg.ProcedureHandler))
	r.Mount("/questions", question.Routes(cfg.QuestionHandler))
	r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
	r.Mount("/contact", contact.Routes(cfg.ContactHandler))
	r.Mount("/posts", post.Routes(cfg.PostHandler))
	r.Mount("/offers", offer.Routes(cfg.OfferHandler))
	r.Mount("/settings", settings.Routes(cfg.SettingsHandler))
	r.Mount("/team", team.Routes(cfg.TeamHandler))
	r.Mount("/testimonials", testimonial.Routes(cfg.TestimonialHandler))

	return r
}
