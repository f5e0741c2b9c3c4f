package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/Razboth/Servicedesk-sub005/internal/config"
	"github.com/Razboth/Servicedesk-sub005/internal/domain"
	"github.com/Razboth/Servicedesk-sub005/internal/repository"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	notifyChannel *amqp.Channel
	redisClient   *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, notifyCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		notifyChannel: notifyCh,
		redisClient:   rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// everything below requires a signed-in user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/staff-profiles", func(r chi.Router) {
			r.Get("/", h.ListStaffProfiles)
			r.With(h.RequiredRole(domain.ManagerRoles)).Post("/", h.UpsertStaffProfile)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.staffProfileCtx)
				r.Get("/", h.GetStaffProfile)
				r.With(h.RequiredRole(domain.ManagerRoles)).Delete("/", h.DeleteStaffProfile)
			})
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", h.ListSchedules)
			r.With(h.RequiredRole(domain.ManagerRoles)).Post("/", h.CreateSchedule)
			r.With(h.RequiredRole(domain.ManagerRoles)).Post("/generate", h.GenerateSchedule)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.scheduleCtx)
				r.Get("/", h.GetSchedule)
				r.Get("/validation", h.GetScheduleValidation)
				r.Get("/statistics", h.GetScheduleStatistics)
				r.With(h.RequiredRole(domain.ManagerRoles)).Post("/edits", h.ApplyRosterEdit)
				r.With(h.RequiredRole(domain.ManagerRoles)).Put("/assignments", h.CommitSchedule)
				r.With(h.RequiredRole(domain.ManagerRoles)).Delete("/assignments/{assignmentId}", h.DeleteAssignment)
			})
		})
	})
}
