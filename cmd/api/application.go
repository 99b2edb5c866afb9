package main

import (
	"log/slog"

	"kinoteka/proj/internal/api/tasks"
	"kinoteka/proj/internal/config"
	"kinoteka/proj/internal/services"
	"kinoteka/proj/internal/storage/postgres"
	storagemodels "kinoteka/proj/internal/storage/postgres/models"
	"kinoteka/proj/internal/web"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

type Application struct {
	cfg         *config.Config
	log         *slog.Logger
	Http        *Http
	services    *services.Services
	validator   *govalidator.Validate
	formDecoder *schema.Decoder
	templates   *web.TemplateCache
	bgTasks     *tasks.BackgroundTasks
}

func NewApplication(cfg *config.Config, log *slog.Logger, storage *postgres.Storage) *Application {
	templates, err := web.NewTemplateCache()
	if err != nil {
		panic(err)
	}
	formDecoder := schema.NewDecoder()
	formDecoder.IgnoreUnknownKeys(true)
	bgTasks := tasks.New(log, cfg.Tasks.MaxWorkers, cfg.Tasks.QueueSize)
	bgTasks.Run()
	models := storagemodels.New(storage)
	return &Application{
		cfg:         cfg,
		log:         log,
		validator:   govalidator.New(govalidator.WithRequiredStructEnabled()),
		formDecoder: formDecoder,
		templates:   templates,
		bgTasks:     bgTasks,
		services:    services.New(log, cfg, models, bgTasks),
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
}
