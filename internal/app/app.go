package app

import (
	"context"
	"html/template"
	"io"
	"net/http"

	"gorm.io/gorm"

	"github.com/phenrril/customerdesk/internal/adapters/httpserver"
	"github.com/phenrril/customerdesk/internal/adapters/importer"
	"github.com/phenrril/customerdesk/internal/adapters/metrics"
	"github.com/phenrril/customerdesk/internal/adapters/repo/sqldb"
	"github.com/phenrril/customerdesk/internal/domain"
	"github.com/phenrril/customerdesk/internal/usecase"
	"github.com/phenrril/customerdesk/internal/views"
)

type App struct {
	DB         *gorm.DB
	Tmpl       *template.Template
	Customers  domain.CustomerRepo
	CustomerUC *usecase.CustomerUC
	Metrics    *metrics.Intake
}

func NewApp(db *gorm.DB) (*App, error) {
	repo := sqldb.NewCustomerRepo(db)
	tmpl, err := template.ParseFS(views.FS, "*.html")
	if err != nil {
		return nil, err
	}
	m := metrics.NewIntake()
	return &App{
		DB:         db,
		Tmpl:       tmpl,
		Customers:  repo,
		CustomerUC: &usecase.CustomerUC{Customers: repo, Outcomes: m},
		Metrics:    m,
	}, nil
}

// Migrate se llama una vez al iniciar el proceso; es idempotente.
func (a *App) Migrate(ctx context.Context) error {
	return a.Customers.Initialize(ctx)
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Tmpl, a.CustomerUC, a.Metrics.Handler())
}

func (a *App) ImportXLSX(ctx context.Context, r io.Reader) (*importer.Report, error) {
	return importer.ImportXLSX(ctx, r, a.CustomerUC)
}

func (a *App) Close() error {
	return sqldb.Close(a.DB)
}
