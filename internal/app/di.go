package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	deepseek "github.com/re-fagiano/fixlab/internal/client/http/deepseek"
	"github.com/re-fagiano/fixlab/internal/config"
	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/platform/logger"
	"github.com/re-fagiano/fixlab/internal/repository"
	"github.com/re-fagiano/fixlab/internal/repository/kvstore"
	backupsvc "github.com/re-fagiano/fixlab/internal/service/backup"
	calendarsvc "github.com/re-fagiano/fixlab/internal/service/calendar"
	customersvc "github.com/re-fagiano/fixlab/internal/service/customer"
	dashboardsvc "github.com/re-fagiano/fixlab/internal/service/dashboard"
	diagnosissvc "github.com/re-fagiano/fixlab/internal/service/diagnosis"
	partsvc "github.com/re-fagiano/fixlab/internal/service/part"
	ticketsvc "github.com/re-fagiano/fixlab/internal/service/ticket"
	backupv1 "github.com/re-fagiano/fixlab/internal/transport/http/backup/v1"
	calendarv1 "github.com/re-fagiano/fixlab/internal/transport/http/calendar/v1"
	customerv1 "github.com/re-fagiano/fixlab/internal/transport/http/customer/v1"
	dashboardv1 "github.com/re-fagiano/fixlab/internal/transport/http/dashboard/v1"
	diagnosisv1 "github.com/re-fagiano/fixlab/internal/transport/http/diagnosis/v1"
	partv1 "github.com/re-fagiano/fixlab/internal/transport/http/part/v1"
	"github.com/re-fagiano/fixlab/internal/transport/http/proxy"
	"github.com/re-fagiano/fixlab/internal/transport/http/spa"
	ticketv1 "github.com/re-fagiano/fixlab/internal/transport/http/ticket/v1"
)

type Handler interface {
	Register(r chi.Router)
}

type TicketService interface {
	ticketv1.TicketService
	ByID(ctx context.Context, id string) (*model.Ticket, error)
}

type di struct {
	store kvstore.Store

	customerRepo *repository.CustomerRepository
	ticketRepo   *repository.TicketRepository
	partRepo     *repository.PartRepository

	chatClient diagnosissvc.ChatClient

	customerService  customerv1.CustomerService
	ticketService    TicketService
	partService      partv1.PartService
	dashboardService dashboardv1.DashboardService
	calendarService  calendarv1.CalendarService
	diagnosisService diagnosisv1.DiagnosisService
	backupService    backupv1.BackupService

	customerHandler  Handler
	ticketHandler    Handler
	partHandler      Handler
	dashboardHandler Handler
	calendarHandler  Handler
	diagnosisHandler Handler
	backupHandler    Handler

	proxyHandler *proxy.Handler
	spaHandler   *spa.Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) Store(ctx context.Context) kvstore.Store {
	if d.store == nil {
		store := kvstore.NewFileStore(config.C().Storage.DataDir())
		if err := store.EnsureDir(); err != nil {
			panic(fmt.Sprintf("failed to prepare data directory %s: %v\n",
				config.C().Storage.DataDir(), err))
		}
		d.store = store
	}

	return d.store
}

func (d *di) CustomerRepository(ctx context.Context) *repository.CustomerRepository {
	if d.customerRepo == nil {
		d.customerRepo = repository.NewCustomerRepository(d.Store(ctx))
	}

	return d.customerRepo
}

func (d *di) TicketRepository(ctx context.Context) *repository.TicketRepository {
	if d.ticketRepo == nil {
		d.ticketRepo = repository.NewTicketRepository(d.Store(ctx))
	}

	return d.ticketRepo
}

func (d *di) PartRepository(ctx context.Context) *repository.PartRepository {
	if d.partRepo == nil {
		d.partRepo = repository.NewPartRepository(d.Store(ctx))
	}

	return d.partRepo
}

// ChatClient talks to DeepSeek directly when a key is configured. Without a
// key it goes through this service's own proxy endpoint, which answers with
// the server-side configuration error and pushes the diagnosis offline.
func (d *di) ChatClient(ctx context.Context) diagnosissvc.ChatClient {
	if d.chatClient == nil {
		cfg := config.C()
		httpc := &http.Client{Timeout: 30 * time.Second}

		endpoint := cfg.DeepSeek.Endpoint()
		proxied := strings.HasPrefix(endpoint, "/")

		switch {
		case cfg.DeepSeek.HasKey():
			endpoint = cfg.DeepSeek.BaseURL() + "/chat/completions"
			proxied = false
		case proxied:
			endpoint = fmt.Sprintf("http://127.0.0.1:%d%s",
				cfg.Server.Port(), endpoint)
		}

		d.chatClient = deepseek.NewClient(
			httpc,
			endpoint,
			cfg.DeepSeek.APIKey(),
			cfg.DeepSeek.Model(),
			proxied,
		)
	}

	return d.chatClient
}

func (d *di) CustomerService(ctx context.Context) customerv1.CustomerService {
	if d.customerService == nil {
		d.customerService = customersvc.NewCustomerService(d.CustomerRepository(ctx))
	}

	return d.customerService
}

func (d *di) TicketService(ctx context.Context) TicketService {
	if d.ticketService == nil {
		d.ticketService = ticketsvc.NewTicketService(d.TicketRepository(ctx))
	}

	return d.ticketService
}

func (d *di) PartService(ctx context.Context) partv1.PartService {
	if d.partService == nil {
		d.partService = partsvc.NewPartService(d.PartRepository(ctx))
	}

	return d.partService
}

func (d *di) DashboardService(ctx context.Context) dashboardv1.DashboardService {
	if d.dashboardService == nil {
		d.dashboardService = dashboardsvc.NewDashboardService(
			d.TicketRepository(ctx),
			d.PartRepository(ctx),
		)
	}

	return d.dashboardService
}

func (d *di) CalendarService(ctx context.Context) calendarv1.CalendarService {
	if d.calendarService == nil {
		d.calendarService = calendarsvc.NewCalendarService(
			d.TicketRepository(ctx),
			d.CustomerRepository(ctx),
		)
	}

	return d.calendarService
}

func (d *di) DiagnosisService(ctx context.Context) diagnosisv1.DiagnosisService {
	if d.diagnosisService == nil {
		d.diagnosisService = diagnosissvc.NewDiagnosisService(
			d.ChatClient(ctx),
			d.diagnosisRules(ctx),
		)
	}

	return d.diagnosisService
}

func (d *di) diagnosisRules(ctx context.Context) []diagnosissvc.Rule {
	path := config.C().Storage.RulesFile()
	if path == "" {
		return diagnosissvc.DefaultRules()
	}

	rules, err := diagnosissvc.LoadRules(path)
	if err != nil {
		logger.Warn(ctx, "failed to load diagnosis rules, using defaults",
			logger.String("path", path),
			logger.ErrorF(err),
		)
		return diagnosissvc.DefaultRules()
	}

	return rules
}

func (d *di) BackupService(ctx context.Context) backupv1.BackupService {
	if d.backupService == nil {
		d.backupService = backupsvc.NewBackupService(
			d.CustomerRepository(ctx),
			d.TicketRepository(ctx),
			d.PartRepository(ctx),
		)
	}

	return d.backupService
}

func (d *di) CustomerHandler(ctx context.Context) Handler {
	if d.customerHandler == nil {
		d.customerHandler = customerv1.NewCustomerHandler(d.CustomerService(ctx))
	}

	return d.customerHandler
}

func (d *di) TicketHandler(ctx context.Context) Handler {
	if d.ticketHandler == nil {
		d.ticketHandler = ticketv1.NewTicketHandler(d.TicketService(ctx))
	}

	return d.ticketHandler
}

func (d *di) PartHandler(ctx context.Context) Handler {
	if d.partHandler == nil {
		d.partHandler = partv1.NewPartHandler(d.PartService(ctx))
	}

	return d.partHandler
}

func (d *di) DashboardHandler(ctx context.Context) Handler {
	if d.dashboardHandler == nil {
		d.dashboardHandler = dashboardv1.NewDashboardHandler(d.DashboardService(ctx))
	}

	return d.dashboardHandler
}

func (d *di) CalendarHandler(ctx context.Context) Handler {
	if d.calendarHandler == nil {
		d.calendarHandler = calendarv1.NewCalendarHandler(
			d.CalendarService(ctx),
			d.TicketService(ctx),
		)
	}

	return d.calendarHandler
}

func (d *di) DiagnosisHandler(ctx context.Context) Handler {
	if d.diagnosisHandler == nil {
		d.diagnosisHandler = diagnosisv1.NewDiagnosisHandler(
			d.DiagnosisService(ctx),
			d.TicketService(ctx),
		)
	}

	return d.diagnosisHandler
}

func (d *di) BackupHandler(ctx context.Context) Handler {
	if d.backupHandler == nil {
		d.backupHandler = backupv1.NewBackupHandler(d.BackupService(ctx))
	}

	return d.backupHandler
}

func (d *di) ProxyHandler(ctx context.Context) *proxy.Handler {
	if d.proxyHandler == nil {
		cfg := config.C()
		d.proxyHandler = proxy.NewHandler(
			http.DefaultClient,
			cfg.DeepSeek.BaseURL(),
			cfg.DeepSeek.APIKey,
		)
	}

	return d.proxyHandler
}

func (d *di) SPAHandler(ctx context.Context) *spa.Handler {
	if d.spaHandler == nil {
		d.spaHandler = spa.NewHandler(config.C().Storage.DistDir())
	}

	return d.spaHandler
}

func (d *di) Router(ctx context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
