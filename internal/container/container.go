package container

import (
	"database/sql"
	"log"

	"github.com/P3RALT/SysEstoque/internal/access"
	"github.com/P3RALT/SysEstoque/internal/cart"
	"github.com/P3RALT/SysEstoque/internal/config"
	"github.com/P3RALT/SysEstoque/internal/integrations/googlesheets"
	"github.com/P3RALT/SysEstoque/internal/inventory"
	"github.com/P3RALT/SysEstoque/internal/notification"
	"github.com/P3RALT/SysEstoque/internal/repository"
	"github.com/P3RALT/SysEstoque/internal/requisitionlog"
	"github.com/P3RALT/SysEstoque/internal/session"
)

type Container struct {
	Repository       *repository.Repository
	Config           *config.Config
	Mirror           *inventory.Mirror
	LoginHandler     *access.LoginHandler
	InventoryHandler *inventory.Handler
	CartHandler      *cart.Handler
	ReqLogHandler    *requisitionlog.Handler
}

func NewAppContainer(db *sql.DB, cfg *config.Config) *Container {
	repo := repository.NewRepository(db)
	sessionRepo := session.NewRepository(repo)
	reqLogRepo := requisitionlog.NewRepository(repo)
	reqLog := requisitionlog.NewRequisitionLog(reqLogRepo)

	webApp := inventory.NewWebAppClient(cfg.SheetsWebAppURL)

	// The Sheets API source is preferred when credentials are configured;
	// otherwise the Apps Script web app carries the whole load.
	sources := []inventory.Source{}
	if sheetsSource, err := googlesheets.NewInventorySource(); err != nil {
		log.Printf("Fonte Sheets API indisponível: %v", err)
	} else {
		sources = append(sources, sheetsSource)
	}
	sources = append(sources, webApp)

	mirror := inventory.NewMirror(sources...)

	dispatcher := notification.NewDispatcher(
		notification.NewEmailJSStrategy(cfg.EmailJS, cfg.CategoryGroups),
		notification.NewMailtoStrategy(cfg.CategoryGroups),
		notification.NewClipboardStrategy(),
	)

	gate := access.NewGate(cfg.AllowedEmails)
	loginHandler := access.NewLoginHandler(gate, sessionRepo)
	inventoryHandler := inventory.NewHandler(mirror)
	cartStore := cart.NewStore()
	cartHandler := cart.NewHandler(cartStore, mirror, dispatcher, webApp, reqLog)
	reqLogHandler := requisitionlog.NewHandler(reqLogRepo)

	return &Container{
		Repository:       repo,
		Config:           cfg,
		Mirror:           mirror,
		LoginHandler:     loginHandler,
		InventoryHandler: inventoryHandler,
		CartHandler:      cartHandler,
		ReqLogHandler:    reqLogHandler,
	}
}
