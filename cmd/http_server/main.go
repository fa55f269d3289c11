package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres

	"github.com/fandersmf/cash-blotter/config"
	"github.com/fandersmf/cash-blotter/consts"
	"github.com/fandersmf/cash-blotter/handler"
	"github.com/fandersmf/cash-blotter/infra/db/dao"
	"github.com/fandersmf/cash-blotter/infra/db/model"
	"github.com/fandersmf/cash-blotter/infra/locker"
	"github.com/fandersmf/cash-blotter/middlewares"
	cashBlotterUsecase "github.com/fandersmf/cash-blotter/usecase/cashblotter"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(cfg *config.Config) {
	var err error
	a.Cfg = cfg

	a.DB, err = gorm.Open("postgres", cfg.DBURI())
	if err != nil {
		fmt.Printf("\n Cannot connect to database %s", cfg.DBName)
		log.Fatal("This is the error:", err)
	} else {
		fmt.Printf("We are connected to the database %s", cfg.DBName)
	}

	a.DB.Debug().AutoMigrate(
		&model.CashBlotterEntry{},
		&model.TransactionEvent{},
	) //database migration

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func RegisterCashBlotterRoutes(router *mux.Router, h *handler.CashBlotterHandler) {
	router.HandleFunc("/cash_blotter/recalculate", h.Recalculate).Methods("POST")
	router.HandleFunc("/cash_blotter/current_balance", h.GetCurrentBalance).Methods("GET")
	router.HandleFunc("/cash_blotter/range", h.GetBlotterRange).Methods("GET")
	router.HandleFunc("/cash_blotter/summary", h.GetCashFlowSummary).Methods("GET")
	router.HandleFunc("/cash_blotter/alerts", h.GetCashAlerts).Methods("GET")
	router.HandleFunc("/cash_blotter/daily_cash_flow", h.GetDailyCashFlow).Methods("GET")
	router.HandleFunc("/cash_blotter/monthly_cash_flow", h.GetMonthlyCashFlow).Methods("GET")
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.SetContentTypeMiddleware)

	lk := locker.NewAdvisoryLocker(a.DB, consts.RecalculationLockKey)
	uc := cashBlotterUsecase.NewCashBlotterUsecase(dao.NewDaoMethod(a.DB), lk, a.Cfg)
	h := handler.NewCashBlotterHandler(uc)
	RegisterCashBlotterRoutes(a.Router, h)
}

func (a *App) RunServer() {
	log.Printf("\nServer starting on port %v", a.Cfg.Port)
	log.Fatal(http.ListenAndServe(":"+a.Cfg.Port, a.Router))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	app := App{}
	app.Initialize(cfg)
	app.RunServer()
}
