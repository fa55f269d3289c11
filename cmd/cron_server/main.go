package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres

	"github.com/fandersmf/cash-blotter/config"
	"github.com/fandersmf/cash-blotter/consts"
	"github.com/fandersmf/cash-blotter/entity"
	"github.com/fandersmf/cash-blotter/handler"
	"github.com/fandersmf/cash-blotter/infra/db/dao"
	"github.com/fandersmf/cash-blotter/infra/locker"
	cashBlotterUsecase "github.com/fandersmf/cash-blotter/usecase/cashblotter"
)

type CronWorkerConfig struct {
	Interval time.Duration
	Workers  int
}

func (cfg CronWorkerConfig) startRecalculationWorker(h *handler.CashBlotterHandler, workerID int) {
	var concurrencyErr *entity.ConcurrencyError

	for {
		ctx := context.Background()
		err := h.RecalculationExecution(ctx)
		switch {
		case err == nil:
			log.Printf("[Worker %d] recalculation completed", workerID)
		case errors.As(err, &concurrencyErr):
			log.Printf("[Worker %d] skipped: another recalculation is running", workerID)
		default:
			log.Printf("[Worker %d] error: %s", workerID, err.Error())
		}

		time.Sleep(cfg.Interval)
	}
}

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Locker locker.Locker
}

func (a *App) startCronWorker(cfg CronWorkerConfig) {
	var wg sync.WaitGroup

	uc := cashBlotterUsecase.NewCashBlotterUsecase(dao.NewDaoMethod(a.DB), a.Locker, a.Cfg)
	h := handler.NewCashBlotterHandler(uc)

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			log.Printf("spawn [Worker %d]", workerID)
			cfg.startRecalculationWorker(h, workerID)
		}(i + 1)
	}
	wg.Wait()
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

	a.Locker = locker.NewAdvisoryLocker(a.DB, consts.RecalculationLockKey)
}

func (a *App) RunServer() {
	a.startCronWorker(CronWorkerConfig{
		Workers:  a.Cfg.CronWorkers,
		Interval: a.Cfg.CronInterval,
	})
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
