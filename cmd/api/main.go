package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "smartpay-backend/internal/adapter/http"
	spmw "smartpay-backend/internal/adapter/middleware"
	"smartpay-backend/internal/adapter/repository/mysql"
	"smartpay-backend/internal/config"
	billDomain "smartpay-backend/internal/domain/bill"
	loanDomain "smartpay-backend/internal/domain/loan"
	requestDomain "smartpay-backend/internal/domain/request"
	userDomain "smartpay-backend/internal/domain/user"
	"smartpay-backend/internal/infrastructure/cache"
	"smartpay-backend/internal/infrastructure/db"
	billUC "smartpay-backend/internal/usecase/bill"
	directoryUC "smartpay-backend/internal/usecase/directory"
	ledgerUC "smartpay-backend/internal/usecase/ledger"
	loanUC "smartpay-backend/internal/usecase/loan"
	workflowUC "smartpay-backend/internal/usecase/workflow"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&userDomain.User{},
		&loanDomain.Loan{},
		&loanDomain.Installment{},
		&billDomain.Bill{},
		&requestDomain.Request{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	users := mysql.NewUserRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	bills := mysql.NewBillRepository(gdb)
	requests := mysql.NewRequestRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	directory := directoryUC.NewUsecase(users)
	loanUsecase := loanUC.NewUsecase(loans, tx)
	workflow := workflowUC.NewUsecase(requests, tx)
	billUsecase := billUC.NewUsecase(bills, tx)
	ledger := ledgerUC.NewUsecase(tx)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := directory.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		cancel()
		log.Fatal(err)
	}
	cancel()

	h := httpadp.NewHandler()
	dh := httpadp.NewDirectoryHandler(directory)
	lh := httpadp.NewLoanHandler(loanUsecase)
	rh := httpadp.NewRequestHandler(workflow)
	bh := httpadp.NewBillHandler(billUsecase)
	gh := httpadp.NewLedgerHandler(ledger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.POST("/register", dh.Register)
	e.POST("/login", dh.Login)

	idemp := spmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	cust := e.Group("/customers")
	cust.GET("/:customer_id", dh.GetCustomer)
	cust.GET("/:customer_id/loans", lh.ListByCustomer)
	cust.GET("/:customer_id/requests", rh.ListByCustomer)
	cust.GET("/:customer_id/bills", bh.ListByCustomer)

	e.POST("/loans", lh.Apply, idemp)
	e.GET("/loans/:loan_id", lh.Get)
	e.GET("/loans/:loan_id/bill", bh.GetByLoan)
	e.POST("/withdrawals", rh.SubmitWithdrawal, idemp)
	e.POST("/topups", rh.SubmitTopUp, idemp)
	e.GET("/bills/:bill_id", bh.Get)
	e.POST("/bills/:bill_id/payments", bh.Pay, idemp)

	admin := e.Group("/admin")
	admin.GET("/customers", dh.ListCustomers)
	admin.POST("/customers/:customer_id/block", dh.SetBlocked(true))
	admin.POST("/customers/:customer_id/unblock", dh.SetBlocked(false))
	admin.GET("/requests", rh.ListByStatus)
	admin.POST("/requests/:request_id/approve", rh.Resolve(true), idemp)
	admin.POST("/requests/:request_id/reject", rh.Resolve(false), idemp)
	admin.POST("/loans/:loan_id/approve", lh.Resolve(true), idemp)
	admin.POST("/loans/:loan_id/reject", lh.Resolve(false), idemp)
	admin.POST("/customers/:customer_id/ledger/credit", gh.Adjust(true), idemp)
	admin.POST("/customers/:customer_id/ledger/debit", gh.Adjust(false), idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
