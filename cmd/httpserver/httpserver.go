// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-vera/ledgerbook/internal/accountingrepo"
	"github.com/go-vera/ledgerbook/internal/accountingservice"
	"github.com/go-vera/ledgerbook/internal/groupdelivery"
	"github.com/go-vera/ledgerbook/internal/journaldelivery"
	"github.com/go-vera/ledgerbook/internal/journalrepo"
	"github.com/go-vera/ledgerbook/internal/journalservice"
	"github.com/go-vera/ledgerbook/internal/ledgerdelivery"
	"github.com/go-vera/ledgerbook/internal/ledgerrepo"
	"github.com/go-vera/ledgerbook/internal/ledgerservice"
	"github.com/go-vera/ledgerbook/internal/middleware"
	"github.com/go-vera/ledgerbook/internal/transactionrepo"
	"github.com/go-vera/ledgerbook/pkg/configpkg"
	"github.com/go-vera/ledgerbook/pkg/currencypkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)
	journalRepo := journalrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)
	accountingRepo := accountingrepo.NewRepoPGS(conn)

	ledgerService := ledgerservice.New(ledgerRepo)
	journalService := journalservice.New(journalRepo, transactionRepo, config)
	accountingService := accountingservice.New(accountingRepo, journalService)

	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)
	journalHandler := journaldelivery.NewHandler(journalService)
	groupHandler := groupdelivery.NewHandler(accountingService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/ledgers", ledgerHandler.Create)
	engine.GET("/ledgers/:id", ledgerHandler.Get)
	engine.GET("/ledgers/:id/balance", ledgerHandler.GetBalance)

	engine.POST("/journals", journalHandler.Create)
	engine.GET("/journals/:id", journalHandler.Get)
	engine.GET("/journals/:id/balance", journalHandler.GetBalance)
	engine.POST("/journals/:id/transactions", journalHandler.Post)
	engine.GET("/journals/:id/transactions", journalHandler.ListTransactions)
	engine.DELETE("/transactions/:id", journalHandler.DeleteTransaction)

	engine.POST("/transaction-groups", groupHandler.Create)
	engine.GET("/transaction-groups/:id", groupHandler.Get)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("currency", currencypkg.ValidCurrency)
		if err != nil {
			return nil, errors.New("cannot register currency validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
