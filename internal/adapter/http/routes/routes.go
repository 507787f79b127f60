package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	_ "fabar_drinks/docs" // swag generated
	request "fabar_drinks/internal/adapter/http/dto/request"
	"fabar_drinks/internal/adapter/http/handlers"
	"fabar_drinks/internal/adapter/http/middleware"
	"fabar_drinks/internal/adapter/persistence/repository"
	"fabar_drinks/internal/infrastructure/config"
	"fabar_drinks/internal/infrastructure/database"
	"fabar_drinks/internal/infrastructure/messaging"
	"fabar_drinks/internal/usecase"
	"fabar_drinks/internal/usecase/interfaces"
	"fabar_drinks/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the service and serves HTTP until ctx is cancelled, then shuts
// down within cfg.App.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	drafts, err := newDraftRepository(ctx, cfg, log)
	if err != nil {
		return err
	}

	gateway, err := messaging.NewWhatsAppGateway(cfg.WhatsApp.BaseURL, cfg.WhatsApp.Phone, log.Named("whatsapp.gateway"))
	if err != nil {
		return fmt.Errorf("failed to create whatsapp gateway: %w", err)
	}
	quoteFormUseCase := usecase.NewQuoteFormUseCase(drafts, gateway, cfg.Drafts.TTL, log.Named("quote.usecase"))

	router, err := NewRouter(cfg, quoteFormUseCase, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.App.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr), zap.String("draft_store", cfg.Drafts.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(cfg *config.Config, uc usecase.IQuoteFormUseCase, log *zap.Logger) (*gin.Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := request.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	setMiddlewares(router, cfg.App, log.Named("http"))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pageHandler := handlers.NewPageHandler(uc, handlers.PageOptions{
		CookieName: cfg.App.SessionCookie,
		TTL:        cfg.Drafts.TTL,
		Secure:     cfg.App.IsProduction(),
	}, log.Named("quote.page"))
	addPageRoutes(&router.RouterGroup, pageHandler)

	quoteFormHandler := handlers.NewQuoteFormHandler(uc, cfg.WhatsApp.Phone, log.Named("quote.handler"))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteFormRoutes(v1, quoteFormHandler)

	return router, nil
}

func setMiddlewares(router *gin.Engine, app config.AppConfig, log *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	// Engine level so preflight requests are answered for every route.
	router.Use(cors.New(corsConfig(app)))
}

func corsConfig(app config.AppConfig) cors.Config {
	c := cors.DefaultConfig()
	origins := app.AllowedOrigins()
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowHeaders = append(c.AllowHeaders, middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	return c
}

func newDraftRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (interfaces.IDraftRepository, error) {
	switch cfg.Drafts.Store {
	case config.DraftStoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return repository.NewDraftDynamoRepository(ddb, cfg.Drafts.Table, log.Named("draft.dynamodb")), nil
	default:
		repo := repository.NewDraftMemoryRepository(log.Named("draft.memory"))
		go repo.RunJanitor(ctx, cfg.Drafts.SweepInterval)
		return repo, nil
	}
}
