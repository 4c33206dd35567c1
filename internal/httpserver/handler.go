package httpserver

import (
	"context"
	"fmt"

	"insight-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig, srv.config.InternalConfig, srv.encrypter)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	r := srv.gin.Group("")

	// Analysis must come first, report and the consumers depend on its usecase
	if err := srv.setupAnalysisDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup analysis domain: %w", err)
	}
	if err := srv.setupInsightDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup insight domain: %w", err)
	}
	if err := srv.setupReportDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup report domain: %w", err)
	}
	if err := srv.setupSessionDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup session domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.BodyLimit(srv.config.HTTPServer.MaxBodyBytes))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	// Log CORS mode for visibility
	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost and private subnets)", srv.environment)
	}

	// Add locale middleware to extract and set locale from request header
	srv.gin.Use(mw.Locale())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
