// Package server は HTTP ルーティングの組み立て
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "library-backend/docs"
	"library-backend/internal/borrowers"
	"library-backend/internal/catalog"
	"library-backend/internal/lending"
	"library-backend/internal/platform/apperr"
	"library-backend/internal/platform/config"
	"library-backend/internal/platform/db"
	"library-backend/internal/platform/middleware"
)

var defaultCORSOrigins = []string{"http://localhost:3000"}

func New(cfg *config.Config, conn *db.Conn) *gin.Engine {
	if cfg.Mode == config.ModeRelease {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		gin.Logger(),
		middleware.Recovery(),
		middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	)
	_ = r.SetTrustedProxies(nil)

	if cfg.Mode == config.ModeDev {
		// CORS（開発中のみ必要）
		origins := cfg.Server.CORSOrigins
		if len(origins) == 0 {
			origins = defaultCORSOrigins
		}
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowHeaders:     []string{"Origin", "Content-Type", middleware.HeaderRequestID},
			ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	// ヘルス
	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := conn.PingContext(ctx); err != nil {
			apperr.Respond(c, err)
			return
		}
		c.String(http.StatusOK, "ok")
	})

	ledger := lending.NewStore(conn)
	bookSvc := catalog.NewService(catalog.NewStore(conn), ledger)
	borrowerSvc := borrowers.NewService(borrowers.NewStore(conn), ledger)

	catalog.RegisterRoutes(r, bookSvc)
	borrowers.RegisterRoutes(r, borrowerSvc)
	lending.RegisterRoutes(r, lending.NewService(bookSvc, borrowerSvc, ledger, cfg.Location()))

	if cfg.Server.Docs {
		r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apperr.Body(apperr.CodeNotFound, apperr.MsgEndpointNotFound))
	})
	return r
}
