package http

import (
	"context"
	"strings"

	"github.com/dkeye/Huddle/internal/adapters/signal"
	"github.com/dkeye/Huddle/internal/adapters/storage"
	"github.com/dkeye/Huddle/internal/app/orch"
	"github.com/dkeye/Huddle/internal/config"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func genClientToken() string {
	idStr := uuid.NewString()
	return idStr
}

func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = genClientToken()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set(signal.ClientTokenKey, token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, o *orch.Orchestrator, images *storage.ImageStore) *gin.Engine {
	if cfg.Mode == gin.ReleaseMode || cfg.Mode == gin.TestMode {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	if cfg.Mode == gin.DebugMode {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = cfg.MaxUploadSize

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("HuddleSessions", store))
	r.Use(ClientTokenMiddleware())

	h := &handlers{orch: o, images: images, staticPath: cfg.StaticPath}

	// uploads live under /static/uploads, so one catch-all route serves both trees
	staticFS := gin.Dir(cfg.StaticPath, false)
	r.GET("/static/*filepath", func(c *gin.Context) {
		fp := c.Param("filepath")
		if ref, ok := strings.CutPrefix(fp, "/uploads/"); ok {
			h.serveUpload(c, ref)
			return
		}
		c.FileFromFS(fp, staticFS)
	})
	r.GET("/", func(c *gin.Context) {
		c.File(cfg.StaticPath + "/index.html")
	})
	r.GET("/room/:code", h.roomPage)
	r.POST("/upload_image", h.uploadImage)

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Msg("router setup")

	api := r.Group("/api")
	api.GET("/rooms", h.listRooms)
	api.POST("/rooms", h.createRoom)
	api.GET("/rooms/:code", h.getRoom)
	api.GET("/rooms/:code/members", h.roomMembers)
	api.POST("/rooms/:code/join", h.joinRoom)
	api.DELETE("/rooms/:code", h.deleteRoom)

	ctrl := signal.NewSignalWSController(o, signal.Options{
		ReadLimit:  cfg.ReadLimit,
		PingPeriod: cfg.PingPeriod,
		WriteWait:  cfg.WriteWait,
		SendBuffer: cfg.SendBuffer,
	})
	api.GET("/ws/signal", func(c *gin.Context) {
		log.Info().Str("module", "adapters.http").Str("client", c.GetString(signal.ClientTokenKey)).Msg("ws signal endpoint hit")
		ctrl.HandleSignal(ctx, c)
	})

	return r
}
