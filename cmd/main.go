package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"

	"video-hosting-server/config"
	_ "video-hosting-server/docs"
	"video-hosting-server/internal/handler"
	"video-hosting-server/internal/repository"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/service"
)

// @title Video-hosting-server
// @version 1.0
// @description REST API видеохостинга: аккаунты, видео, комментарии, лайки, твиты, плейлисты, подписки

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Printf("файл .env не найден, используются переменные окружения")
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	// одно окно жизни и для записей кэша, и для подписанных S3 ссылок
	ttl := time.Duration(cfg.TTL.S3AndRedis) * time.Second
	cacheRepo := repository.NewCacheRepository(redisClient, ttl)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	jwtService := security.NewJWTService(&cfg.JWT)
	authService := service.NewAuthenticationService(jwtService, userRepo)
	userService := service.NewUserService(userRepo, cacheRepo, s3Service)
	videoService := service.NewVideoService(videoRepo, userRepo, cacheRepo, s3Service, ttl)
	commentService := service.NewCommentService(commentRepo, videoRepo)
	likeService := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	tweetService := service.NewTweetService(tweetRepo)
	playlistService := service.NewPlaylistService(playlistRepo, videoRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo, cacheRepo)
	dashboardService := service.NewDashboardService(videoRepo)

	authHandler := handler.NewAuthenticationHandler(authService, &cfg.JWT, &cfg.Cookie)
	userHandler := handler.NewUserHandler(userService)
	videoHandler := handler.NewVideoHandler(videoService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)
	tweetHandler := handler.NewTweetHandler(tweetService)
	playlistHandler := handler.NewPlaylistHandler(playlistService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthcheckHandler := handler.NewHealthcheckHandler(db, redisClient)

	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/api/v1/healthcheck", healthcheckHandler.Healthcheck)

	setupAuthRoutes(router, authHandler, authService)
	setupUserRoutes(router, userHandler, authService)
	setupVideoRoutes(router, videoHandler, commentHandler, authService)
	setupContentRoutes(router, commentHandler, likeHandler, tweetHandler, authService)
	setupPlaylistRoutes(router, playlistHandler, authService)
	setupSubscriptionRoutes(router, subscriptionHandler, authService)
	setupDashboardRoutes(router, dashboardHandler, authService)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, resolver security.AccountResolver) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/refresh", h.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(resolver))
			r.Post("/logout", h.Logout)
			r.Post("/change-password", h.ChangePassword)
			r.Get("/current-user", h.GetCurrentUser)
		})
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler, resolver security.AccountResolver) {
	r.Route("/api/v1/users", func(r chi.Router) {
		r.Post("/register", h.Register)

		r.Group(func(r chi.Router) {
			r.Use(security.OptionalJWTMiddleware(resolver))
			r.Get("/c/{username}", h.GetChannelProfile)
		})

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(resolver))
			r.Patch("/update-account", h.UpdateAccount)
			r.Patch("/avatar", h.UpdateAvatar)
			r.Patch("/cover-image", h.UpdateCoverImage)
			r.Get("/history", h.GetWatchHistory)
		})
	})
}

func setupVideoRoutes(r chi.Router, h *handler.VideoHandler, ch *handler.CommentHandler, resolver security.AccountResolver) {
	r.Route("/api/v1/videos", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(security.OptionalJWTMiddleware(resolver))
			r.Get("/", h.ListVideos)
			r.Get("/{uuid}", h.GetVideo)
			r.Get("/{videoUUID}/comments", ch.ListComments)
		})

		r.Post("/{uuid}/views", h.AddView)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(resolver))
			r.Post("/", h.PublishVideo)
			r.Patch("/{uuid}", h.UpdateVideo)
			r.Delete("/{uuid}", h.DeleteVideo)
			r.Patch("/{uuid}/toggle-publish", h.TogglePublish)
			r.Post("/{videoUUID}/comments", ch.AddComment)
		})
	})
}

func setupContentRoutes(r chi.Router, ch *handler.CommentHandler, lh *handler.LikeHandler, th *handler.TweetHandler, resolver security.AccountResolver) {
	r.Route("/api/v1/comments", func(r chi.Router) {
		r.Use(security.JWTMiddleware(resolver))
		r.Patch("/{uuid}", ch.UpdateComment)
		r.Delete("/{uuid}", ch.DeleteComment)
	})

	r.Route("/api/v1/likes", func(r chi.Router) {
		r.Get("/{kind}/{uuid}/count", lh.CountLikes)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(resolver))
			r.Post("/video/{uuid}", lh.ToggleVideoLike)
			r.Post("/comment/{uuid}", lh.ToggleCommentLike)
			r.Post("/tweet/{uuid}", lh.ToggleTweetLike)
			r.Get("/videos", lh.GetLikedVideos)
		})
	})

	r.Route("/api/v1/tweets", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(security.OptionalJWTMiddleware(resolver))
			r.Get("/user/{userUUID}", th.ListUserTweets)
		})

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(resolver))
			r.Post("/", th.CreateTweet)
			r.Patch("/{uuid}", th.UpdateTweet)
			r.Delete("/{uuid}", th.DeleteTweet)
		})
	})
}

func setupPlaylistRoutes(r chi.Router, h *handler.PlaylistHandler, resolver security.AccountResolver) {
	r.Route("/api/v1/playlists", func(r chi.Router) {
		r.Get("/{uuid}", h.GetPlaylist)
		r.Get("/user/{userUUID}", h.ListUserPlaylists)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(resolver))
			r.Post("/", h.CreatePlaylist)
			r.Patch("/{uuid}", h.UpdatePlaylist)
			r.Delete("/{uuid}", h.DeletePlaylist)
			r.Post("/{uuid}/videos/{videoUUID}", h.AddVideoToPlaylist)
			r.Delete("/{uuid}/videos/{videoUUID}", h.RemoveVideoFromPlaylist)
		})
	})
}

func setupSubscriptionRoutes(r chi.Router, h *handler.SubscriptionHandler, resolver security.AccountResolver) {
	r.Route("/api/v1/subscriptions", func(r chi.Router) {
		r.Get("/{channelUUID}/subscribers", h.GetChannelSubscribers)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(resolver))
			r.Get("/", h.GetSubscribedChannels)
			r.Post("/{channelUUID}", h.ToggleSubscription)
		})
	})
}

func setupDashboardRoutes(r chi.Router, h *handler.DashboardHandler, resolver security.AccountResolver) {
	r.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Use(security.JWTMiddleware(resolver))
		r.Get("/stats", h.GetChannelStats)
		r.Get("/videos", h.GetChannelVideos)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
