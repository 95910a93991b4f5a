package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/blackash/todo-api/internal/config"
	"github.com/blackash/todo-api/internal/handler"
	"github.com/blackash/todo-api/internal/mail"
	"github.com/blackash/todo-api/internal/middleware"
	"github.com/blackash/todo-api/internal/repository"
	"github.com/blackash/todo-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := repository.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		slog.Error("creating user indexes failed", "error", err)
		os.Exit(1)
	}

	var codes repository.OTPStore
	if cfg.RedisAddr != "" {
		rs := repository.NewRedisOTPStore(cfg.RedisAddr, cfg.OTPTTL)
		if err := rs.Ping(context.Background()); err != nil {
			slog.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		codes = rs
		slog.Info("otp store: redis", "addr", cfg.RedisAddr)
	} else {
		codes = repository.NewMemoryOTPStore(cfg.OTPTTL)
		slog.Info("otp store: in-memory", "ttl", cfg.OTPTTL)
	}

	var sender mail.Sender = mail.LogSender{}
	if cfg.SMTPHost != "" {
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	todoService := service.NewTodoService(userRepo)
	otpService := service.NewOTPService(codes, sender, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)
	otpHandler := handler.NewOTPHandler(otpService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/signout", authHandler.HandleSignout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/register/", authHandler.HandleRegister)
		r.Post("/api/login/", authHandler.HandleLogin)
		r.Post("/api/register-otp", otpHandler.HandleRequestOTP)
		r.Post("/api/verify-otp", otpHandler.HandleVerifyOTP)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/username/", authHandler.HandleUsername)
		r.Get("/api/user/profile/", authHandler.HandleProfile)

		r.Put("/api/user/todos", todoHandler.HandleAddTodo)
		r.Get("/api/user/todos", todoHandler.HandleListTodos)
		r.Patch("/api/user/todos", todoHandler.HandleUpdateTodo)
		r.Delete("/api/user/todos/{id}", todoHandler.HandleDeleteTodo)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
