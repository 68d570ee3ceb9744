package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/ivmart/tracker-service/internal/config"
	"github.com/ivmart/tracker-service/internal/handler"
	"github.com/ivmart/tracker-service/internal/middleware"
	"github.com/ivmart/tracker-service/internal/reminder"
	"github.com/ivmart/tracker-service/internal/repository"
	"github.com/ivmart/tracker-service/internal/service"
	"github.com/ivmart/tracker-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	authSvc := service.NewAuthService(userRepo, logger, cfg)
	projectSvc := service.NewProjectService(projectRepo, taskRepo, logger)
	taskSvc := service.NewTaskService(taskRepo, projectRepo, logger)
	h := handler.NewHandler(authSvc, projectSvc, taskSvc, logger)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/auth/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/projects", h.ListProjects).Methods("GET")
	authRouter.HandleFunc("/projects", h.CreateProject).Methods("POST")
	authRouter.HandleFunc("/projects/{id}", h.GetProject).Methods("GET")
	authRouter.HandleFunc("/projects/{id}", h.UpdateProject).Methods("PUT")
	authRouter.HandleFunc("/projects/{id}", h.DeleteProject).Methods("DELETE")
	authRouter.HandleFunc("/projects/{id}/export", h.ExportProject).Methods("GET")
	authRouter.HandleFunc("/projects/{projectId}/tasks", h.ListTasks).Methods("GET")
	authRouter.HandleFunc("/projects/{projectId}/tasks", h.CreateTask).Methods("POST")
	authRouter.HandleFunc("/projects/{projectId}/tasks/{taskId}", h.GetTask).Methods("GET")
	authRouter.HandleFunc("/projects/{projectId}/tasks/{taskId}", h.UpdateTask).Methods("PUT")
	authRouter.HandleFunc("/projects/{projectId}/tasks/{taskId}", h.DeleteTask).Methods("DELETE")

	// Due-task reminder job; disabled when SMTP is not configured
	if cfg.SMTPHost != "" {
		sender := email.NewSender(cfg, logger)
		job := reminder.NewJob(taskRepo, sender, cfg.ReminderWindow, logger)
		c := cron.New()
		if _, err := c.AddJob(cfg.ReminderSchedule, job); err != nil {
			logger.Fatalf("Failed to schedule reminder job: %v", err)
		}
		c.Start()
		defer c.Stop()
		logger.Infof("Reminder job scheduled: %s", cfg.ReminderSchedule)
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
