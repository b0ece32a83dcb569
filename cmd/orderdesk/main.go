package main

import (
	"context"
	"log"
	"time"

	"github.com/Renal37/orderdesk/internal/database"
	router "github.com/Renal37/orderdesk/internal/http"
	"github.com/Renal37/orderdesk/internal/logger"
	"github.com/Renal37/orderdesk/internal/services"
	"github.com/Renal37/orderdesk/internal/utils"
)

func main() {
	ctx := context.Background()
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	db, err := database.New(ctx, config.dsn)

	if err != nil {
		log.Fatalf("Database wasn't initialized due to %s", err)
	}

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Migrations weren't run due to %s", err)
	}

	log.Printf("Running server on %s\n", config.endpoint)

	jobNumberFormat := services.JobNumberFormat{Prefix: config.jobPrefix, Digits: config.jobDigits}

	jobQueueService := services.NewJobQueueService(ctx, 100, 2)
	deadlineService := services.NewDeadlineService(db, jobQueueService, time.Duration(config.rescanMinutes)*time.Minute)

	if err := deadlineService.StartDeadlineWatch(ctx); err != nil {
		log.Fatalf("Starting deadline watch was failed due to %s", err)
	}

	utils.HandleTerminationProcess(func() {
		jobQueueService.Shutdown()
		db.Close()
	})

	router.New(
		router.Config{Endpoint: config.endpoint},
		services.NewOrderDirectoryService(db),
		services.NewAssignmentService(db, jobNumberFormat),
		services.NewWorkflowService(db),
		services.NewEmployeeService(db),
	).Run()
}
