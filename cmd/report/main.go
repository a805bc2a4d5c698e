// Command report exports submission outcome counts from the audit table as an
// Excel workbook, optionally uploading it to S3-compatible storage.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"clinic-booking-backend/config"
	"clinic-booking-backend/internal/repository/postgres"
	"clinic-booking-backend/internal/usecase"
	"clinic-booking-backend/pkg/database"
	"clinic-booking-backend/pkg/logger"
	"clinic-booking-backend/pkg/storage"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func main() {
	days := flag.Int("days", 30, "Report window in days, counted back from now")
	outDir := flag.String("out", ".", "Directory the workbook is written to")
	upload := flag.Bool("upload", false, "Upload the workbook to REPORT_BUCKET")
	flag.Parse()

	if *days <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -days must be positive")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel)

	if cfg.DBUrl == "" {
		logger.Log.Error("DATABASE_URL is required for reports")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	reports := usecase.NewReportUsecase(postgres.NewSubmissionEventRepository(pool), nil)
	since := time.Now().In(cfg.Location).AddDate(0, 0, -*days)

	data, filename, err := reports.OutcomeReport(ctx, since)
	if err != nil {
		logger.Log.Error("Failed to build report", "error", err)
		os.Exit(1)
	}

	path := filepath.Join(*outDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Log.Error("Failed to write report", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Report written", "path", path, "since", since.Format(time.RFC3339))

	if !*upload {
		return
	}

	s3Cfg := storage.Config{
		Provider:        storage.Provider(cfg.S3Provider),
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.ReportBucket,
		Endpoint:        cfg.S3Endpoint,
	}
	client, err := storage.NewClient(ctx, s3Cfg)
	if err != nil {
		logger.Log.Error("Failed to create storage client", "error", err)
		os.Exit(1)
	}
	uri, err := storage.Upload(ctx, client, s3Cfg.Bucket, "reports/"+filename, data, xlsxContentType)
	if err != nil {
		logger.Log.Error("Failed to upload report", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Report uploaded", "uri", uri)
}
