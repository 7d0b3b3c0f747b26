// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"pathfinder-workers/internal/common/camunda"
	"pathfinder-workers/internal/common/config"
	"pathfinder-workers/internal/common/database"
	"pathfinder-workers/internal/common/logger"
	"pathfinder-workers/internal/common/metrics"
	"pathfinder-workers/internal/common/observability"
	"pathfinder-workers/pkg/registry"

	// Assessment Workers (4)
	at "pathfinder-workers/internal/workers/assessment/analyze-text"
	ms "pathfinder-workers/internal/workers/assessment/merge-scores"
	sp "pathfinder-workers/internal/workers/assessment/score-psychometric"
	vai "pathfinder-workers/internal/workers/assessment/validate-assessment-input"

	// Recommendation Workers (3)
	pr "pathfinder-workers/internal/workers/recommendation/project-roi"
	rp "pathfinder-workers/internal/workers/recommendation/rank-pathways"
	sg "pathfinder-workers/internal/workers/recommendation/suggest-programmes"

	// Infrastructure Workers (1)
	br "pathfinder-workers/internal/workers/infrastructure/build-report"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Load Activity Registry ---
	reg, err := registry.Load(cfg.Registry.Path)
	if err != nil {
		zapLog.Fatal("activity registry load failed", zap.Error(err))
	}
	zapLog.Info("Activity registry loaded",
		zap.String("path", cfg.Registry.Path),
		zap.Int("activities", len(reg.Activities)),
	)

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		// Test the connection with context
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- START: Register ALL 8 Workers ---

	// --- 1. Assessment Workers (4) ---
	if wc := workerSettings(cfg, vai.TaskType); wc.Enabled {
		handler := vai.NewHandler(
			&vai.Config{
				Timeout: time.Duration(wc.Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, vai.TaskType, wc, instrument(obs, vai.TaskType, handler.Handle), zapLog)
	}

	if wc := workerSettings(cfg, sp.TaskType); wc.Enabled {
		handler := sp.NewHandler(
			&sp.Config{
				Timeout: time.Duration(wc.Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, sp.TaskType, wc, instrument(obs, sp.TaskType, handler.Handle), zapLog)
	}

	if wc := workerSettings(cfg, at.TaskType); wc.Enabled {
		handler := at.NewHandler(
			&at.Config{
				MinTextLength: cfg.Assessment.MinTextLength,
				Timeout:       time.Duration(wc.Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, at.TaskType, wc, instrument(obs, at.TaskType, handler.Handle), zapLog)
	}

	if wc := workerSettings(cfg, ms.TaskType); wc.Enabled {
		handler := ms.NewHandler(
			&ms.Config{
				QuizWeight: cfg.Assessment.QuizWeight,
				TextWeight: cfg.Assessment.TextWeight,
				Timeout:    time.Duration(wc.Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, ms.TaskType, wc, instrument(obs, ms.TaskType, handler.Handle), zapLog)
	}

	// --- 2. Recommendation Workers (3) ---
	if wc := workerSettings(cfg, rp.TaskType); wc.Enabled {
		handler := rp.NewHandler(
			&rp.Config{
				Timeout: time.Duration(wc.Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, rp.TaskType, wc, instrument(obs, rp.TaskType, handler.Handle), zapLog)
	}

	if wc := workerSettings(cfg, pr.TaskType); wc.Enabled {
		handler := pr.NewHandler(
			&pr.Config{
				LowROIThreshold: cfg.Assessment.LowROIThreshold,
				Timeout:         time.Duration(wc.Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, pr.TaskType, wc, instrument(obs, pr.TaskType, handler.Handle), zapLog)
	}

	if wc := workerSettings(cfg, sg.TaskType); wc.Enabled {
		handler := sg.NewHandler(
			&sg.Config{
				MaxProgrammes: cfg.Assessment.MaxProgrammes,
				MaxCareers:    cfg.Assessment.MaxCareers,
				Timeout:       time.Duration(wc.Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, sg.TaskType, wc, instrument(obs, sg.TaskType, handler.Handle), zapLog)
	}

	// --- 3. Infrastructure Workers (1) ---
	if wc := workerSettings(cfg, br.TaskType); wc.Enabled {
		handler := br.NewHandler(
			&br.Config{
				CacheTTL: time.Duration(cfg.Assessment.ReportCacheTTL) * time.Second,
				Version:  cfg.App.Version,
				Timeout:  time.Duration(wc.Timeout) * time.Millisecond,
			},
			redis.Client, log,
		)
		startWorker(zeebeClient, br.TaskType, wc, instrument(obs, br.TaskType, handler.Handle), zapLog)
	}

	zapLog.Info("All 8 workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			status := map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			}
			code := http.StatusOK
			if err := camundaClient.HealthCheck(r.Context()); err != nil {
				status["status"] = "not ready"
				status["zeebe"] = err.Error()
				code = http.StatusServiceUnavailable
			}
			if err := redis.Ping(r.Context()); err != nil {
				status["status"] = "not ready"
				status["redis"] = err.Error()
				code = http.StatusServiceUnavailable
			}
			w.WriteHeader(code)
			json.NewEncoder(w).Encode(status)
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_ = shutdownCtx

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// workerSettings resolves per-worker settings, falling back to the Camunda
// defaults when a task type has no explicit entry. Absence means enabled;
// workers are only skipped when the config disables them by name.
func workerSettings(cfg *config.Config, taskType string) config.WorkerConfig {
	wc, ok := cfg.Workers[taskType]
	if !ok {
		return config.WorkerConfig{
			Enabled:       true,
			MaxJobsActive: cfg.Camunda.MaxJobsActive,
			Timeout:       cfg.Camunda.Timeout,
		}
	}
	if wc.MaxJobsActive == 0 {
		wc.MaxJobsActive = cfg.Camunda.MaxJobsActive
	}
	if wc.Timeout == 0 {
		wc.Timeout = cfg.Camunda.Timeout
	}
	return wc
}

// instrument wraps a job handler so every activation is counted and timed.
func instrument(obs *observability.Observability, taskType string, handlerFunc func(worker.JobClient, entities.Job)) func(worker.JobClient, entities.Job) {
	return func(client worker.JobClient, job entities.Job) {
		start := time.Now()
		handlerFunc(client, job)
		elapsed := time.Since(start)
		metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())
		ctx := context.Background()
		obs.RecordJobProcessed(ctx, taskType)
		obs.RecordJobDuration(ctx, elapsed, taskType)
	}
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(handlerFunc).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
