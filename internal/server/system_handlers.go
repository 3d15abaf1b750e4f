package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/aristath/bazaar/internal/database"
	"github.com/aristath/bazaar/internal/events"
	"github.com/aristath/bazaar/internal/reliability"
	"github.com/aristath/bazaar/internal/scheduler"
)

// SystemStatusResponse is returned by GET /api/system/status
type SystemStatusResponse struct {
	Status         string   `json:"status"`
	UptimeSeconds  int64    `json:"uptime_seconds"`
	CPUPercent     float64  `json:"cpu_percent"`
	MemoryPercent  float64  `json:"memory_percent"`
	Goroutines     int      `json:"goroutines"`
	StreamClients  int      `json:"stream_clients"`
	Jobs           []string `json:"jobs"`
	BackupsEnabled bool     `json:"backups_enabled"`
	LastUpdated    string   `json:"last_updated"`
}

// SystemHandlers serves operational endpoints
type SystemHandlers struct {
	databases []*database.DB
	scheduler *scheduler.Scheduler
	backups   *reliability.BackupService
	bus       *events.Bus
	startedAt time.Time
	log       zerolog.Logger
}

// NewSystemHandlers creates system handlers. scheduler, backups and bus may be nil.
func NewSystemHandlers(
	databases []*database.DB,
	sched *scheduler.Scheduler,
	backups *reliability.BackupService,
	bus *events.Bus,
	log zerolog.Logger,
) *SystemHandlers {
	return &SystemHandlers{
		databases: databases,
		scheduler: sched,
		backups:   backups,
		bus:       bus,
		startedAt: time.Now(),
		log:       log.With().Str("handler", "system").Logger(),
	}
}

// RegisterRoutes registers the system routes
func (h *SystemHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/system", func(r chi.Router) {
		r.Get("/status", h.HandleSystemStatus)
		r.Get("/databases", h.HandleDatabaseStats)
		r.Get("/jobs", h.HandleListJobs)
		r.Post("/jobs/{name}", h.HandleRunJob)
		r.Get("/backups", h.HandleListBackups)
		r.Post("/backups", h.HandleCreateBackup)
	})
}

// HandleSystemStatus handles GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	cpuPercent, memPercent := h.getSystemStats()

	resp := SystemStatusResponse{
		Status:         "healthy",
		UptimeSeconds:  int64(time.Since(h.startedAt).Seconds()),
		CPUPercent:     cpuPercent,
		MemoryPercent:  memPercent,
		Goroutines:     runtime.NumGoroutine(),
		Jobs:           h.jobNames(),
		BackupsEnabled: h.backups != nil,
		LastUpdated:    time.Now().Format(time.RFC3339),
	}
	if h.bus != nil {
		resp.StreamClients = h.bus.SubscriberCount()
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// HandleDatabaseStats handles GET /api/system/databases
func (h *SystemHandlers) HandleDatabaseStats(w http.ResponseWriter, r *http.Request) {
	stats := make(map[string]*database.Stats, len(h.databases))
	for _, db := range h.databases {
		if db == nil {
			continue
		}
		s, err := db.GetStats()
		if err != nil {
			h.log.Error().Err(err).Str("database", db.Name()).Msg("Failed to get database stats")
			h.writeError(w, http.StatusInternalServerError, "failed to get database stats")
			return
		}
		stats[db.Name()] = s
	}

	h.writeJSON(w, http.StatusOK, stats)
}

// HandleListJobs handles GET /api/system/jobs
func (h *SystemHandlers) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"jobs": h.jobNames()})
}

// HandleRunJob handles POST /api/system/jobs/{name}
func (h *SystemHandlers) HandleRunJob(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if h.scheduler == nil {
		h.writeError(w, http.StatusServiceUnavailable, "scheduler not running")
		return
	}

	if err := h.scheduler.RunByName(name); err != nil {
		if errors.Is(err, scheduler.ErrUnknownJob) {
			h.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error().Err(err).Str("job", name).Msg("Manual job run failed")
		h.writeError(w, http.StatusInternalServerError, "job failed")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Job " + name + " completed",
	})
}

// HandleListBackups handles GET /api/system/backups
func (h *SystemHandlers) HandleListBackups(w http.ResponseWriter, r *http.Request) {
	if h.backups == nil {
		h.writeError(w, http.StatusServiceUnavailable, "backups are not configured")
		return
	}

	backups, err := h.backups.ListBackups(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list backups")
		h.writeError(w, http.StatusBadGateway, "failed to list backups")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"backups": backups})
}

// HandleCreateBackup handles POST /api/system/backups
func (h *SystemHandlers) HandleCreateBackup(w http.ResponseWriter, r *http.Request) {
	if h.backups == nil {
		h.writeError(w, http.StatusServiceUnavailable, "backups are not configured")
		return
	}

	info, err := h.backups.CreateAndUploadBackup(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Manual backup failed")
		h.writeError(w, http.StatusBadGateway, "backup failed")
		return
	}

	h.writeJSON(w, http.StatusCreated, info)
}

func (h *SystemHandlers) jobNames() []string {
	if h.scheduler == nil {
		return []string{}
	}
	names := h.scheduler.JobNames()
	sort.Strings(names)
	return names
}

// getSystemStats samples CPU over a short window so the call stays fast
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}

func (h *SystemHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *SystemHandlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
