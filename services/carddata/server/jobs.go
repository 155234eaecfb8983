package server

import (
	"sync"
	"time"

	"smashup-backend/services/carddata/scraper"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobRunning  JobStatus = "running"
	JobComplete JobStatus = "complete"
)

// Job tracks one background scrape from launch to completion. Result
// is nil while the scrape is still running.
type Job struct {
	ID        string          `json:"job_id"`
	Status    JobStatus       `json:"status"`
	StartedAt int64           `json:"started_at"`
	Result    *scraper.Result `json:"result,omitempty"`
}

type jobRegistry struct {
	mu   sync.Mutex
	jobs map[string]*Job
}

func newJobRegistry() *jobRegistry {
	return &jobRegistry{jobs: map[string]*Job{}}
}

func (r *jobRegistry) start() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.jobs[id] = &Job{
		ID:        id,
		Status:    JobRunning,
		StartedAt: time.Now().Unix(),
	}
	return id
}

func (r *jobRegistry) complete(id string, result scraper.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return
	}
	job.Status = JobComplete
	job.Result = &result
}

func (r *jobRegistry) get(id string) (Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}
