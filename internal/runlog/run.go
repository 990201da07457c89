package runlog

import (
	"time"

	"github.com/google/uuid"

	"pkg.jsn.cam/basketgen/internal/basket"
)

// Run is the ledger record of one generation pass.
type Run struct {
	ID          string    `json:"id"`
	OutputPath  string    `json:"output_path"`
	Customers   int       `json:"customers"`
	Items       int       `json:"items"`
	MaxBasket   int       `json:"max_basket"`
	Seed        uint64    `json:"seed"`
	Lines       int64     `json:"lines"`
	Bytes       int64     `json:"bytes"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	Error       string    `json:"error,omitempty"`
}

// NewRun starts a record for p with a fresh ID.
func NewRun(p basket.Params, seed uint64) *Run {
	return &Run{
		ID:         uuid.NewString(),
		OutputPath: p.OutputPath,
		Customers:  p.Customers,
		Items:      p.Items,
		MaxBasket:  p.MaxBasket,
		Seed:       seed,
		StartedAt:  time.Now(),
	}
}

// Complete stamps the outcome of Generate onto the record.
func (r *Run) Complete(stats basket.Stats, err error) {
	r.Lines = stats.Lines
	r.Bytes = stats.Bytes
	r.CompletedAt = time.Now()
	if err != nil {
		r.Error = err.Error()
	}
}

// Status is "running", "failed" or "completed".
func (r *Run) Status() string {
	switch {
	case r.CompletedAt.IsZero():
		return "running"
	case r.Error != "":
		return "failed"
	default:
		return "completed"
	}
}

// Duration returns zero for runs that have not completed.
func (r *Run) Duration() time.Duration {
	if r.CompletedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}
