package trainer

import (
	"fmt"
	"log"
	"os"
)

import "github.com/google/uuid"

// Trainer holds the training-loop hyperparameters.
type Trainer struct {
	Epochs int // number of passes over the training set

	BatchSize int // sequences per training step (default: 32)

	// Patience is how many epochs without validation improvement to
	// tolerate before stopping early. Zero disables early stopping.
	Patience int

	Seed int64 // base seed for the per-epoch sample permutation

	// Name tags auto-named checkpoint files. A random run id is used
	// when empty.
	Name string

	EvalLimit int // goroutine limit for evaluation, 0 means one per core

	l *log.Logger
}

// SetLogger sets the output logger file where training progress is written
func (t *Trainer) SetLogger(filename string) {
	outfile, _ := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	t.l = log.New(outfile, "", 0)
}

func (t *Trainer) logf(format string, args ...interface{}) {
	if t.l != nil {
		t.l.Printf(format, args...)
		return
	}
	fmt.Printf(format, args...)
}

func (t *Trainer) batchSize() int {
	if t.BatchSize <= 0 {
		return 32
	}
	return t.BatchSize
}

func (t *Trainer) name() string {
	if t.Name == "" {
		t.Name = uuid.New().String()[:8]
	}
	return t.Name
}
