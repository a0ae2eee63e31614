package spritegen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Job selects one sprite to generate. Exactly one of Debuff and Ruin must be set.
type Job struct {
	Debuff *DebuffConfig `json:"debuff,omitempty" yaml:"debuff,omitempty"`
	Ruin   *RuinConfig   `json:"ruin,omitempty" yaml:"ruin,omitempty"`
}

// Result holds the outcome of one batch job.
type Result struct {
	Index int
	Job   Job
	Desc  *SpriteDescriptor
	Err   error
}

// Batch generates many sprites concurrently.
// Options.Rand is ignored: every job gets its own source derived from Seed,
// so the output does not depend on the scheduling of the workers.
// A zero Seed uses the shared, unseeded source.
type Batch struct {
	Options
	Seed    int64
	Workers int
}

// Run generates the jobs and returns their results in job order. The returned
// error joins the errors of the failed jobs. Pending jobs are abandoned when ctx is done.
func (b *Batch) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	workers := b.Workers
	// Limit the concurrently running workers to maxWorkers.
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	var wg sync.WaitGroup
	ch := make(chan Result)
	done := make(chan struct{})
	defer close(done)

	indexes := b.produce(done, len(jobs))

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			b.consume(jobs, ch, done, indexes)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	results := make([]Result, len(jobs))
	var errs []error
	received := 0
	for received < len(jobs) {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		case res, ok := <-ch:
			if !ok {
				return results, errors.Join(errs...)
			}
			results[res.Index] = res
			if res.Err != nil {
				errs = append(errs, fmt.Errorf("job %d: %w", res.Index, res.Err))
			}
			received++
		}
	}
	return results, errors.Join(errs...)
}

// produce sends the job indexes to a new channel until done is closed.
func (b *Batch) produce(done <-chan struct{}, n int) <-chan int {
	indexes := make(chan int)
	go func() {
		defer close(indexes)
		for i := 0; i < n; i++ {
			select {
			case <-done:
				return
			case indexes <- i:
			}
		}
	}()
	return indexes
}

// consume generates the jobs read from the indexes channel.
func (b *Batch) consume(jobs []Job, res chan<- Result, done <-chan struct{}, indexes <-chan int) {
	for i := range indexes {
		desc, err := b.generate(i, jobs[i])

		select {
		case <-done:
			return
		case res <- Result{Index: i, Job: jobs[i], Desc: desc, Err: err}:
		}
	}
}

func (b *Batch) generate(i int, job Job) (*SpriteDescriptor, error) {
	opts := b.Options
	opts.Rand = nil
	if b.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(b.Seed + int64(i)))
	}

	switch {
	case job.Debuff != nil && job.Ruin != nil:
		return nil, errors.New("job sets both debuff and ruin")
	case job.Debuff != nil:
		return NewDebuffIconGenerator(opts).Generate(*job.Debuff)
	case job.Ruin != nil:
		return NewRuinGenerator(opts).Generate(*job.Ruin)
	}
	return nil, errors.New("job sets neither debuff nor ruin")
}
