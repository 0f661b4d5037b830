// Package scheduler runs keyed periodic and one-shot jobs. Each key owns at most
// one job; starting a key again replaces whatever ran under it.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/dispatch/internal/pkg/logger"
	nrpkg "github.com/piresc/dispatch/internal/pkg/newrelic"
)

// ErrStop is returned by a job that wants to remove itself
var ErrStop = errors.New("scheduler: stop job")

// DefaultMaxConsecutiveFailures is used when Options leaves the limit unset
const DefaultMaxConsecutiveFailures = 5

// JobFunc is one run of a job. The context is cancelled when the job is replaced,
// cancelled or the arena stops.
type JobFunc func(ctx context.Context) error

// Options configures an Arena
type Options struct {
	MaxConsecutiveFailures int
	NewRelic               *newrelic.Application
	Logger                 *logger.ZapLogger
}

type jobKeyCtx struct{}

// JobKey returns the key of the job whose run ctx belongs to, empty outside the arena
func JobKey(ctx context.Context) string {
	key, _ := ctx.Value(jobKeyCtx{}).(string)
	return key
}

type job struct {
	id     uint64
	cancel context.CancelFunc
}

// Arena owns every timer of the process
type Arena struct {
	mu     sync.Mutex
	jobs   map[string]*job
	nextID uint64
	closed bool

	root   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	maxFailures int
	nrApp       *newrelic.Application
	log         *logger.ZapLogger
}

// NewArena creates an empty arena
func NewArena(opts Options) *Arena {
	if opts.MaxConsecutiveFailures <= 0 {
		opts.MaxConsecutiveFailures = DefaultMaxConsecutiveFailures
	}
	if opts.Logger == nil {
		opts.Logger = logger.GetGlobalLogger()
	}

	root, cancel := context.WithCancel(context.Background())
	return &Arena{
		jobs:        make(map[string]*job),
		root:        root,
		cancel:      cancel,
		maxFailures: opts.MaxConsecutiveFailures,
		nrApp:       opts.NewRelic,
		log:         opts.Logger.Named("scheduler"),
	}
}

// Every runs fn each interval, first after one interval has elapsed.
// It returns false when the arena is stopped or the interval is not positive.
func (a *Arena) Every(key string, interval time.Duration, fn JobFunc) bool {
	if interval <= 0 {
		return false
	}
	return a.start(key, func(ctx context.Context) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		failures := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			err := a.run(ctx, key, fn)
			switch {
			case errors.Is(err, ErrStop):
				return
			case ctx.Err() != nil:
				return
			case err != nil:
				failures++
				a.log.Warn("Job run failed",
					logger.String("key", key),
					logger.Int("consecutive_failures", failures),
					logger.Err(err))
				if failures >= a.maxFailures {
					a.log.Error("Job stopped after repeated failures",
						logger.String("key", key),
						logger.Int("consecutive_failures", failures))
					return
				}
			default:
				failures = 0
			}
		}
	})
}

// After runs fn once after delay unless the key is cancelled or replaced first
func (a *Arena) After(key string, delay time.Duration, fn JobFunc) bool {
	return a.start(key, func(ctx context.Context) {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if err := a.run(ctx, key, fn); err != nil && !errors.Is(err, ErrStop) {
			a.log.Warn("One-shot job failed", logger.String("key", key), logger.Err(err))
		}
	})
}

// Cancel stops the job under key. It reports whether one was running.
func (a *Arena) Cancel(key string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	j, ok := a.jobs[key]
	if !ok {
		return false
	}
	delete(a.jobs, key)
	j.cancel()
	return true
}

// Running reports whether a job is registered under key
func (a *Arena) Running(key string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.jobs[key]
	return ok
}

// Keys lists the registered keys with the given prefix, sorted
func (a *Arena) Keys(prefix string) []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	keys := make([]string, 0, len(a.jobs))
	for k := range a.jobs {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Stop cancels every job and waits for running ones to return
func (a *Arena) Stop() {
	a.mu.Lock()
	a.closed = true
	for key, j := range a.jobs {
		j.cancel()
		delete(a.jobs, key)
	}
	a.mu.Unlock()

	a.cancel()
	a.wg.Wait()
}

func (a *Arena) start(key string, loop func(ctx context.Context)) bool {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return false
	}
	if old, ok := a.jobs[key]; ok {
		old.cancel()
	}

	a.nextID++
	ctx, cancel := context.WithCancel(a.root)
	j := &job{id: a.nextID, cancel: cancel}
	a.jobs[key] = j
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()
		defer a.release(key, j)
		loop(context.WithValue(ctx, jobKeyCtx{}, key))
	}()
	return true
}

// release drops the registration only if it still belongs to j
func (a *Arena) release(key string, j *job) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if cur, ok := a.jobs[key]; ok && cur.id == j.id {
		delete(a.jobs, key)
	}
	j.cancel()
}

func (a *Arena) run(ctx context.Context, key string, fn JobFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", key, r)
		}
	}()
	return nrpkg.RunBackground(ctx, a.nrApp, "job/"+jobFamily(key), fn)
}

// jobFamily keeps transaction names bounded, "ride:123:abc" becomes "ride"
func jobFamily(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
