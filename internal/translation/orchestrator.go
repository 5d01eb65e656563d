package translation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"codeberg.org/snonux/glossa/internal/lexicon"
	"codeberg.org/snonux/glossa/internal/script"
)

const (
	// DefaultTimeout bounds the remote call of a single Resolve.
	DefaultTimeout = 3 * time.Second

	// UnavailableMessage is the message of every StatusError result.
	UnavailableMessage = "Translation unavailable"
)

// Result is the outcome of a Resolve call. Text and Phonetic are empty for
// StatusIdle and StatusError.
type Result struct {
	Text     string
	Phonetic string
	Status   Status
}

// StatusHook observes every status a request passes through, including
// StatusLoading before the remote call.
type StatusHook func(requestID string, status Status)

// Orchestrator applies the resolution policy: lexicon, then Greek script
// short-circuit, then one remote call. It holds no per-request state and is
// safe for concurrent use.
type Orchestrator struct {
	lexicon *lexicon.Lexicon
	remote  Remote
	timeout time.Duration
	hook    StatusHook
	logger  *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTimeout sets the deadline of the remote call.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithStatusHook registers hook for status transitions.
func WithStatusHook(hook StatusHook) Option {
	return func(o *Orchestrator) {
		o.hook = hook
	}
}

// WithLogger sets the logger; slog.Default() is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOrchestrator creates an Orchestrator. A nil remote makes every request
// that reaches the remote step fail, which is how offline mode works.
func NewOrchestrator(lex *lexicon.Lexicon, remote Remote, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		lexicon: lex,
		remote:  remote,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Resolve translates text in direction dir. It never returns an error;
// failures are reported as StatusError with UnavailableMessage.
func (o *Orchestrator) Resolve(ctx context.Context, text string, dir Direction) Result {
	requestID := uuid.NewString()
	logger := o.logger.With("request_id", requestID, "direction", dir.String())

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return o.finish(requestID, Result{Status: Status{Kind: StatusIdle}})
	}

	if dir == EnglishToGreek {
		if o.lexicon != nil {
			if hit, ok := o.lexicon.Translate(trimmed); ok {
				logger.Debug("dictionary hit", "input", trimmed, "english", hit.English, "greek", hit.Greek)
				return o.finish(requestID, Result{
					Text:     hit.Greek,
					Phonetic: hit.Phonetic,
					Status:   Status{Kind: StatusDictionary},
				})
			}
		}

		if script.ContainsGreek(trimmed) {
			logger.Debug("input is already Greek", "input", trimmed)
			return o.finish(requestID, Result{
				Text:     trimmed,
				Phonetic: script.Transliterate(trimmed),
				Status:   Status{Kind: StatusDetectedGreek},
			})
		}
	}

	o.emit(requestID, Status{Kind: StatusLoading})

	if o.remote == nil {
		logger.Warn("no remote translator configured", "input", trimmed)
		return o.finish(requestID, Result{Status: ErrorStatus(UnavailableMessage)})
	}

	source, target := dir.Languages()
	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	translated, err := o.callRemote(callCtx, trimmed, source, target)
	elapsed := time.Since(start)
	if err != nil {
		logger.Warn("remote translation failed",
			"remote", o.remote.Name(), "input", trimmed, "elapsed", elapsed, "error", err)
		return o.finish(requestID, Result{Status: ErrorStatus(UnavailableMessage)})
	}

	translated = strings.TrimSpace(translated)
	if translated == "" || translated == trimmed {
		logger.Warn("remote translation rejected",
			"remote", o.remote.Name(), "input", trimmed, "output", translated)
		return o.finish(requestID, Result{Status: ErrorStatus(UnavailableMessage)})
	}

	logger.Debug("machine translation", "remote", o.remote.Name(), "input", trimmed,
		"output", translated, "elapsed", elapsed)
	return o.finish(requestID, Result{
		Text:     translated,
		Phonetic: script.Transliterate(translated),
		Status:   Status{Kind: StatusMachine},
	})
}

type remoteReply struct {
	text string
	err  error
}

// callRemote returns when the remote answers or ctx is done, whichever comes
// first. A remote that ignores ctx is left to finish in the background.
func (o *Orchestrator) callRemote(ctx context.Context, text, source, target string) (string, error) {
	replies := make(chan remoteReply, 1)
	go func() {
		translated, err := o.remote.Translate(ctx, text, source, target)
		replies <- remoteReply{translated, err}
	}()

	select {
	case r := <-replies:
		if r.err == nil && ctx.Err() != nil {
			return "", ctx.Err()
		}
		return r.text, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (o *Orchestrator) finish(requestID string, r Result) Result {
	o.emit(requestID, r.Status)
	return r
}

func (o *Orchestrator) emit(requestID string, s Status) {
	if o.hook != nil {
		o.hook(requestID, s)
	}
}
