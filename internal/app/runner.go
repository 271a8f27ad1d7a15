package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/samvad-hq/wunderlist-go/internal/config"
	"github.com/samvad-hq/wunderlist-go/internal/domain"
	"github.com/samvad-hq/wunderlist-go/internal/logger"
	"github.com/samvad-hq/wunderlist-go/internal/storage"
	"github.com/samvad-hq/wunderlist-go/pkg/httpclient"
	"github.com/samvad-hq/wunderlist-go/pkg/publishers"
	"github.com/samvad-hq/wunderlist-go/pkg/wunderlist"
)

const defaultHistoryLimit = 20

// Dispatcher is the slice of the API client the runner needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, d wunderlist.Descriptor) (*wunderlist.Envelope, error)
}

// Runner wires together the API client, the call journal and change publishers
// and executes one CLI command.
type Runner struct {
	client    Dispatcher
	clientErr error
	store     storage.Store
	fanout    *publishers.Fanout
	log       logger.Logger
	now       func() time.Time
}

// NewRunner builds a runner from config. Missing credentials only fail
// commands that call the API.
func NewRunner(ctx context.Context, cfg *config.Config, log logger.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	apiCfg := wunderlist.Config{
		AccessToken: cfg.AccessToken,
		ClientID:    cfg.ClientID,
		BaseURL:     cfg.BaseURL,
	}
	client, clientErr := wunderlist.New(apiCfg,
		wunderlist.WithTransport(httpclient.NewRestyClient(cfg.RequestTimeout)),
		wunderlist.WithLogger(log),
	)

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storage.Options{
		RecordTTL:       cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.DebugObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"record_ttl_seconds":       int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	fanout, err := buildFanout(ctx, cfg.PublishersFile, log)
	if err != nil {
		store.Close()
		return nil, err
	}

	r := &Runner{
		clientErr: clientErr,
		store:     store,
		fanout:    fanout,
		log:       log,
		now:       time.Now,
	}
	if clientErr == nil {
		r.client = client
	}
	return r, nil
}

func buildFanout(ctx context.Context, path string, log logger.Logger) (*publishers.Fanout, error) {
	if path == "" {
		return publishers.NewFanout(nil), nil
	}

	publisherReg, err := publishers.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}
	enabled := publisherReg.Enabled()

	pubClients, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}

	summaries := make([]map[string]string, 0, len(enabled))
	for _, pubCfg := range enabled {
		summaries = append(summaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.DebugObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(summaries),
		"publishers": summaries,
	})
	return publishers.NewFanout(pubClients), nil
}

// Close releases the journal and publishers.
func (r *Runner) Close() error {
	if r == nil {
		return nil
	}
	var errs []error
	if r.store != nil {
		if err := r.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	if err := r.fanout.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Run executes the command in args and writes its output to out.
func (r *Runner) Run(ctx context.Context, args []string, out io.Writer) error {
	if r == nil {
		return fmt.Errorf("runner is not initialized")
	}
	if len(args) == 0 {
		return writeUsage(out)
	}

	switch args[0] {
	case "help", "-h", "--help":
		return writeUsage(out)
	case "ops":
		return writeOperations(out)
	case "history":
		return r.history(out, args[1:])
	default:
		return r.invoke(ctx, out, args[0], args[1:])
	}
}

func (r *Runner) invoke(ctx context.Context, out io.Writer, name string, rawArgs []string) error {
	op, ok := wunderlist.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q (run \"ops\" for the list)", wunderlist.ErrUnknownOperation, name)
	}
	if r.clientErr != nil {
		return r.clientErr
	}

	args, err := parseArgs(rawArgs)
	if err != nil {
		return err
	}
	d, err := op.Build(args)
	if err != nil {
		return err
	}

	start := r.now()
	env, callErr := r.client.Dispatch(ctx, d)
	rec := domain.CallRecord{
		Operation: op.Name,
		Method:    d.Method,
		Path:      d.Path,
		ElapsedMs: r.now().Sub(start).Milliseconds(),
		At:        start.UTC(),
	}
	if callErr != nil {
		rec.Error = callErr.Error()
	} else {
		rec.StatusCode = env.StatusCode
	}

	rec, err = r.store.Record(rec)
	if err != nil {
		r.log.WarnObj("journal write failed", "journal_error", map[string]any{
			"operation": op.Name,
			"error":     err.Error(),
		})
	}

	if callErr != nil {
		return fmt.Errorf("%s: %w", op.Name, callErr)
	}

	switch {
	case env.IsRemoteError():
		// The service rejected the call, so nothing changed.
		r.log.WarnObj("service answered with an error status", "remote_error", map[string]any{
			"operation": op.Name,
			"status":    env.StatusCode,
		})
	case op.Mutating():
		r.publish(ctx, rec)
	}

	return writeEnvelope(out, env)
}

// publish notifies sinks of a mutation. Failures are logged, never returned.
func (r *Runner) publish(ctx context.Context, rec domain.CallRecord) {
	if r.fanout.Size() == 0 {
		return
	}
	n, err := r.fanout.Publish(ctx, publishers.NewEvent(rec))
	if err != nil {
		r.log.ErrorObj("change notification failed", "publish_error", map[string]any{
			"operation":  rec.Operation,
			"successful": n,
			"error":      err.Error(),
		})
		return
	}
	r.log.DebugObj("change notification published", "publish_result", map[string]any{
		"operation":  rec.Operation,
		"successful": n,
	})
}

func (r *Runner) history(out io.Writer, args []string) error {
	limit := defaultHistoryLimit
	if len(args) > 0 {
		n, err := parseLimit(args[0])
		if err != nil {
			return err
		}
		limit = n
	}

	recs, err := r.store.Recent(limit)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	return writeHistory(out, recs)
}
