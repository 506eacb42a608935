package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"google.golang.org/grpc"

	registryv1 "devproc/api/registry/v1"
	"devproc/internal/config"
	"devproc/internal/dnscache"
	"devproc/internal/metrics"
	"devproc/internal/process"
)

// StartOptions configures StartDaemon.
type StartOptions struct {
	// Config is a path or config name; empty selects the default files.
	Config   string
	BasePort int
	// MetricsAddr enables the /metrics endpoint when not empty.
	MetricsAddr string
	// WatchConfig reloads the registry when the config file changes.
	WatchConfig bool
	// SnapshotPath overrides SnapshotPath(); "-" disables persistence.
	SnapshotPath string

	Resolver *config.Resolver
	Logger   *slog.Logger
}

// Server wraps the UNIX listener and everything the daemon owns.
type Server struct {
	path         string
	snapshotPath string
	basePort     int

	grpc        *grpc.Server
	metrics     *http.Server
	metricsAddr string
	watcher     *fsnotify.Watcher

	resolver  *config.Resolver
	cache     *dnscache.Cache
	collector *metrics.Collector
	logger    *slog.Logger

	mu  sync.RWMutex
	cfg *config.Config

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// StartDaemon resolves the configuration, seeds the name registry and serves
// it over gRPC on the UNIX socket.
func StartDaemon(opts StartOptions) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	resolver := opts.Resolver
	if resolver == nil {
		r, err := config.DefaultResolver()
		if err != nil {
			return nil, err
		}
		r.Logger = logger
		resolver = r
	}
	basePort := opts.BasePort
	if basePort <= 0 {
		basePort = config.DefaultBasePort
	}

	cfg, err := resolver.Resolve(opts.Config, basePort)
	if err != nil {
		return nil, err
	}

	snapshotPath := opts.SnapshotPath
	switch snapshotPath {
	case "":
		snapshotPath = SnapshotPath()
	case "-":
		snapshotPath = ""
	}

	collector := metrics.NewCollector("")
	cache := dnscache.New(cfg.ProcessesWithPort(), dnscache.WithObserver(collector))
	if snapshotPath != "" {
		restored, err := cache.LoadSnapshot(snapshotPath)
		if err != nil {
			logger.Warn("ignoring unreadable snapshot", "path", snapshotPath, "error", err)
		} else if restored > 0 {
			logger.Info("restored labels from snapshot", "count", restored)
		}
	}
	collector.SetConfiguredProcesses(len(cfg.Processes))

	s := &Server{
		snapshotPath: snapshotPath,
		basePort:     basePort,
		resolver:     resolver,
		cache:        cache,
		collector:    collector,
		logger:       logger,
		cfg:          cfg,
		done:         make(chan struct{}),
	}

	if err := s.listen(); err != nil {
		return nil, err
	}
	if opts.MetricsAddr != "" {
		if err := s.serveMetrics(opts.MetricsAddr); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	if opts.WatchConfig {
		if err := s.watch(); err != nil {
			_ = s.Close()
			return nil, err
		}
	}

	logger.Info("daemon started",
		"socket", s.path,
		"config", cfg.Filename,
		"labels", cache.Len(),
	)
	return s, nil
}

func (s *Server) listen() error {
	if err := EnsureRuntimeDir(); err != nil {
		return err
	}
	path := SocketPath()

	// If stale socket file exists but daemon is not running, remove it
	if _, err := os.Stat(path); err == nil {
		if IsRunning() {
			return fmt.Errorf("daemon already running on %s", path)
		}
		if err := os.Remove(path); err != nil {
			return err
		}
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return err
	}
	if err := os.Chmod(path, 0o600); err != nil {
		ln.Close()
		return err
	}
	s.path = path

	if err := WritePID(os.Getpid()); err != nil {
		ln.Close()
		return err
	}

	s.grpc = grpc.NewServer()
	registryv1.RegisterNameRegistryServer(s.grpc, newService(s.cache, s.Processes, s.snapshotPath, s.logger))
	go func() {
		if err := s.grpc.Serve(ln); err != nil {
			s.logger.Error("grpc server stopped", "error", err)
		}
	}()
	return nil
}

func (s *Server) serveMetrics(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listen %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.collector.Handler())
	s.metrics = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := s.metrics.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server stopped", "error", err)
		}
	}()
	s.metricsAddr = ln.Addr().String()
	s.logger.Info("metrics endpoint enabled", "addr", s.metricsAddr)
	return nil
}

// watch follows the config file's directory so that editors replacing the
// file by rename are still noticed.
func (s *Server) watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	target := filepath.Clean(s.Config().Filename)
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", target, err)
	}
	s.watcher = w

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-s.done:
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if _, err := s.Reload(); err != nil {
					s.logger.Warn("config reload failed", "file", target, "error", err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn("config watcher error", "error", err)
			}
		}
	}()
	return nil
}

// Reload re-resolves the loaded config file and upserts every ported label
// whose port is new or changed. It returns the number of labels written.
// Labels added at runtime are kept.
func (s *Server) Reload() (int, error) {
	current := s.Config()
	cfg, err := s.resolver.Resolve(current.Filename, s.basePort)
	if err != nil {
		return 0, err
	}

	known := s.cache.Snapshot()
	changed := 0
	for _, p := range cfg.ProcessesWithPort() {
		if e, ok := known[p.Label]; ok && e.Port == p.Port {
			continue
		}
		s.cache.Add(p.Label, p.Port)
		changed++
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	s.collector.SetConfiguredProcesses(len(cfg.Processes))

	s.logger.Info("configuration reloaded", "file", cfg.Filename, "processes", len(cfg.Processes), "changed", changed)
	return changed, nil
}

// Config returns the currently loaded configuration.
func (s *Server) Config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Processes returns the processes of the current configuration.
func (s *Server) Processes() []process.Process {
	return s.Config().Processes
}

// Cache exposes the name registry.
func (s *Server) Cache() *dnscache.Cache {
	return s.cache
}

// SocketPath returns the socket the server listens on.
func (s *Server) SocketPath() string {
	return s.path
}

// MetricsAddr returns the bound metrics address, empty when disabled.
func (s *Server) MetricsAddr() string {
	return s.metricsAddr
}

// Close stops the server, persists the registry and unlinks socket and pid file.
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		var errs []error
		if s.watcher != nil {
			errs = append(errs, s.watcher.Close())
		}
		s.wg.Wait()
		if s.metrics != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			errs = append(errs, s.metrics.Shutdown(ctx))
			cancel()
		}
		if s.grpc != nil {
			s.grpc.Stop()
		}
		if s.snapshotPath != "" {
			errs = append(errs, s.cache.SaveSnapshot(s.snapshotPath))
		}
		if s.path != "" {
			if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, err)
			}
			errs = append(errs, RemovePID())
		}
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}

// StopRunningDaemon sends a termination signal to the currently running daemon if any.
func StopRunningDaemon(force bool) error {
	pid, err := RunningPID()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if IsRunning() {
				return fmt.Errorf("daemon is running but PID file %q is missing; stop it manually", PIDPath())
			}
			return nil
		}
		return fmt.Errorf("unable to read daemon PID: %w", err)
	}
	if pid == os.Getpid() {
		return errors.New("refusing to stop current process")
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if err := sendSignal(proc, syscall.SIGTERM); err != nil {
		return err
	}
	if waitForShutdown(3 * time.Second) {
		return nil
	}
	if !force {
		return fmt.Errorf("daemon process %d did not exit after SIGTERM", pid)
	}
	if err := sendSignal(proc, syscall.SIGKILL); err != nil {
		return err
	}
	if waitForShutdown(2 * time.Second) {
		return nil
	}
	return fmt.Errorf("daemon process %d did not exit after SIGKILL", pid)
}

func sendSignal(proc *os.Process, sig syscall.Signal) error {
	if err := proc.Signal(sig); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			_ = RemovePID()
			return nil
		}
		return err
	}
	return nil
}

func waitForShutdown(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if !IsRunning() {
			_ = RemovePID()
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(100 * time.Millisecond)
	}
}
