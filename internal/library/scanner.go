package library

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"imgswipe/internal/domain"
	"imgswipe/internal/eventbus"
	"imgswipe/internal/logging"
)

// ErrScanInProgress is returned when StartScan is called while a scan is running
var ErrScanInProgress = errors.New("scan already in progress")

var log = logging.NewLogger("library")

// Options controls what counts as a library image
type Options struct {
	Extensions []string
	MaxDepth   int
}

// Scanner finds images below a library root
type Scanner interface {
	Scan(ctx context.Context, root string) ([]domain.ImageRef, error)
	StartScan(ctx context.Context, root string) error
	StopScan()
	IsImage(path string) bool
}

type scanner struct {
	bus        eventbus.EventBus
	extensions map[string]bool
	maxDepth   int

	mu         sync.Mutex
	isScanning bool
	cancelFunc context.CancelFunc
	pending    string // root to rescan once the running scan finishes
	wg         sync.WaitGroup
}

// NewScanner creates a scanner. When bus is non-nil the scanner also
// serves ScanRequested and LibraryChanged events.
func NewScanner(bus eventbus.EventBus, opts Options) Scanner {
	exts := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		exts[strings.ToLower(ext)] = true
	}
	s := &scanner{
		bus:        bus,
		extensions: exts,
		maxDepth:   opts.MaxDepth,
	}

	if bus != nil {
		bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ScanRequestedEvent); ok {
				s.request(event.Root)
			}
		})
		bus.Subscribe(eventbus.EventLibraryChanged, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.LibraryChangedEvent); ok {
				s.request(event.Root)
			}
		})
	}

	return s
}

// request starts a scan, or queues one behind the scan already running so
// changes seen meanwhile are not lost
func (s *scanner) request(root string) {
	if err := s.startScan(context.Background(), root, true); err != nil {
		log.WithError(err).WithField("root", root).Debug("rescan queued")
	}
}

// StartScan scans root in the background and publishes the result as a ScanCompletedEvent
func (s *scanner) StartScan(ctx context.Context, root string) error {
	return s.startScan(ctx, root, false)
}

func (s *scanner) startScan(ctx context.Context, root string, queue bool) error {
	s.mu.Lock()
	if s.isScanning {
		if queue {
			s.pending = root
		}
		s.mu.Unlock()
		return ErrScanInProgress
	}
	s.isScanning = true

	scanCtx, cancel := context.WithCancel(ctx)
	s.cancelFunc = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	s.publish(eventbus.ScanStartedEvent{Root: root})

	go func() {
		defer s.wg.Done()
		images, err := s.Scan(scanCtx, root)

		pending := s.finish()
		cancel()

		if errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			s.publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("Failed to scan %s", root),
				Err:     err,
			})
		}
		s.publish(eventbus.ScanCompletedEvent{Root: root, Images: images, Err: err})

		if pending != "" {
			s.request(pending)
		}
	}()

	return nil
}

// finish marks the running scan as done and hands back any queued rescan
func (s *scanner) finish() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isScanning = false
	s.cancelFunc = nil
	pending := s.pending
	s.pending = ""
	return pending
}

// StopScan stops any ongoing scan
func (s *scanner) StopScan() {
	s.mu.Lock()
	s.pending = ""
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Scan walks root and returns the images found, newest first
func (s *scanner) Scan(ctx context.Context, root string) ([]domain.ImageRef, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("library root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("library root %s is not a directory", root)
	}

	var images []domain.ImageRef
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			log.WithError(err).WithField("path", path).Debug("skipping unreadable path")
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			relPath, _ := filepath.Rel(root, path)
			if strings.Count(relPath, string(filepath.Separator)) >= s.maxDepth {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") || !s.IsImage(path) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return nil
		}
		images = append(images, domain.NewImageRef(path, fi.Size(), fi.ModTime()))
		return nil
	})
	if err != nil {
		return nil, err
	}

	SortNewestFirst(images)
	log.WithField("root", root).WithField("count", len(images)).Info("library scanned")
	return images, nil
}

// IsImage reports whether path has an image extension and, when the
// sniffer recognizes the content, image content
func (s *scanner) IsImage(path string) bool {
	if !s.hasImageExtension(path) {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false
	}
	if n == 0 {
		return false
	}

	contentType := http.DetectContentType(head[:n])
	if strings.HasPrefix(contentType, "image/") {
		return true
	}
	// the sniffer has no signature for TIFF
	return contentType == "application/octet-stream" && isTIFF(head[:n])
}

func (s *scanner) hasImageExtension(path string) bool {
	return s.extensions[strings.ToLower(filepath.Ext(path))]
}

func (s *scanner) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}

func isTIFF(head []byte) bool {
	if len(head) < 4 {
		return false
	}
	return string(head[:4]) == "II*\x00" || string(head[:4]) == "MM\x00*"
}

// SortNewestFirst orders images by modification time, newest first, then by path
func SortNewestFirst(images []domain.ImageRef) {
	sort.SliceStable(images, func(i, j int) bool {
		if !images[i].ModTime.Equal(images[j].ModTime) {
			return images[i].ModTime.After(images[j].ModTime)
		}
		return images[i].Path < images[j].Path
	})
}

// Resolve builds references for explicit paths, dropping anything that is not an image
func Resolve(s Scanner, paths []string) []domain.ImageRef {
	refs := make([]domain.ImageRef, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		fi, err := os.Stat(abs)
		if err != nil || !fi.Mode().IsRegular() || !s.IsImage(abs) {
			log.WithField("path", p).Warn("ignoring non-image argument")
			continue
		}
		refs = append(refs, domain.NewImageRef(abs, fi.Size(), fi.ModTime()))
	}
	return refs
}
