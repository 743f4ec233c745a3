// Package walk lists the entries of a file tree breadth-first or depth-first.
package walk

import (
	"context"
	"io/fs"
	"iter"
	"path"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lucasgdosr/deque/v2/traverse"
)

// Order selects the traversal used by a Walker.
type Order string

const (
	BreadthFirst Order = "bfs"
	DepthFirst   Order = "dfs"
)

var ErrUnknownOrder = errors.New("unknown order")

// ParseOrder accepts "bfs" or "dfs".
func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(s)); o {
	case BreadthFirst, DepthFirst:
		return o, nil
	default:
		return "", errors.Wrapf(ErrUnknownOrder, "%q, expected %q or %q", s, BreadthFirst, DepthFirst)
	}
}

type Config struct {
	Order Order
	// MaxDepth limits descent below the root. Negative means unlimited and 0
	// reports only the root.
	MaxDepth int
	// Hidden includes names starting with a dot.
	Hidden bool
	// DirsOnly reports directories only. Files are still skipped over, not
	// descended into, so it does not change which directories are reached.
	DirsOnly bool
}

// Entry is one reported path. Path is slash separated and relative to the
// file system the Walker was built on.
type Entry struct {
	Path  string
	Depth int
	Dir   bool
}

type Walker struct {
	fsys fs.FS
	cfg  Config
	log  *zap.Logger
}

func New(fsys fs.FS, cfg Config, log *zap.Logger) (*Walker, error) {
	order, err := ParseOrder(string(cfg.Order))
	if err != nil {
		return nil, err
	}
	cfg.Order = order
	if log == nil {
		log = zap.NewNop()
	}
	return &Walker{fsys: fsys, cfg: cfg, log: log}, nil
}

// Walk calls fn for root and every entry below it, in the configured order.
// It stops at the first error returned by fn, or when ctx is done.
// Directories that cannot be read are logged and treated as empty.
func (w *Walker) Walk(ctx context.Context, root string, fn func(Entry) error) error {
	root = path.Clean(root)
	info, err := fs.Stat(w.fsys, root)
	if err != nil {
		return errors.Wrapf(err, "stat %s", root)
	}
	start := Entry{Path: root, Dir: info.IsDir()}

	for e := range w.entries(start) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if w.cfg.DirsOnly && !e.Dir {
			continue
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (w *Walker) entries(start Entry) iter.Seq[Entry] {
	roots := []Entry{start}
	if w.cfg.Order == DepthFirst {
		return traverse.DepthFirst(roots, w.children)
	}
	return traverse.BreadthFirst(roots, w.children)
}

func (w *Walker) children(e Entry) []Entry {
	if !e.Dir || (w.cfg.MaxDepth >= 0 && e.Depth >= w.cfg.MaxDepth) {
		return nil
	}

	dirEntries, err := fs.ReadDir(w.fsys, e.Path)
	if err != nil {
		w.log.Warn("skipping unreadable directory",
			zap.String("path", e.Path),
			zap.Error(err),
		)
		return nil
	}

	kids := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !w.cfg.Hidden && strings.HasPrefix(de.Name(), ".") {
			continue
		}
		kids = append(kids, Entry{
			Path:  path.Join(e.Path, de.Name()),
			Depth: e.Depth + 1,
			Dir:   de.IsDir(),
		})
	}
	w.log.Debug("expanded directory",
		zap.String("path", e.Path),
		zap.Int("children", len(kids)),
	)
	return kids
}
