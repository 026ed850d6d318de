package rentdb

import (
	"log/slog"

	"github.com/rentdb/rentdb/fio"
	"github.com/rentdb/rentdb/keydir"
)

type options struct {
	dirPath string

	syncOnWrite bool

	ioManagerCreator func(file string) (fio.IOManager, error)
	keydirCreator    func() keydir.Keydir
	logger           *slog.Logger
}

type Option func(*options)

func defaultOptions() *options {
	return &options{
		dirPath: ".",
		ioManagerCreator: func(file string) (fio.IOManager, error) {
			return fio.NewFileIO(file)
		},
		keydirCreator: func() keydir.Keydir {
			return keydir.NewBTree(0)
		},
		logger: slog.Default(),
	}
}

// WithDirPath sets the directory holding the entity files.
func WithDirPath(dirPath string) Option {
	return func(o *options) {
		o.dirPath = dirPath
	}
}

// WithIOManagerCreator overrides how per-entity file handles are opened.
func WithIOManagerCreator(fn func(file string) (fio.IOManager, error)) Option {
	return func(o *options) {
		o.ioManagerCreator = fn
	}
}

// WithKeydirCreator overrides the in-memory index built per store.
func WithKeydirCreator(fn func() keydir.Keydir) Option {
	return func(o *options) {
		o.keydirCreator = fn
	}
}

// WithoutKeydir disables the in-memory index; every lookup then falls
// back to a linear file scan.
func WithoutKeydir() Option {
	return func(o *options) {
		o.keydirCreator = nil
	}
}

// WithSyncOnWrite forces a durable sync after every mutating operation.
func WithSyncOnWrite() Option {
	return func(o *options) {
		o.syncOnWrite = true
	}
}

// WithLogger sets the structured logger used by the stores.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
