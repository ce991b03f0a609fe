package syncer

import (
	"sync_assets/util/tw"

	"github.com/sirupsen/logrus"
)

// repo represents dependencies holder for this package
type repo struct {
	log   *logrus.Logger
	tw    tw.Writer
	roots Roots
}

// NewRepo returns new dependencies holder for this package
func NewRepo(log *logrus.Logger, tw tw.Writer, roots Roots) repo {
	return repo{log: log, tw: tw, roots: roots}
}

// Log used to satisfy deps.Global interface
func (r repo) Log() *logrus.Logger {
	return r.log
}

// TW used to satisfy deps.Global interface
func (r repo) TW() tw.Writer {
	return r.tw
}

// Roots returns base directories entries are resolved against
func (r repo) Roots() Roots {
	return r.roots
}
