package deps

import (
	"sync_assets/util/tw"

	"github.com/sirupsen/logrus"
)

// Global represents global dependencies holder interface
type Global interface {
	Log() *logrus.Logger
	TW() tw.Writer
}
