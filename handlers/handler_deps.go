package handlers

import (
	"github.com/sirupsen/logrus"

	"videothingy/chapter-viewer/internal/query"
)

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Exec   query.Executor
	Logger *logrus.Logger
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(exec query.Executor, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Exec:   exec,
		Logger: logger,
	}
}
