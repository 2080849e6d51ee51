package viewstate

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"videothingy/chapter-viewer/internal/query"
	"videothingy/chapter-viewer/models"
)

// ListState is a snapshot of the video list view.
type ListState struct {
	Status Status         `json:"status"`
	Videos []models.Video `json:"videos"`
	Err    error          `json:"-"`
}

// Message is the text of the error panel, empty unless Failed.
func (s ListState) Message() string {
	return messageOr(s.Err, "Failed to fetch videos")
}

// ListView loads every video once. There is no refresh: once settled, the
// state is terminal.
type ListView struct {
	exec query.Executor
	log  *logrus.Entry

	mu    sync.Mutex
	state ListState
}

// NewListView creates an idle list view. A nil logger discards its logs.
func NewListView(exec query.Executor, logger *logrus.Logger) *ListView {
	return &ListView{exec: exec, log: viewLogger(logger, "list")}
}

// State returns the current snapshot.
func (v *ListView) State() ListState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Load fetches all videos ordered by creation time, newest first. Only the
// first call queries; later calls return the current state.
func (v *ListView) Load(ctx context.Context) ListState {
	v.mu.Lock()
	if v.state.Status != StatusIdle {
		st := v.state
		v.mu.Unlock()
		return st
	}
	v.state.Status = StatusLoading
	v.mu.Unlock()

	var videos []models.Video
	_, err := v.exec.Execute(ctx, ListVideosQuery(), &videos)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.log.WithError(err).Error("Failed to fetch videos")
		v.state = ListState{Status: StatusFailed, Err: err}
		return v.state
	}
	if videos == nil {
		videos = []models.Video{}
	}
	v.log.Infof("Fetched %d videos", len(videos))
	v.state = ListState{Status: StatusSuccess, Videos: videos}
	return v.state
}

func viewLogger(logger *logrus.Logger, view string) *logrus.Entry {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return logger.WithField("view", view)
}
