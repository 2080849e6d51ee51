package viewstate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"videothingy/chapter-viewer/internal/query"
	"videothingy/chapter-viewer/models"
)

var validate = validator.New()

type detailRequest struct {
	VideoID string `validate:"required"`
	Page    int    `validate:"min=1"`
}

// DetailState is a snapshot of the detail view for one request.
type DetailState struct {
	Status     Status           `json:"status"`
	Request    uint64           `json:"request"`
	VideoID    string           `json:"video_id"`
	Page       int              `json:"page"`
	Video      *models.Video    `json:"video,omitempty"`
	Segments   []models.Segment `json:"segments"`
	TotalCount int64            `json:"total_count"`
	TotalPages int              `json:"total_pages"`
	Err        error            `json:"-"`
}

// Message is the text of the error panel, empty unless Failed.
func (s DetailState) Message() string {
	return messageOr(s.Err, "Failed to fetch video details")
}

// Pagination returns the page controls for this state.
func (s DetailState) Pagination() Pagination {
	return NewPagination(s.Page, s.TotalPages)
}

// DetailView shows one video and one page of its segments.
//
// Every fetch gets a new request number and cancels the one before it; a
// response is applied only while its request number is the latest.
type DetailView struct {
	exec     query.Executor
	videoID  string
	pageSize int
	log      *logrus.Entry

	mu         sync.Mutex
	seq        uint64
	cancel     context.CancelFunc
	totalPages int
	state      DetailState
}

// NewDetailView creates an idle detail view for videoID.
func NewDetailView(exec query.Executor, videoID string, logger *logrus.Logger) *DetailView {
	return &DetailView{
		exec:     exec,
		videoID:  videoID,
		pageSize: PageSize,
		log:      viewLogger(logger, "detail").WithField("video_id", videoID),
		state:    DetailState{VideoID: videoID},
	}
}

// State returns the current snapshot.
func (v *DetailView) State() DetailState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Load mounts the view on page 1.
func (v *DetailView) Load(ctx context.Context) DetailState {
	return v.fetch(ctx, 1)
}

// Open mounts the view directly on page, so a deep link costs one fetch.
// A page outside [1, TotalPages] is ignored as ChangePage would ignore it:
// the view shows page 1 and accepted is false.
func (v *DetailView) Open(ctx context.Context, page int) (st DetailState, accepted bool) {
	if page <= 1 {
		return v.Load(ctx), page == 1
	}
	st = v.fetch(ctx, page)
	if st.Status != StatusSuccess || page <= st.TotalPages {
		return st, true
	}
	v.log.WithFields(logrus.Fields{"page": page, "total_pages": st.TotalPages}).
		Debug("Opened page is out of range, falling back to page 1")
	return v.Load(ctx), false
}

// ChangePage refetches everything for page. Requests outside
// [1, TotalPages] of the last successful fetch are ignored: the state is
// returned unchanged and accepted is false.
func (v *DetailView) ChangePage(ctx context.Context, page int) (st DetailState, accepted bool) {
	v.mu.Lock()
	if page < 1 || page > v.totalPages {
		st = v.state
		v.mu.Unlock()
		v.log.WithField("page", page).Debug("Ignoring out-of-range page request")
		return st, false
	}
	v.mu.Unlock()
	return v.fetch(ctx, page), true
}

func (v *DetailView) fetch(ctx context.Context, page int) DetailState {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.seq++
	req := v.seq
	v.cancel = cancel
	v.state = DetailState{Status: StatusLoading, Request: req, VideoID: v.videoID, Page: page}
	v.mu.Unlock()

	log := v.log.WithFields(logrus.Fields{"page": page, "request": req})
	data, err := v.load(ctx, page)

	v.mu.Lock()
	defer v.mu.Unlock()
	if req != v.seq {
		log.Debug("Discarding stale detail response")
		return v.state
	}
	v.cancel = nil
	if err != nil {
		log.WithError(err).Error("Failed to fetch video details")
		v.state = DetailState{Status: StatusFailed, Request: req, VideoID: v.videoID, Page: page, Err: err}
		return v.state
	}

	data.Status = StatusSuccess
	data.Request = req
	data.VideoID = v.videoID
	data.Page = page
	v.totalPages = data.TotalPages
	v.state = data
	log.Infof("Fetched %d of %d segments", len(data.Segments), data.TotalCount)
	return v.state
}

// load runs the three queries concurrently. The first failure cancels the
// others and is the one returned.
func (v *DetailView) load(ctx context.Context, page int) (DetailState, error) {
	if err := validateDetailRequest(detailRequest{VideoID: v.videoID, Page: page}); err != nil {
		return DetailState{}, err
	}

	var (
		video    models.Video
		segments []models.Segment
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := v.exec.Execute(gctx, VideoQuery(v.videoID), &video)
		return err
	})
	g.Go(func() error {
		res, err := v.exec.Execute(gctx, SegmentCountQuery(v.videoID), nil)
		total = res.Count
		return err
	})
	g.Go(func() error {
		_, err := v.exec.Execute(gctx, SegmentPageQuery(v.videoID, page, v.pageSize), &segments)
		return err
	})
	if err := g.Wait(); err != nil {
		return DetailState{}, err
	}

	if segments == nil {
		segments = []models.Segment{}
	}
	return DetailState{
		Video:      &video,
		Segments:   segments,
		TotalCount: total,
		TotalPages: TotalPages(total, v.pageSize),
	}, nil
}

func validateDetailRequest(r detailRequest) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	fe := verrs[0]
	if fe.Field() == "VideoID" && fe.Tag() == "required" {
		return &ValidationError{Field: fe.Field(), Message: "Video ID is required"}
	}
	return &ValidationError{
		Field:   fe.Field(),
		Message: fmt.Sprintf("Field '%s' failed on the '%s' tag", fe.Field(), fe.Tag()),
	}
}
