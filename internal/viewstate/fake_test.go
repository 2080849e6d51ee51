package viewstate

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"videothingy/chapter-viewer/internal/query"
	"videothingy/chapter-viewer/models"
)

// fakeExec answers query specs from in-memory rows the way PostgREST would.
type fakeExec struct {
	mu       sync.Mutex
	videos   []models.Video
	segments []models.Segment
	fail     map[string]error // keyed by table + "/" + mode
	calls    []query.Spec

	// gates holds segment page queries (keyed by range start) until closed.
	gates     map[int]chan struct{}
	started   chan int
	ignoreCtx bool
}

func (f *fakeExec) Execute(ctx context.Context, spec query.Spec, dest interface{}) (query.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, spec)
	err := f.fail[spec.Table+"/"+spec.Mode.String()]
	var gate chan struct{}
	if spec.Range != nil {
		gate = f.gates[spec.Range.From]
	}
	f.mu.Unlock()

	if gate != nil {
		if f.started != nil {
			f.started <- spec.Range.From
		}
		if f.ignoreCtx {
			<-gate
		} else {
			select {
			case <-gate:
			case <-ctx.Done():
				return query.Result{}, ctx.Err()
			}
		}
	}
	if err != nil {
		return query.Result{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	switch spec.Table {
	case models.VideosTable:
		return f.videoResult(spec, dest)
	case models.SegmentsTable:
		return f.segmentResult(spec, dest)
	}
	return query.Result{}, &query.QueryError{Table: spec.Table, Message: fmt.Sprintf("relation %q does not exist", spec.Table)}
}

func filterValue(spec query.Spec, column string) (string, bool) {
	for _, fl := range spec.Filters {
		if fl.Column == column {
			return fl.Value, true
		}
	}
	return "", false
}

func (f *fakeExec) videoResult(spec query.Spec, dest interface{}) (query.Result, error) {
	rows := append([]models.Video(nil), f.videos...)
	if id, ok := filterValue(spec, "id"); ok {
		rows = rows[:0]
		for _, v := range f.videos {
			if v.ID.String() == id {
				rows = append(rows, v)
			}
		}
	}
	if spec.Order != nil && spec.Order.Column == "created_at" {
		sort.SliceStable(rows, func(i, j int) bool {
			if spec.Order.Descending {
				return rows[i].CreatedAt.After(rows[j].CreatedAt)
			}
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		})
	}
	switch spec.Mode {
	case query.ModeCount:
		return query.Result{Count: int64(len(rows))}, nil
	case query.ModeSingle:
		if len(rows) != 1 {
			return query.Result{}, &query.QueryError{Table: spec.Table, Message: "JSON object requested, multiple (or no) rows returned"}
		}
		*dest.(*models.Video) = rows[0]
	default:
		*dest.(*[]models.Video) = rows
	}
	return query.Result{}, nil
}

func (f *fakeExec) segmentResult(spec query.Spec, dest interface{}) (query.Result, error) {
	var rows []models.Segment
	id, _ := filterValue(spec, "video_id")
	for _, s := range f.segments {
		if s.VideoID.String() == id {
			rows = append(rows, s)
		}
	}
	if spec.Mode == query.ModeCount {
		return query.Result{Count: int64(len(rows))}, nil
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].SegmentNo < rows[j].SegmentNo })
	if r := spec.Range; r != nil {
		if r.From >= len(rows) {
			rows = nil
		} else {
			end := r.To + 1
			if end > len(rows) {
				end = len(rows)
			}
			rows = rows[r.From:end]
		}
	}
	*dest.(*[]models.Segment) = rows
	return query.Result{}, nil
}

func (f *fakeExec) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeExec) callsSnapshot() []query.Spec {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]query.Spec(nil), f.calls...)
}

func newVideo(title string, created time.Time) models.Video {
	return models.Video{ID: uuid.New(), Title: title, Duration: 3600, CreatedAt: created, UserID: uuid.New()}
}

func newSegments(videoID uuid.UUID, n int) []models.Segment {
	segs := make([]models.Segment, 0, n)
	// inserted in reverse to prove the view relies on ordering
	for i := n; i >= 1; i-- {
		segs = append(segs, models.Segment{
			ID:           uuid.New(),
			VideoID:      videoID,
			SegmentNo:    i,
			Summary:      fmt.Sprintf("Summary %d", i),
			StartTime:    float64((i - 1) * 10),
			EndTime:      float64(i * 10),
			ThumbnailURL: fmt.Sprintf("https://cdn.example.com/%d.jpg", i),
		})
	}
	return segs
}
