package viewstate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"videothingy/chapter-viewer/internal/query"
	"videothingy/chapter-viewer/models"
)

func detailFixture(segments int) (*fakeExec, models.Video) {
	video := newVideo("Lecture", time.Date(2025, 2, 18, 9, 0, 0, 0, time.UTC))
	other := newVideo("Other", time.Date(2025, 2, 19, 9, 0, 0, 0, time.UTC))
	exec := &fakeExec{
		videos:   []models.Video{video, other},
		segments: append(newSegments(video.ID, segments), newSegments(other.ID, 3)...),
	}
	return exec, video
}

func TestDetailView_FirstPage(t *testing.T) {
	exec, video := detailFixture(2500)
	v := NewDetailView(exec, video.ID.String(), nil)

	st := v.Load(context.Background())
	if st.Status != StatusSuccess {
		t.Fatalf("expected success, got %s (%v)", st.Status, st.Err)
	}
	if st.Video == nil || st.Video.Title != "Lecture" {
		t.Fatalf("unexpected video %+v", st.Video)
	}
	if st.TotalCount != 2500 || st.TotalPages != 3 {
		t.Fatalf("expected 2500 segments over 3 pages, got %d over %d", st.TotalCount, st.TotalPages)
	}
	if len(st.Segments) != PageSize {
		t.Fatalf("expected %d segments, got %d", PageSize, len(st.Segments))
	}
	if st.Segments[0].SegmentNo != 1 || st.Segments[PageSize-1].SegmentNo != PageSize {
		t.Fatalf("segments not in chapter order: first %d last %d", st.Segments[0].SegmentNo, st.Segments[PageSize-1].SegmentNo)
	}

	calls := exec.callsSnapshot()
	if len(calls) != 3 {
		t.Fatalf("expected three queries, got %d", len(calls))
	}
	modes := map[query.Mode]query.Spec{}
	for _, c := range calls {
		modes[c.Mode] = c
	}
	if s, ok := modes[query.ModeSingle]; !ok || s.Table != models.VideosTable {
		t.Fatalf("expected a single-row videos query, got %+v", calls)
	}
	if s, ok := modes[query.ModeCount]; !ok || s.Table != models.SegmentsTable {
		t.Fatalf("expected a segments count query, got %+v", calls)
	}
	page := modes[query.ModeRows]
	if page.Range == nil || page.Range.From != 0 || page.Range.To != 999 {
		t.Fatalf("expected rows 0-999, got %+v", page.Range)
	}
	if page.Order == nil || page.Order.Column != "segment_no" || page.Order.Descending {
		t.Fatalf("expected segment_no ascending, got %+v", page.Order)
	}
}

func TestDetailView_LastPage(t *testing.T) {
	exec, video := detailFixture(2500)
	v := NewDetailView(exec, video.ID.String(), nil)
	v.Load(context.Background())

	st, ok := v.ChangePage(context.Background(), 3)
	if !ok {
		t.Fatal("expected page 3 to be accepted")
	}
	if st.Status != StatusSuccess || st.Page != 3 {
		t.Fatalf("expected success on page 3, got %s page %d", st.Status, st.Page)
	}
	if len(st.Segments) != 500 {
		t.Fatalf("expected 500 segments on the last page, got %d", len(st.Segments))
	}
	if st.Segments[0].SegmentNo != 2001 {
		t.Fatalf("expected page to start at chapter 2001, got %d", st.Segments[0].SegmentNo)
	}
	p := st.Pagination()
	if !p.Visible || p.HasNext || !p.HasPrev {
		t.Fatalf("unexpected controls on the last page: %+v", p)
	}

	// page changes refetch the video and the count too
	if n := exec.callCount(); n != 6 {
		t.Fatalf("expected 6 queries after one page change, got %d", n)
	}
	calls := exec.callsSnapshot()
	for _, c := range calls[3:] {
		if c.Range != nil && (c.Range.From != 2000 || c.Range.To != 2999) {
			t.Fatalf("expected rows 2000-2999, got %+v", c.Range)
		}
	}
}

func TestDetailView_OutOfRangePagesAreIgnored(t *testing.T) {
	exec, video := detailFixture(2500)
	v := NewDetailView(exec, video.ID.String(), nil)
	before := v.Load(context.Background())

	for _, page := range []int{0, -1, 4, 100} {
		st, ok := v.ChangePage(context.Background(), page)
		if ok {
			t.Fatalf("page %d should be ignored", page)
		}
		if st.Request != before.Request || st.Page != before.Page || len(st.Segments) != len(before.Segments) {
			t.Fatalf("page %d changed the state", page)
		}
	}
	if n := exec.callCount(); n != 3 {
		t.Fatalf("ignored page requests must not query, got %d queries", n)
	}
}

func TestDetailView_NoSegments(t *testing.T) {
	exec, video := detailFixture(0)
	v := NewDetailView(exec, video.ID.String(), nil)
	st := v.Load(context.Background())
	if st.Status != StatusSuccess {
		t.Fatalf("expected success, got %s (%v)", st.Status, st.Err)
	}
	if st.Video == nil || st.Video.Title != "Lecture" {
		t.Fatalf("expected the video title, got %+v", st.Video)
	}
	if st.TotalPages != 0 || len(st.Segments) != 0 || st.Segments == nil {
		t.Fatalf("expected no pages and an empty segment list, got %d pages %#v", st.TotalPages, st.Segments)
	}
	if st.Pagination().Visible {
		t.Fatal("pagination must be hidden without segments")
	}
	if _, ok := v.ChangePage(context.Background(), 1); ok {
		t.Fatal("page 1 of 0 must be ignored")
	}
}

func TestDetailView_MissingVideo(t *testing.T) {
	exec, _ := detailFixture(10)
	v := NewDetailView(exec, "00000000-0000-0000-0000-000000000000", nil)
	st := v.Load(context.Background())
	if st.Status != StatusFailed {
		t.Fatalf("expected failed, got %s", st.Status)
	}
	if st.Video != nil {
		t.Fatal("a missing video must not produce a detail page")
	}
	var qe *query.QueryError
	if !errors.As(st.Err, &qe) || qe.Table != models.VideosTable {
		t.Fatalf("expected a videos QueryError, got %v", st.Err)
	}
	if st.Message() == "" {
		t.Fatal("expected an error message")
	}
}

func TestDetailView_MissingIDFailsLocally(t *testing.T) {
	exec, _ := detailFixture(10)
	v := NewDetailView(exec, "", nil)
	st := v.Load(context.Background())
	if st.Status != StatusFailed {
		t.Fatalf("expected failed, got %s", st.Status)
	}
	if !IsValidation(st.Err) {
		t.Fatalf("expected a ValidationError, got %T", st.Err)
	}
	if st.Message() != "Video ID is required" {
		t.Fatalf("unexpected message %q", st.Message())
	}
	if n := exec.callCount(); n != 0 {
		t.Fatalf("validation failures must not query, got %d", n)
	}
}

func TestDetailView_AnyFailureFailsTheFetch(t *testing.T) {
	exec, video := detailFixture(10)
	exec.fail = map[string]error{
		"segments/count": &query.QueryError{Table: "segments", Message: "canceling statement due to statement timeout"},
	}
	v := NewDetailView(exec, video.ID.String(), nil)
	st := v.Load(context.Background())
	if st.Status != StatusFailed {
		t.Fatalf("expected failed, got %s", st.Status)
	}
	if st.Message() != "canceling statement due to statement timeout" {
		t.Fatalf("unexpected message %q", st.Message())
	}
	if st.Video != nil || st.Segments != nil {
		t.Fatal("partial results must not be kept")
	}
}

func testStaleResponse(t *testing.T, ignoreCtx bool) {
	exec, video := detailFixture(2500)
	v := NewDetailView(exec, video.ID.String(), nil)
	v.Load(context.Background())

	gate := make(chan struct{})
	exec.mu.Lock()
	exec.gates = map[int]chan struct{}{1000: gate}
	exec.started = make(chan int, 1)
	exec.ignoreCtx = ignoreCtx
	exec.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		v.ChangePage(context.Background(), 2)
	}()
	<-exec.started

	st, ok := v.ChangePage(context.Background(), 3)
	if !ok || st.Status != StatusSuccess || st.Page != 3 {
		t.Fatalf("expected page 3 to load, got ok=%v %s page %d", ok, st.Status, st.Page)
	}
	close(gate)
	wg.Wait()

	final := v.State()
	if final.Status != StatusSuccess || final.Page != 3 {
		t.Fatalf("stale page 2 response overwrote page 3: %s page %d", final.Status, final.Page)
	}
	if final.Segments[0].SegmentNo != 2001 {
		t.Fatalf("expected page 3 segments, got chapter %d first", final.Segments[0].SegmentNo)
	}
}

func TestDetailView_StaleResponseIsCancelled(t *testing.T) {
	testStaleResponse(t, false)
}

func TestDetailView_StaleResponseIsDiscarded(t *testing.T) {
	testStaleResponse(t, true)
}

func TestDetailState_FallbackMessage(t *testing.T) {
	st := DetailState{Status: StatusFailed, Err: errors.New("")}
	if st.Message() != "Failed to fetch video details" {
		t.Fatalf("unexpected fallback %q", st.Message())
	}
}

func TestDetailView_OpenDeepLink(t *testing.T) {
	exec, video := detailFixture(2500)
	v := NewDetailView(exec, video.ID.String(), nil)

	st, ok := v.Open(context.Background(), 3)
	if !ok || st.Status != StatusSuccess || st.Page != 3 {
		t.Fatalf("expected page 3, got ok=%v %s page %d", ok, st.Status, st.Page)
	}
	if st.Segments[0].SegmentNo != 2001 {
		t.Fatalf("expected page to start at chapter 2001, got %d", st.Segments[0].SegmentNo)
	}
	if n := exec.callCount(); n != 3 {
		t.Fatalf("expected one fetch of three queries, got %d", n)
	}
	if _, ok := v.ChangePage(context.Background(), 1); !ok {
		t.Fatal("page 1 should be reachable after opening page 3")
	}
}

func TestDetailView_OpenOutOfRangeShowsFirstPage(t *testing.T) {
	for _, page := range []int{0, -2, 4, 50} {
		exec, video := detailFixture(2500)
		v := NewDetailView(exec, video.ID.String(), nil)

		st, ok := v.Open(context.Background(), page)
		if ok {
			t.Fatalf("page %d should be ignored", page)
		}
		if st.Status != StatusSuccess || st.Page != 1 || st.Segments[0].SegmentNo != 1 {
			t.Fatalf("page %d: expected page 1, got %s page %d", page, st.Status, st.Page)
		}
	}

	exec, video := detailFixture(10)
	st, ok := NewDetailView(exec, video.ID.String(), nil).Open(context.Background(), 1)
	if !ok || st.Page != 1 || exec.callCount() != 3 {
		t.Fatalf("page 1: ok=%v page %d after %d queries", ok, st.Page, exec.callCount())
	}
}

func TestDetailView_OpenMissingIDFailsLocally(t *testing.T) {
	exec, _ := detailFixture(10)
	st, _ := NewDetailView(exec, "", nil).Open(context.Background(), 2)
	if !IsValidation(st.Err) || exec.callCount() != 0 {
		t.Fatalf("expected a local ValidationError, got %v after %d queries", st.Err, exec.callCount())
	}
}
