package viewstate

import (
	"videothingy/chapter-viewer/internal/query"
	"videothingy/chapter-viewer/models"
)

// ListVideosQuery selects every video, newest first.
func ListVideosQuery() query.Spec {
	return query.Spec{
		Table: models.VideosTable,
		Order: &query.Order{Column: "created_at", Descending: true},
	}
}

// VideoQuery selects exactly one video by id.
func VideoQuery(videoID string) query.Spec {
	return query.Spec{
		Table:   models.VideosTable,
		Filters: []query.Filter{query.Eq("id", videoID)},
		Mode:    query.ModeSingle,
	}
}

// SegmentCountQuery counts all segments of a video.
func SegmentCountQuery(videoID string) query.Spec {
	return query.Spec{
		Table:   models.SegmentsTable,
		Filters: []query.Filter{query.Eq("video_id", videoID)},
		Mode:    query.ModeCount,
	}
}

// SegmentPageQuery selects one page of a video's segments in chapter order.
func SegmentPageQuery(videoID string, page, size int) query.Spec {
	from, to := PageRange(page, size)
	return query.Spec{
		Table:   models.SegmentsTable,
		Filters: []query.Filter{query.Eq("video_id", videoID)},
		Order:   &query.Order{Column: "segment_no"},
		Range:   &query.Range{From: from, To: to},
	}
}
