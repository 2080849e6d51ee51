package models

import (
	"time"

	"github.com/google/uuid"
)

// SegmentsTable is the remote table holding the chapters of every video.
const SegmentsTable = "segments"

// Segment represents one chapter of a video in the database.
// SegmentNo orders chapters within a video; StartTime and EndTime are seconds.
type Segment struct {
	ID           uuid.UUID `json:"id"`
	VideoID      uuid.UUID `json:"video_id"`
	SegmentNo    int       `json:"segment_no"`
	Summary      string    `json:"summary"`
	StartTime    float64   `json:"start_time"`
	EndTime      float64   `json:"end_time"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}
