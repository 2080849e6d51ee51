package models

import (
	"time"

	"github.com/google/uuid"
)

// VideosTable is the remote table holding one row per uploaded video.
const VideosTable = "videos"

// Video represents the structure of a video row in the database.
type Video struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	FilePath  string    `json:"file_path"`
	Duration  float64   `json:"duration"` // seconds
	CreatedAt time.Time `json:"created_at"` // timestamptz; values without an offset do not decode
	UserID    uuid.UUID `json:"user_id"`
}
