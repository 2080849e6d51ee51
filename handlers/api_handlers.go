package handlers

import (
	"github.com/gofiber/fiber/v2"

	"videothingy/chapter-viewer/internal/viewstate"
	"videothingy/chapter-viewer/models"
	"videothingy/chapter-viewer/utils"
)

// VideoListResponse is the success envelope of GET /videos.
type VideoListResponse struct {
	Status string         `json:"status"`
	Data   []models.Video `json:"data"`
}

// VideoDetail is one page of a video's chapters.
type VideoDetail struct {
	Video      *models.Video        `json:"video"`
	Segments   []models.Segment     `json:"segments"`
	TotalCount int64                `json:"total_count"`
	Pagination viewstate.Pagination `json:"pagination"`
}

// VideoDetailResponse is the success envelope of GET /videos/{id}.
type VideoDetailResponse struct {
	Status string      `json:"status"`
	Data   VideoDetail `json:"data"`
}

// ErrorResponse defines a common structure for error responses.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ListVideos godoc
// @Summary List videos
// @Description Returns every video, newest first.
// @Tags videos
// @Produce  json
// @Success 200 {object} VideoListResponse "Videos fetched successfully"
// @Failure 502 {object} ErrorResponse "The data service rejected the query"
// @Router /videos [get]
func (h *ApplicationHandler) ListVideos(c *fiber.Ctx) error {
	st := h.loadList(c.UserContext())
	if st.Status.IsFailed() {
		return utils.RespondWithError(c, statusFor(st.Err), st.Message())
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, st.Videos)
}

// GetVideoDetail godoc
// @Summary Get a video with one page of chapters
// @Description Returns the video, up to 1000 chapters of the requested page ordered by chapter number, the total chapter count and the page controls. A page outside the available range returns page 1.
// @Tags videos
// @Produce  json
// @Param   id path string true "Video ID"
// @Param   page query int false "1-based page number" default(1)
// @Success 200 {object} VideoDetailResponse "Video details fetched successfully"
// @Failure 400 {object} ErrorResponse "Missing video ID"
// @Failure 502 {object} ErrorResponse "The data service rejected a query, e.g. the video does not exist"
// @Router /videos/{id} [get]
func (h *ApplicationHandler) GetVideoDetail(c *fiber.Ctx) error {
	st := h.loadDetail(c.UserContext(), utils.SanitizeInput(c.Params("id")), c.QueryInt("page", 1))
	if st.Status.IsFailed() {
		return utils.RespondWithError(c, statusFor(st.Err), st.Message())
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, VideoDetail{
		Video:      st.Video,
		Segments:   st.Segments,
		TotalCount: st.TotalCount,
		Pagination: st.Pagination(),
	})
}
