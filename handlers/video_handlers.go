package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"videothingy/chapter-viewer/internal/query"
	"videothingy/chapter-viewer/internal/viewstate"
	"videothingy/chapter-viewer/utils"
	"videothingy/chapter-viewer/web"
)

// ListVideosPage renders the video library.
func (h *ApplicationHandler) ListVideosPage(c *fiber.Ctx) error {
	st := h.loadList(c.UserContext())
	return c.Status(statusFor(st.Err)).Render("list", web.ListPage{
		Title: "Video Library",
		State: st,
	}, web.Layout)
}

// VideoDetailPage renders one video and a page of its chapters. The page
// comes from ?page=N and defaults to 1.
func (h *ApplicationHandler) VideoDetailPage(c *fiber.Ctx) error {
	st := h.loadDetail(c.UserContext(), utils.SanitizeInput(c.Params("id")), c.QueryInt("page", 1))
	title := "Video"
	if st.Video != nil && st.Video.Title != "" {
		title = st.Video.Title
	}
	return c.Status(statusFor(st.Err)).Render("detail", web.DetailPage{
		Title: title,
		State: st,
	}, web.Layout)
}

func (h *ApplicationHandler) loadList(ctx context.Context) viewstate.ListState {
	return viewstate.NewListView(h.Exec, h.Logger).Load(ctx)
}

// loadDetail mounts a fresh detail view on page. Pages outside the
// available range are ignored and page 1 is shown.
func (h *ApplicationHandler) loadDetail(ctx context.Context, videoID string, page int) viewstate.DetailState {
	st, accepted := viewstate.NewDetailView(h.Exec, videoID, h.Logger).Open(ctx, page)
	if !accepted && st.Status == viewstate.StatusSuccess {
		h.Logger.WithFields(logrus.Fields{
			"video_id":    videoID,
			"page":        page,
			"total_pages": st.TotalPages,
		}).Warn("Requested page is out of range, showing page 1")
	}
	return st
}

// statusFor maps a view's error to an HTTP status code.
func statusFor(err error) int {
	var qerr *query.QueryError
	switch {
	case err == nil:
		return fiber.StatusOK
	case viewstate.IsValidation(err):
		return fiber.StatusBadRequest
	case errors.As(err, &qerr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
