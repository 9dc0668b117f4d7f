package server

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/render"
	"github.com/alexanderramin/gantt/internal/repository"
)

// itemJSON is the wire form of a work item.
type itemJSON struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Row      int    `json:"row"`
	Status   string `json:"status"`
	Color    string `json:"color"`
	Progress int    `json:"progress"`
}

func toItemJSON(w *domain.WorkItem) itemJSON {
	return itemJSON{
		ID:       w.ID,
		Title:    w.Title,
		Start:    w.Start.String(),
		End:      w.End.String(),
		Row:      w.RowIndex,
		Status:   string(w.Status),
		Color:    w.Color(),
		Progress: w.Progress,
	}
}

// rescheduleRequest moves an item either by whole days or to explicit dates.
type rescheduleRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  *int   `json:"days"`
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   msg,
	})
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvertedRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleListItems(c *gin.Context) {
	items, err := s.items.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	data := make([]itemJSON, len(items))
	for i, w := range items {
		data[i] = toItemJSON(w)
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(data),
		"data":    data,
	})
}

func (s *Server) handleGetItem(c *gin.Context) {
	w, err := s.items.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, statusFor(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toItemJSON(w),
	})
}

func (s *Server) handleReschedule(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	current, err := s.items.GetByID(ctx, id)
	if err != nil {
		fail(c, statusFor(err), err.Error())
		return
	}

	start, end := current.Start, current.End
	switch {
	case req.Days != nil && (req.Start != "" || req.End != ""):
		fail(c, http.StatusBadRequest, "use either days or start/end")
		return
	case req.Days != nil:
		start, end = start.AddDays(*req.Days), end.AddDays(*req.Days)
	case req.Start == "" && req.End == "":
		fail(c, http.StatusBadRequest, "nothing to change: give days or start/end")
		return
	default:
		if start, err = parseOptionalDate(req.Start, start); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		if end, err = parseOptionalDate(req.End, end); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	w, err := s.items.Reschedule(ctx, id, start, end)
	if err != nil {
		fail(c, statusFor(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toItemJSON(w),
	})
}

func parseOptionalDate(s string, fallback domain.Date) (domain.Date, error) {
	if s == "" {
		return fallback, nil
	}
	return domain.ParseDate(s)
}

// handleChart renders every item; the format follows the request path.
func (s *Server) handleChart(c *gin.Context) {
	zoom := s.opts.Config.Zoom
	if v := c.Query("zoom"); v != "" {
		z, err := domain.ParseZoomLevel(v)
		if err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		zoom = z
	}
	var anchor domain.Date
	if v := c.Query("anchor"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		anchor = d
	}
	opts := render.Options{Title: c.Query("title")}
	if v := c.Query("labels"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fail(c, http.StatusBadRequest, "labels must be an integer")
			return
		}
		opts.LabelWidth = n
	}
	if err := opts.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := s.items.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	values := make([]domain.WorkItem, len(items))
	for i, w := range items {
		values[i] = *w
	}
	ch := chart.New(chart.Config{
		Zoom:     zoom,
		Anchor:   anchor,
		Today:    s.opts.Config.TodayOrNow(),
		Observer: s.opts.ChartObserver,
	}, values, nil)

	format := render.FormatFromPath(c.Request.URL.Path)
	var buf bytes.Buffer
	if err := render.Write(&buf, format, ch, opts); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
