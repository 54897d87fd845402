package http

import (
	"errors"
	"net/http"

	"github.com/dkeye/Huddle/internal/adapters/signal"
	"github.com/dkeye/Huddle/internal/adapters/storage"
	"github.com/dkeye/Huddle/internal/app/orch"
	"github.com/dkeye/Huddle/internal/core"
	"github.com/dkeye/Huddle/internal/domain"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type NameRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

type RoomResponse struct {
	Code domain.RoomCode `json:"code"`
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename,omitempty"`
	Error    string `json:"error,omitempty"`
}

type handlers struct {
	orch       *orch.Orchestrator
	images     *storage.ImageStore
	staticPath string
}

func errorJSON(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// bindName reads and normalizes the display name of a landing-page request.
func bindName(c *gin.Context) (string, bool) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "missing or invalid name")
		return "", false
	}
	name, err := domain.NormalizeUsername(req.Name)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "missing or invalid name")
		return "", false
	}
	return name, true
}

// rememberName keeps the name in the cookie session for the room page's join frame.
func rememberName(c *gin.Context, name string) {
	s := sessions.Default(c)
	s.Set(signal.SessionNameKey, name)
	if err := s.Save(); err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Msg("session save")
	}
}

func (h *handlers) createRoom(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	rememberName(c, name)
	room := h.orch.Rooms.CreateRoom()
	c.JSON(http.StatusCreated, RoomResponse{Code: room.Room().Code})
}

func (h *handlers) joinRoom(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	code := domain.RoomCode(c.Param("code"))
	if !h.orch.Rooms.Exists(code) {
		errorJSON(c, http.StatusNotFound, domain.ErrRoomNotFound.Error())
		return
	}
	rememberName(c, name)
	c.JSON(http.StatusOK, RoomResponse{Code: code})
}

func (h *handlers) listRooms(c *gin.Context) {
	c.JSON(http.StatusOK, h.orch.Rooms.List())
}

func (h *handlers) getRoom(c *gin.Context) {
	room, ok := h.orch.Rooms.GetRoom(domain.RoomCode(c.Param("code")))
	if !ok {
		errorJSON(c, http.StatusNotFound, domain.ErrRoomNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, core.RoomInfo{Code: room.Room().Code, MemberCount: room.MemberCount()})
}

func (h *handlers) roomMembers(c *gin.Context) {
	room, ok := h.orch.Rooms.GetRoom(domain.RoomCode(c.Param("code")))
	if !ok {
		errorJSON(c, http.StatusNotFound, domain.ErrRoomNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, room.Usernames())
}

func (h *handlers) deleteRoom(c *gin.Context) {
	if !h.orch.EvictRoom(domain.RoomCode(c.Param("code"))) {
		errorJSON(c, http.StatusNotFound, domain.ErrRoomNotFound.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) roomPage(c *gin.Context) {
	if !h.orch.Rooms.Exists(domain.RoomCode(c.Param("code"))) {
		c.String(http.StatusNotFound, "Room not found")
		return
	}
	c.File(h.staticPath + "/room.html")
}

func (h *handlers) uploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, UploadResponse{Error: "No file part"})
		return
	}
	if fh.Filename == "" {
		c.JSON(http.StatusBadRequest, UploadResponse{Error: "No selected file"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Msg("open upload")
		c.JSON(http.StatusInternalServerError, UploadResponse{Error: "Upload failed"})
		return
	}
	defer f.Close()

	ref, err := h.images.Save(fh.Filename, f)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, UploadResponse{Success: true, Filename: ref})
	case errors.Is(err, storage.ErrExtensionNotAllowed):
		c.JSON(http.StatusBadRequest, UploadResponse{Error: "File type not allowed"})
	case errors.Is(err, storage.ErrNotAnImage), errors.Is(err, storage.ErrTooLarge):
		c.JSON(http.StatusBadRequest, UploadResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("module", "adapters.http").Msg("store upload")
		c.JSON(http.StatusInternalServerError, UploadResponse{Error: "Upload failed"})
	}
}

func (h *handlers) serveUpload(c *gin.Context, ref string) {
	p, err := h.images.Path(ref)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(p)
}
