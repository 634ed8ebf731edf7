package handler

import (
	"errors"
	"net/http"
	"os"

	"autoservice/internal/middleware"
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"
	"autoservice/pkg/response"

	"github.com/gin-gonic/gin"
)

// multipart overhead allowed on top of the file itself
const uploadSlack = 1 << 20

// TicketHandler serves support tickets. Users without tickets_manage only reach their own tickets.
type TicketHandler struct {
	Deps
	ticketService service.TicketService
}

func NewTicketHandler(ticketService service.TicketService, deps Deps) *TicketHandler {
	return &TicketHandler{Deps: deps, ticketService: ticketService}
}

func (h *TicketHandler) RegisterRoutes(router *gin.RouterGroup) {
	tickets := router.Group("/tickets")
	{
		tickets.GET("", h.Auth.RequirePermission(model.ResourceTickets, model.ActionView), h.List)
		tickets.GET("/:id", h.Auth.RequirePermission(model.ResourceTickets, model.ActionView), h.Get)
		tickets.POST("", h.Auth.RequirePermission(model.ResourceTickets, model.ActionAdd), h.Add)
		tickets.POST("/:id/messages", h.Auth.RequirePermission(model.ResourceTickets, model.ActionAdd), h.AddMessage)
		tickets.POST("/:id/files", h.Auth.RequirePermission(model.ResourceTickets, model.ActionAdd), h.AddFile)
		tickets.GET("/files/:fileId", h.Auth.RequirePermission(model.ResourceTickets, model.ActionView), h.DownloadFile)
		tickets.PUT("/:id/status", h.Auth.RequirePermission(model.ResourceTickets, model.ActionManage), h.ChangeStatus)
		tickets.DELETE("", h.Auth.RequirePermission(model.ResourceTickets, model.ActionDelete), h.DeleteMany)
	}
}

func (h *TicketHandler) viewer(c *gin.Context) (service.TicketViewer, bool) {
	canManage, err := h.Auth.Can(c, model.ResourceTickets, model.ActionManage)
	if err != nil {
		h.fail(c, err)
		return service.TicketViewer{}, false
	}
	return service.TicketViewer{UserID: middleware.UserID(c), CanManage: canManage}, true
}

// List handles GET /tickets
// @Summary      List tickets
// @Tags         tickets
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage  query     int     false  "Page (1-based)"
// @Param        pageSize     query     int     false  "Page size (max 100)"
// @Param        statuses     query     string  false  "Comma separated"
// @Param        userIds      query     string  false  "Comma separated"
// @Param        search       query     string  false  "Title contains"
// @Success      200  {object}  response.Body{items=[]model.Ticket,total=int}
// @Router       /api/tickets [get]
func (h *TicketHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.ticketService.List(c.Request.Context(), viewer, filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /tickets/:id
// @Summary      Ticket details with messages and files
// @Tags         tickets
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Ticket ID"
// @Success      200  {object}  response.Body{item=model.Ticket}
// @Router       /api/tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}
	ticket, err := h.ticketService.Get(c.Request.Context(), viewer, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": ticket})
}

// Add handles POST /tickets
// @Summary      Open ticket
// @Tags         tickets
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.TicketRequest  true  "Title and first message"
// @Success      200      {object}  response.Body{item=model.Ticket} "done, no_title or no_message"
// @Router       /api/tickets [post]
func (h *TicketHandler) Add(c *gin.Context) {
	var req service.TicketRequest
	if !bindJSON(c, &req) {
		return
	}
	ticket, err := h.ticketService.Add(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Opened ticket %s (id %d)", ticket.Title, ticket.ID)
	done(c, gin.H{"item": ticket})
}

// AddMessage handles POST /tickets/:id/messages
// @Summary      Reply to ticket
// @Tags         tickets
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "Ticket ID"
// @Param        payload  body      service.TicketMessageRequest  true  "Message"
// @Success      200      {object}  response.Body{item=model.TicketsMessage} "done or no_message"
// @Router       /api/tickets/{id}/messages [post]
func (h *TicketHandler) AddMessage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.TicketMessageRequest
	if !bindJSON(c, &req) {
		return
	}
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}
	msg, err := h.ticketService.AddMessage(c.Request.Context(), viewer, id, req.Content)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Replied to ticket %d", id)
	done(c, gin.H{"item": msg})
}

// AddFile handles POST /tickets/:id/files
// @Summary      Attach file to ticket
// @Description  Multipart form with a single "file" field, at most 10 MiB.
// @Tags         tickets
// @Security     SessionCookie
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      int   true  "Ticket ID"
// @Param        file  formData  file  true  "Attachment"
// @Success      200   {object}  response.Body{item=model.TicketsFile} "done, no_file or file_too_large"
// @Router       /api/tickets/{id}/files [post]
func (h *TicketHandler) AddFile(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxUploadBytes+uploadSlack)
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.JSON(c, response.Result(service.ResultFileTooLarge))
			return
		}
		response.JSON(c, response.Result(service.ResultNoFile))
		return
	}
	file, err := header.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer file.Close()

	viewer, ok := h.viewer(c)
	if !ok {
		return
	}
	stored, err := h.ticketService.AddFile(c.Request.Context(), viewer, id, service.Upload{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Attached file %s to ticket %d", stored.FileName, id)
	done(c, gin.H{"item": stored})
}

// DownloadFile handles GET /tickets/files/:fileId
// @Summary      Download ticket attachment
// @Description  Streams the file. Failures are answered with the usual JSON envelope.
// @Tags         tickets
// @Security     SessionCookie
// @Produce      octet-stream
// @Param        fileId  path      int  true  "File ID"
// @Success      200     {file}    file
// @Router       /api/tickets/files/{fileId} [get]
func (h *TicketHandler) DownloadFile(c *gin.Context) {
	fileID, ok := paramID(c, "fileId")
	if !ok {
		return
	}
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}
	f, path, err := h.ticketService.OpenFile(c.Request.Context(), viewer, fileID)
	if err != nil {
		h.fail(c, err)
		return
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			h.Log.Warnw("ticket file missing on disk", "fileID", f.ID, "path", path)
			response.JSON(c, response.Result(response.NotFound))
			return
		}
		h.fail(c, err)
		return
	}
	c.Set(response.ContextKey, response.Done)
	c.FileAttachment(path, f.FileName)
}

// ChangeStatus handles PUT /tickets/:id/status
// @Summary      Change ticket status
// @Tags         tickets
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Ticket ID"
// @Param        payload  body      service.StatusRequest  true  "Status"
// @Success      200      {object}  response.Body{item=model.Ticket} "done or bad_status"
// @Router       /api/tickets/{id}/status [put]
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	ticket, err := h.ticketService.ChangeStatus(c.Request.Context(), id, status)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Changed status of ticket %d to %s", ticket.ID, model.TicketStatuses.Name(ticket.Status))
	done(c, gin.H{"item": ticket})
}

// DeleteMany handles DELETE /tickets
// @Summary      Delete tickets
// @Description  Attachments are removed from disk on hard delete.
// @Tags         tickets
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/tickets [delete]
func (h *TicketHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.ticketService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted tickets %s", joinIDs(ids))
	}
	done(c, nil)
}
