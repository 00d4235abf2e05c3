// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"venus-catalog-api/internal/application/catalog"
	"venus-catalog-api/internal/config"
	"venus-catalog-api/internal/interfaces/http/dto"
)

// EventHandler 活动处理器
type EventHandler struct {
	svc *catalog.EventService
	cfg *config.CatalogConfig
}

// NewEventHandler 创建活动处理器
func NewEventHandler(svc *catalog.EventService, cfg *config.CatalogConfig) *EventHandler {
	return &EventHandler{svc: svc, cfg: cfg}
}

// ListEvents 活动列表
// @Summary 活动列表
// @Tags Events
// @Produce json
// @Success 200 {object} dto.Response[[]query.Record]
// @Router /v1/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()
	in := dto.BindListQuery(c, h.svc.Specs(), listDefaults(h.cfg))

	result, err := h.svc.List(ctx, in)
	if err != nil {
		respondError(c, err, "failed to list events")
		return
	}

	dto.SuccessWithPage(c, result.Items, dto.ToPageMeta(result.Metadata))
}

// ListActiveEvents 当前进行中的活动
// @Summary 进行中活动列表
// @Tags Events
// @Produce json
// @Success 200 {object} dto.Response[[]entity.Event]
// @Router /v1/events/active [get]
func (h *EventHandler) ListActiveEvents(c *gin.Context) {
	ctx := c.Request.Context()

	events, err := h.svc.ListActive(ctx)
	if err != nil {
		respondError(c, err, "failed to list active events")
		return
	}

	dto.Success(c, events)
}

// GetEvent 活动详情
func (h *EventHandler) GetEvent(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	event, err := h.svc.Get(ctx, id)
	if err != nil {
		respondError(c, err, "failed to get event")
		return
	}

	dto.Success(c, event)
}

// CreateEvent 创建活动
func (h *EventHandler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	event := req.ToEntity()
	if err := h.svc.Create(ctx, event); err != nil {
		respondError(c, err, "failed to create event")
		return
	}

	dto.Created(c, event)
}

// UpdateEvent 更新活动
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	event, err := h.svc.Get(ctx, id)
	if err != nil {
		respondError(c, err, "failed to get event")
		return
	}

	req.ApplyTo(event)

	if err := h.svc.Update(ctx, event); err != nil {
		respondError(c, err, "failed to update event")
		return
	}

	dto.Success(c, event)
}

// DeleteEvent 删除活动
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	if err := h.svc.Delete(ctx, id); err != nil {
		respondError(c, err, "failed to delete event")
		return
	}

	dto.NoContent(c)
}
