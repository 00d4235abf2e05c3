// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"venus-catalog-api/internal/application/catalog"
	"venus-catalog-api/internal/config"
	"venus-catalog-api/internal/interfaces/http/dto"
)

// ItemHandler 道具处理器
type ItemHandler struct {
	svc *catalog.ItemService
	cfg *config.CatalogConfig
}

// NewItemHandler 创建道具处理器
func NewItemHandler(svc *catalog.ItemService, cfg *config.CatalogConfig) *ItemHandler {
	return &ItemHandler{svc: svc, cfg: cfg}
}

// ListItems 道具列表
// @Summary 道具列表
// @Tags Items
// @Produce json
// @Success 200 {object} dto.Response[[]query.Record]
// @Router /v1/items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	ctx := c.Request.Context()
	in := dto.BindListQuery(c, h.svc.Specs(), listDefaults(h.cfg))

	result, err := h.svc.List(ctx, in)
	if err != nil {
		respondError(c, err, "failed to list items")
		return
	}

	dto.SuccessWithPage(c, result.Items, dto.ToPageMeta(result.Metadata))
}

// GetItem 道具详情
func (h *ItemHandler) GetItem(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	item, err := h.svc.Get(ctx, id)
	if err != nil {
		respondError(c, err, "failed to get item")
		return
	}

	dto.Success(c, item)
}

// CreateItem 创建道具
func (h *ItemHandler) CreateItem(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	item := req.ToEntity()
	if err := h.svc.Create(ctx, item); err != nil {
		respondError(c, err, "failed to create item")
		return
	}

	dto.Created(c, item)
}

// UpdateItem 更新道具
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	item, err := h.svc.Get(ctx, id)
	if err != nil {
		respondError(c, err, "failed to get item")
		return
	}

	req.ApplyTo(item)

	if err := h.svc.Update(ctx, item); err != nil {
		respondError(c, err, "failed to update item")
		return
	}

	dto.Success(c, item)
}

// DeleteItem 删除道具
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	if err := h.svc.Delete(ctx, id); err != nil {
		respondError(c, err, "failed to delete item")
		return
	}

	dto.NoContent(c)
}
