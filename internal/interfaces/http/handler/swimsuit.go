// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"venus-catalog-api/internal/application/catalog"
	"venus-catalog-api/internal/config"
	"venus-catalog-api/internal/interfaces/http/dto"
)

// SwimsuitHandler 泳装处理器
type SwimsuitHandler struct {
	svc *catalog.SwimsuitService
	cfg *config.CatalogConfig
}

// NewSwimsuitHandler 创建泳装处理器
func NewSwimsuitHandler(svc *catalog.SwimsuitService, cfg *config.CatalogConfig) *SwimsuitHandler {
	return &SwimsuitHandler{svc: svc, cfg: cfg}
}

// ListSwimsuits 泳装列表
// @Summary 泳装列表
// @Tags Swimsuits
// @Produce json
// @Success 200 {object} dto.Response[[]query.Record]
// @Router /v1/swimsuits [get]
func (h *SwimsuitHandler) ListSwimsuits(c *gin.Context) {
	ctx := c.Request.Context()
	in := dto.BindListQuery(c, h.svc.Specs(), listDefaults(h.cfg))

	result, err := h.svc.List(ctx, in)
	if err != nil {
		respondError(c, err, "failed to list swimsuits")
		return
	}

	dto.SuccessWithPage(c, result.Items, dto.ToPageMeta(result.Metadata))
}

// ListCharacterSwimsuits 某角色的泳装列表
// @Summary 角色泳装列表
// @Tags Swimsuits
// @Produce json
// @Param id path string true "角色 ID"
// @Success 200 {object} dto.Response[[]query.Record]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/characters/{id}/swimsuits [get]
func (h *SwimsuitHandler) ListCharacterSwimsuits(c *gin.Context) {
	ctx := c.Request.Context()
	characterID := dto.BindCharacterID(c)
	in := dto.BindListQuery(c, h.svc.Specs(), listDefaults(h.cfg))

	result, err := h.svc.ListByCharacter(ctx, characterID, in)
	if err != nil {
		respondError(c, err, "failed to list character swimsuits")
		return
	}

	dto.SuccessWithPage(c, result.Items, dto.ToPageMeta(result.Metadata))
}

// GetSwimsuit 泳装详情
// @Summary 泳装详情
// @Tags Swimsuits
// @Produce json
// @Param id path string true "泳装 ID"
// @Success 200 {object} dto.Response[entity.Swimsuit]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/swimsuits/{id} [get]
func (h *SwimsuitHandler) GetSwimsuit(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	swimsuit, err := h.svc.Get(ctx, id)
	if err != nil {
		respondError(c, err, "failed to get swimsuit")
		return
	}

	dto.Success(c, swimsuit)
}

// CreateSwimsuit 创建泳装
// @Summary 在指定角色下创建泳装
// @Tags Swimsuits
// @Accept json
// @Produce json
// @Param id path string true "角色 ID"
// @Param body body dto.CreateSwimsuitRequest true "泳装信息"
// @Success 201 {object} dto.Response[entity.Swimsuit]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/characters/{id}/swimsuits [post]
func (h *SwimsuitHandler) CreateSwimsuit(c *gin.Context) {
	ctx := c.Request.Context()
	characterID := dto.BindCharacterID(c)

	var req dto.CreateSwimsuitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	swimsuit := req.ToEntity(characterID)
	if err := h.svc.Create(ctx, swimsuit); err != nil {
		respondError(c, err, "failed to create swimsuit")
		return
	}

	dto.Created(c, swimsuit)
}

// UpdateSwimsuit 更新泳装
// @Summary 更新泳装
// @Tags Swimsuits
// @Accept json
// @Produce json
// @Param id path string true "泳装 ID"
// @Param body body dto.UpdateSwimsuitRequest true "更新内容"
// @Success 200 {object} dto.Response[entity.Swimsuit]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/swimsuits/{id} [put]
func (h *SwimsuitHandler) UpdateSwimsuit(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	var req dto.UpdateSwimsuitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	swimsuit, err := h.svc.Get(ctx, id)
	if err != nil {
		respondError(c, err, "failed to get swimsuit")
		return
	}

	req.ApplyTo(swimsuit)

	if err := h.svc.Update(ctx, swimsuit); err != nil {
		respondError(c, err, "failed to update swimsuit")
		return
	}

	dto.Success(c, swimsuit)
}

// DeleteSwimsuit 删除泳装
// @Summary 删除泳装
// @Tags Swimsuits
// @Produce json
// @Param id path string true "泳装 ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/swimsuits/{id} [delete]
func (h *SwimsuitHandler) DeleteSwimsuit(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	if err := h.svc.Delete(ctx, id); err != nil {
		respondError(c, err, "failed to delete swimsuit")
		return
	}

	dto.NoContent(c)
}
