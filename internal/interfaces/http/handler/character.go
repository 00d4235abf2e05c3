// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"venus-catalog-api/internal/application/catalog"
	"venus-catalog-api/internal/config"
	"venus-catalog-api/internal/interfaces/http/dto"
	"venus-catalog-api/pkg/logger"
)

// CharacterHandler 角色处理器
type CharacterHandler struct {
	svc *catalog.CharacterService
	cfg *config.CatalogConfig
}

// NewCharacterHandler 创建角色处理器
func NewCharacterHandler(svc *catalog.CharacterService, cfg *config.CatalogConfig) *CharacterHandler {
	return &CharacterHandler{svc: svc, cfg: cfg}
}

// ListCharacters 角色列表
// @Summary 角色列表
// @Description 支持多语言搜索、过滤、排序和分页的角色列表
// @Tags Characters
// @Produce json
// @Param search query string false "多语言搜索词"
// @Param sort query string false "排序键，前缀 - 表示降序"
// @Param page query int false "页码"
// @Param limit query int false "每页条数"
// @Success 200 {object} dto.Response[[]query.Record]
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/characters [get]
func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	ctx := c.Request.Context()
	in := dto.BindListQuery(c, h.svc.Specs(), listDefaults(h.cfg))

	result, err := h.svc.List(ctx, in)
	if err != nil {
		respondError(c, err, "failed to list characters")
		return
	}

	dto.SuccessWithPage(c, result.Items, dto.ToPageMeta(result.Metadata))
}

// GetCharacter 角色详情
// @Summary 角色详情
// @Tags Characters
// @Produce json
// @Param id path string true "角色 ID"
// @Success 200 {object} dto.Response[entity.Character]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/characters/{id} [get]
func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	character, err := h.svc.Get(ctx, id)
	if err != nil {
		respondError(c, err, "failed to get character")
		return
	}

	dto.Success(c, character)
}

// CreateCharacter 创建角色
// @Summary 创建角色
// @Tags Characters
// @Accept json
// @Produce json
// @Param body body dto.CreateCharacterRequest true "角色信息"
// @Success 201 {object} dto.Response[entity.Character]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/characters [post]
func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	character := req.ToEntity()
	if err := h.svc.Create(ctx, character); err != nil {
		respondError(c, err, "failed to create character")
		return
	}

	dto.Created(c, character)
}

// UpdateCharacter 更新角色
// @Summary 更新角色
// @Tags Characters
// @Accept json
// @Produce json
// @Param id path string true "角色 ID"
// @Param body body dto.UpdateCharacterRequest true "更新内容"
// @Success 200 {object} dto.Response[entity.Character]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/characters/{id} [put]
func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	var req dto.UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	character, err := h.svc.Get(ctx, id)
	if err != nil {
		respondError(c, err, "failed to get character")
		return
	}

	req.ApplyTo(character)

	if err := h.svc.Update(ctx, character); err != nil {
		respondError(c, err, "failed to update character")
		return
	}

	dto.Success(c, character)
}

// DeleteCharacter 删除角色
// @Summary 删除角色
// @Tags Characters
// @Produce json
// @Param id path string true "角色 ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/characters/{id} [delete]
func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	if err := h.svc.Delete(ctx, id); err != nil {
		respondError(c, err, "failed to delete character")
		return
	}

	logger.Debug(ctx, "character removed via api", "character_id", id)
	dto.NoContent(c)
}
