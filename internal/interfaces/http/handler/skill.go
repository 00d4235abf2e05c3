// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"venus-catalog-api/internal/application/catalog"
	"venus-catalog-api/internal/config"
	"venus-catalog-api/internal/interfaces/http/dto"
)

// SkillHandler 技能处理器
type SkillHandler struct {
	svc *catalog.SkillService
	cfg *config.CatalogConfig
}

// NewSkillHandler 创建技能处理器
func NewSkillHandler(svc *catalog.SkillService, cfg *config.CatalogConfig) *SkillHandler {
	return &SkillHandler{svc: svc, cfg: cfg}
}

// ListSkills 技能列表
// @Summary 技能列表
// @Tags Skills
// @Produce json
// @Success 200 {object} dto.Response[[]query.Record]
// @Router /v1/skills [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	ctx := c.Request.Context()
	in := dto.BindListQuery(c, h.svc.Specs(), listDefaults(h.cfg))

	result, err := h.svc.List(ctx, in)
	if err != nil {
		respondError(c, err, "failed to list skills")
		return
	}

	dto.SuccessWithPage(c, result.Items, dto.ToPageMeta(result.Metadata))
}

// GetSkill 技能详情
func (h *SkillHandler) GetSkill(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	skill, err := h.svc.Get(ctx, id)
	if err != nil {
		respondError(c, err, "failed to get skill")
		return
	}

	dto.Success(c, skill)
}

// CreateSkill 创建技能
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	skill := req.ToEntity()
	if err := h.svc.Create(ctx, skill); err != nil {
		respondError(c, err, "failed to create skill")
		return
	}

	dto.Created(c, skill)
}

// UpdateSkill 更新技能
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	var req dto.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	skill, err := h.svc.Get(ctx, id)
	if err != nil {
		respondError(c, err, "failed to get skill")
		return
	}

	req.ApplyTo(skill)

	if err := h.svc.Update(ctx, skill); err != nil {
		respondError(c, err, "failed to update skill")
		return
	}

	dto.Success(c, skill)
}

// DeleteSkill 删除技能
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	if err := h.svc.Delete(ctx, id); err != nil {
		respondError(c, err, "failed to delete skill")
		return
	}

	dto.NoContent(c)
}
