// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"venus-catalog-api/internal/application/catalog"
	"venus-catalog-api/internal/config"
	"venus-catalog-api/internal/interfaces/http/dto"
)

// DocumentHandler 文档处理器
type DocumentHandler struct {
	svc *catalog.DocumentService
	cfg *config.CatalogConfig
}

// NewDocumentHandler 创建文档处理器
func NewDocumentHandler(svc *catalog.DocumentService, cfg *config.CatalogConfig) *DocumentHandler {
	return &DocumentHandler{svc: svc, cfg: cfg}
}

// ListDocuments 文档列表
// @Summary 文档列表
// @Tags Documents
// @Produce json
// @Success 200 {object} dto.Response[[]query.Record]
// @Router /v1/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	ctx := c.Request.Context()
	in := dto.BindListQuery(c, h.svc.Specs(), listDefaults(h.cfg))

	result, err := h.svc.List(ctx, in)
	if err != nil {
		respondError(c, err, "failed to list documents")
		return
	}

	dto.SuccessWithPage(c, result.Items, dto.ToPageMeta(result.Metadata))
}

// GetDocument 文档详情，含富文本内容
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	document, err := h.svc.Get(ctx, id)
	if err != nil {
		respondError(c, err, "failed to get document")
		return
	}

	dto.Success(c, document)
}

// CreateDocument 创建文档
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	document := req.ToEntity()
	if err := h.svc.Create(ctx, document); err != nil {
		respondError(c, err, "failed to create document")
		return
	}

	dto.Created(c, document)
}

// UpdateDocument 更新文档
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	document, err := h.svc.Get(ctx, id)
	if err != nil {
		respondError(c, err, "failed to get document")
		return
	}

	req.ApplyTo(document)

	if err := h.svc.Update(ctx, document); err != nil {
		respondError(c, err, "failed to update document")
		return
	}

	dto.Success(c, document)
}

// SetDocumentPublished 切换文档发布状态
// @Summary 切换文档发布状态
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "文档 ID"
// @Param body body dto.SetPublishedRequest true "发布状态"
// @Success 200 {object} dto.Response[gin.H]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/documents/{id}/published [put]
func (h *DocumentHandler) SetDocumentPublished(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	var req dto.SetPublishedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.SetPublished(ctx, id, req.Published); err != nil {
		respondError(c, err, "failed to set document published state")
		return
	}

	dto.Success(c, gin.H{"id": id, "published": req.Published})
}

// DeleteDocument 删除文档
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindID(c)

	if err := h.svc.Delete(ctx, id); err != nil {
		respondError(c, err, "failed to delete document")
		return
	}

	dto.NoContent(c)
}
