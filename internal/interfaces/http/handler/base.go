package handler

import (
	"github.com/gin-gonic/gin"

	"venus-catalog-api/internal/config"
	"venus-catalog-api/internal/interfaces/http/dto"
	"venus-catalog-api/pkg/errors"
	"venus-catalog-api/pkg/logger"
)

// listDefaults 由目录配置构建列表查询默认值
func listDefaults(cfg *config.CatalogConfig) dto.ListDefaults {
	return dto.ListDefaults{
		PageSize:    cfg.DefaultPageSize,
		MaxPageSize: cfg.MaxPageSize,
	}
}

// respondError 统一错误出口：AppError 按其状态码返回，其余记日志后回 500
func respondError(c *gin.Context, err error, msg string) {
	if errors.IsAppError(err) {
		appErr := errors.AsAppError(err)
		dto.ErrorWithDetail(c, appErr.HTTPStatus, appErr.Message, appErr.Detail)
		return
	}
	logger.Error(c.Request.Context(), msg, err)
	dto.InternalError(c, msg)
}
