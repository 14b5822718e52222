package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tramibot/cmd/api/dto"
	"tramibot/cmd/api/services"
)

// HealthHandler godoc
// @Summary      Health check
// @Description  서버 상태와 활성화된 분석 백엔드 목록
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler(backends []string) gin.HandlerFunc {
	if backends == nil {
		backends = []string{}
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok", Backends: backends})
	}
}

// ScanUpdatesHandler godoc
// @Summary      Scan now
// @Description  공식 관보를 지금 스캔하고 이민 관련 항목의 영향 분석을 반환한다.
// @Description  피드 조회 실패나 관련 항목 없음은 에러가 아니며 message 로 안내된다.
// @Tags         updates
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ScanRequestDTO  false  "optional user context"
// @Success      200   {object}  dto.ScanResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /updates/scan [post]
func ScanUpdatesHandler(svc *services.UpdateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ScanRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		c.JSON(http.StatusOK, svc.Scan(c.Request.Context(), req.UserContext))
	}
}

// RecommendedActionsHandler godoc
// @Summary      Recommended actions
// @Description  관보 항목과 영향 분석에 대해 3~5개의 실행 단계를 생성한다.
// @Tags         updates
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ActionsRequestDTO  true  "update title and analysis"
// @Success      200   {object}  dto.TextResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /updates/actions [post]
func RecommendedActionsHandler(svc *services.GuidanceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ActionsRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		c.JSON(http.StatusOK, svc.Actions(c.Request.Context(), req))
	}
}
