package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tramibot/cmd/api/dto"
	"tramibot/cmd/api/services"
)

// ListProceduresHandler godoc
// @Summary      List monitored procedures
// @Tags         procedures
// @Produce      json
// @Success      200  {object}  dto.ProceduresResponseDTO
// @Router       /procedures [get]
func ListProceduresHandler(svc *services.GuidanceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Procedures())
	}
}

// ProcedureGuideHandler godoc
// @Summary      Procedure guide
// @Description  절차 하나에 대한 최신 안내(요건, 단계, 처리 기간, 흔한 문제)를 생성한다.
// @Tags         procedures
// @Accept       json
// @Produce      json
// @Param        body  body      dto.GuideRequestDTO  true  "procedure and optional user context"
// @Success      200   {object}  dto.GuideResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /procedures/guide [post]
func ProcedureGuideHandler(svc *services.GuidanceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GuideRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		resp, err := svc.Guide(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ProcedureImpactHandler godoc
// @Summary      Procedure impact
// @Description  관보 변경이 특정 절차에 미치는 영향을 목록으로 생성한다.
// @Tags         procedures
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ProcedureImpactRequestDTO  true  "procedure and update"
// @Success      200   {object}  dto.TextResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /procedures/impact [post]
func ProcedureImpactHandler(svc *services.GuidanceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ProcedureImpactRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		resp, err := svc.Impact(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// PredictionsHandler godoc
// @Summary      Change predictions
// @Description  향후 4~6주 절차 변경 예측. 공식 정보가 아니다.
// @Tags         procedures
// @Produce      json
// @Success      200  {object}  dto.PredictionsResponseDTO
// @Router       /predictions [get]
func PredictionsHandler(svc *services.GuidanceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Predictions(c.Request.Context()))
	}
}
