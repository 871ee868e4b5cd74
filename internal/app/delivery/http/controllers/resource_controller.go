package controllers

import (
	"net/http"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ResourceController struct {
	Log             *zap.Logger
	ResourceUsecase contracts.ResourceUsecase
}

func NewResourceController(logger *zap.Logger, resourceUsecase contracts.ResourceUsecase) *ResourceController {
	return &ResourceController{
		Log:             logger,
		ResourceUsecase: resourceUsecase,
	}
}

func (ctrl *ResourceController) FindAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resources, err := ctrl.ResourceUsecase.FindAll(r.Context(), query.Get(constvars.URLQueryParamSearch), query.Get(constvars.URLQueryParamTab))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetResourcesSuccess, resources)
}
