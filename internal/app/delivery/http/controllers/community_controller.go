package controllers

import (
	"net/http"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type CommunityController struct {
	Log              *zap.Logger
	CommunityUsecase contracts.CommunityUsecase
}

func NewCommunityController(logger *zap.Logger, communityUsecase contracts.CommunityUsecase) *CommunityController {
	return &CommunityController{
		Log:              logger,
		CommunityUsecase: communityUsecase,
	}
}

func (ctrl *CommunityController) FindTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := ctrl.CommunityUsecase.FindTopics(r.Context(), r.URL.Query().Get(constvars.URLQueryParamCategory))
	if err != nil {
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTopicsSuccess, topics)
}

func (ctrl *CommunityController) CreateTopic(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateTopic)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	topic, err := ctrl.CommunityUsecase.CreateTopic(r.Context(), request)
	if err != nil {
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTopicSuccess, topic)
}

func (ctrl *CommunityController) LikeTopic(w http.ResponseWriter, r *http.Request) {
	topicID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.CommunityUsecase.LikeTopic(r.Context(), topicID)
	if err != nil {
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LikeTopicSuccess, nil)
}

func (ctrl *CommunityController) FindComments(w http.ResponseWriter, r *http.Request) {
	topicID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	comments, err := ctrl.CommunityUsecase.FindComments(r.Context(), topicID)
	if err != nil {
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCommentsSuccess, comments)
}

func (ctrl *CommunityController) CreateComment(w http.ResponseWriter, r *http.Request) {
	topicID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateComment)
	err = utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	comment, err := ctrl.CommunityUsecase.CreateComment(r.Context(), topicID, request)
	if err != nil {
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCommentSuccess, comment)
}

func (ctrl *CommunityController) FindEvents(w http.ResponseWriter, r *http.Request) {
	events, err := ctrl.CommunityUsecase.FindEvents(r.Context())
	if err != nil {
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEventsSuccess, events)
}

func (ctrl *CommunityController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateEvent)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	event, err := ctrl.CommunityUsecase.CreateEvent(r.Context(), request)
	if err != nil {
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateEventSuccess, event)
}

func (ctrl *CommunityController) JoinEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.CommunityUsecase.JoinEvent(r.Context(), eventID)
	if err != nil {
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.JoinEventSuccess, nil)
}
