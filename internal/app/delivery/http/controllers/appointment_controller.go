package controllers

import (
	"fmt"
	"net/http"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/app/services/core/appointments"
	"spectrumconnect-service/internal/app/services/core/session"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/dto/responses"
	"spectrumconnect-service/internal/pkg/exceptions"
	"spectrumconnect-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const noticeDateLayout = "Monday, January 2, 2006"

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	TherapistUsecase   contracts.TherapistUsecase
	Location           *time.Location
}

func NewAppointmentController(
	logger *zap.Logger,
	appointmentUsecase contracts.AppointmentUsecase,
	therapistUsecase contracts.TherapistUsecase,
	location *time.Location,
) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		TherapistUsecase:   therapistUsecase,
		Location:           location,
	}
}

// FindAll renders the appointments view for the session's role.
func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	query := requests.AppointmentQuery{
		Tab:  r.URL.Query().Get(constvars.URLQueryParamTab),
		Date: r.URL.Query().Get(constvars.URLQueryParamDate),
	}
	role := session.FromContext(r.Context()).Snapshot().Role

	ctrl.Log.Info("AppointmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
		zap.String(constvars.LoggingTabKey, query.Tab),
	)

	date, err := utils.ParseDate(query.Date, ctrl.Location)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	list, err := ctrl.AppointmentUsecase.List(r.Context(), role)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindAll error listing appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		middlewares.HandleError(ctrl.Log, w, r, exceptions.WithFallbackMessage(err, constvars.ErrClientAppointmentsLoadFailed))
		return
	}

	response := ctrl.buildAppointmentList(list, query.Tab, date)
	ctrl.Log.Info("AppointmentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response.Appointments)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccess, response)
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.BookAppointment)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	role := session.FromContext(r.Context()).Snapshot().Role
	ctrl.Log.Info("AppointmentController.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTherapistIDKey, request.TherapistID),
	)

	appointment, err := ctrl.AppointmentUsecase.Book(r.Context(), role, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.Book error booking appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsClientSide(err) {
			title := constvars.NoticeTitleError
			if exceptions.ClientMessage(err) == constvars.ErrClientIncompleteSelection {
				title = constvars.NoticeTitleIncompleteSelection
			}
			middlewares.HandleErrorWithTitle(ctrl.Log, w, r, title, err)
			return
		}
		middlewares.HandleErrorWithTitle(ctrl.Log, w, r, constvars.NoticeTitleBookingFailed, exceptions.WithClientMessage(err, constvars.ErrClientBookingFailed))
		return
	}

	date, _ := utils.ParseDate(request.Date, ctrl.Location)
	description := fmt.Sprintf(constvars.NoticeDescScheduledFormat,
		ctrl.therapistName(r, appointment),
		date.Format(noticeDateLayout),
		request.TimeSlot,
	)

	ctrl.Log.Info("AppointmentController.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	response := responses.BookedAppointment{
		Appointment: appointment,
		Tab:         string(models.AppointmentStatusPending),
	}
	notice := utils.NewNotice(constvars.NoticeTitleAppointmentScheduled, description)
	utils.BuildSuccessResponseWithNotice(w, constvars.StatusCreated, constvars.BookAppointmentSuccess, notice, response)
}

// Confirm accepts a pending request and answers with the refetched list.
func (ctrl *AppointmentController) Confirm(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Confirm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	_, err = ctrl.AppointmentUsecase.Confirm(r.Context(), appointmentID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.Confirm error confirming appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		middlewares.HandleError(ctrl.Log, w, r, exceptions.WithClientMessage(err, constvars.ErrClientConfirmFailed))
		return
	}

	role := session.FromContext(r.Context()).Snapshot().Role
	list, err := ctrl.AppointmentUsecase.List(r.Context(), role)
	if err != nil {
		middlewares.HandleError(ctrl.Log, w, r, exceptions.WithFallbackMessage(err, constvars.ErrClientAppointmentsLoadFailed))
		return
	}

	date, _ := utils.ParseDate("", ctrl.Location)
	response := ctrl.buildAppointmentList(list, r.URL.Query().Get(constvars.URLQueryParamTab), date)
	notice := utils.NewNotice(constvars.NoticeTitleAppointmentConfirmed, constvars.NoticeDescConfirmed)
	utils.BuildSuccessResponseWithNotice(w, constvars.StatusOK, constvars.ConfirmAppointmentDone, notice, response)
}

func (ctrl *AppointmentController) buildAppointmentList(list []models.Appointment, tab string, date time.Time) responses.AppointmentList {
	if tab == "" {
		tab = appointments.DefaultTab
	}
	return responses.AppointmentList{
		Tab:            tab,
		Appointments:   appointments.FilterByStatus(list, tab),
		Counts:         appointments.CountByStatus(list),
		Date:           date.Format(utils.DateLayout),
		SessionsOnDate: appointments.OnDate(list, date, ctrl.Location),
		TimeSlots:      appointments.TimeSlots,
	}
}

// therapistName prefers the name embedded in the appointment, then the directory.
func (ctrl *AppointmentController) therapistName(r *http.Request, appointment *models.Appointment) string {
	if appointment.Therapist != nil && appointment.Therapist.Name != "" {
		return appointment.Therapist.Name
	}
	therapist, err := ctrl.TherapistUsecase.FindByID(r.Context(), appointment.TherapistID)
	if err == nil && therapist.Name != "" {
		return therapist.Name
	}
	return fmt.Sprintf("therapist #%d", appointment.TherapistID)
}
