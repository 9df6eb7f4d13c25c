package handler

import (
	"encoding/json"
	"net/http"

	"github.com/andrew-chang-dewitt/hoops/common"
	"github.com/andrew-chang-dewitt/hoops/logger"
	"github.com/andrew-chang-dewitt/hoops/model"
	"github.com/andrew-chang-dewitt/hoops/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EnvelopeHandler holds dependencies for envelope-related handlers.
type EnvelopeHandler struct {
	service *service.EnvelopeService
}

func NewEnvelopeHandler(s *service.EnvelopeService) *EnvelopeHandler {
	return &EnvelopeHandler{service: s}
}

// currentUserID pulls the authenticated user's id out of the request
// context placed there by AuthMiddleware.
func currentUserID(r *http.Request) (uuid.UUID, *common.AppError) {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	return userID, nil
}

// envelopeIDFromPath parses the {id} path segment as a UUID.
func envelopeIDFromPath(r *http.Request) (uuid.UUID, *common.AppError) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, common.NewAppError(http.StatusBadRequest, "Invalid envelope ID in URL path", err)
	}
	return id, nil
}

// CreateEnvelope godoc
// @Summary      Create an envelope
// @Description  Creates a new envelope owned by the authenticated user. Funds start at zero.
// @Tags         envelopes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        envelope body model.CreateEnvelopeRequest true "Envelope to create"
// @Success      201  {object}  model.Envelope
// @Failure      400  {object}  common.AppError "Invalid request body"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      500  {object}  common.AppError "Internal server error while creating envelope"
// @Router       /envelope [post]
func (h *EnvelopeHandler) CreateEnvelope(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateEnvelopeRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}

	log := logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"name":    req.Name,
	})
	log.Info("Create envelope request received")

	envelope, err := h.service.CreateEnvelope(userID, req.Name)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create envelope", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(envelope)
	return nil
}

// ListEnvelopes godoc
// @Summary      List the caller's envelopes
// @Description  Returns every envelope owned by the authenticated user, never anyone else's.
// @Tags         envelopes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Envelope
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      500  {object}  common.AppError "Internal server error while listing envelopes"
// @Router       /envelope [get]
func (h *EnvelopeHandler) ListEnvelopes(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}

	envelopes, err := h.service.ListEnvelopesForUser(userID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve envelopes", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(envelopes)
	return nil
}

// GetEnvelope godoc
// @Summary      Get one envelope
// @Description  Returns the envelope only if it exists and is owned by the caller; a foreign envelope is a 404.
// @Tags         envelopes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Envelope UUID"
// @Success      200  {object}  model.Envelope
// @Failure      400  {object}  common.AppError "Invalid envelope ID in URL path"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      404  {object}  common.AppError "Envelope not found"
// @Failure      500  {object}  common.AppError "Internal server error while retrieving envelope"
// @Router       /envelope/{id} [get]
func (h *EnvelopeHandler) GetEnvelope(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}

	id, appErr := envelopeIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	envelope, err := h.service.GetEnvelopeForUser(id, userID)
	if err != nil {
		switch err {
		case service.ErrEnvelopeNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve envelope", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(envelope)
	return nil
}

// UpdateEnvelope godoc
// @Summary      Update an envelope
// @Description  Applies a partial update to an envelope owned by the caller.
// @Tags         envelopes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Envelope UUID"
// @Param        envelope body model.UpdateEnvelopeRequest true "Fields to update"
// @Success      200  {object}  model.Envelope
// @Failure      400  {object}  common.AppError "Invalid request body or envelope ID"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      404  {object}  common.AppError "Envelope not found"
// @Failure      500  {object}  common.AppError "Internal server error while updating envelope"
// @Router       /envelope/{id} [put]
func (h *EnvelopeHandler) UpdateEnvelope(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.UpdateEnvelopeRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}

	id, appErr := envelopeIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	envelope, err := h.service.UpdateEnvelopeForUser(id, userID, req)
	if err != nil {
		switch err {
		case service.ErrEnvelopeNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update envelope", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(envelope)
	return nil
}

// DeleteEnvelope godoc
// @Summary      Delete an envelope
// @Description  Removes an envelope owned by the caller.
// @Tags         envelopes
// @Security     BearerAuth
// @Param        id path string true "Envelope UUID"
// @Success      204  "No Content"
// @Failure      400  {object}  common.AppError "Invalid envelope ID in URL path"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      404  {object}  common.AppError "Envelope not found"
// @Failure      500  {object}  common.AppError "Internal server error while deleting envelope"
// @Router       /envelope/{id} [delete]
func (h *EnvelopeHandler) DeleteEnvelope(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}

	id, appErr := envelopeIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	if err := h.service.DeleteEnvelopeForUser(id, userID); err != nil {
		switch err {
		case service.ErrEnvelopeNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not delete envelope", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
