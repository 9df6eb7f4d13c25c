package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andrew-chang-dewitt/hoops/model"
	"github.com/andrew-chang-dewitt/hoops/repository"
	"github.com/andrew-chang-dewitt/hoops/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockEnvelopeRepo struct{ mock.Mock }

func (m *mockEnvelopeRepo) Create(envelope *model.Envelope) (*model.Envelope, error) {
	args := m.Called(envelope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope), args.Error(1)
}

func (m *mockEnvelopeRepo) GetByUserID(userID uuid.UUID) ([]*model.Envelope, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Envelope), args.Error(1)
}

func (m *mockEnvelopeRepo) GetOwnedByID(id, userID uuid.UUID) (*model.Envelope, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope), args.Error(1)
}

func (m *mockEnvelopeRepo) Update(id any, partial map[string]any) (*model.Envelope, error) {
	args := m.Called(id, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope), args.Error(1)
}

func (m *mockEnvelopeRepo) Delete(id any) error {
	args := m.Called(id)
	return args.Error(0)
}

// newEnvelopeMux mounts the envelope handlers on a mux so path values
// resolve the same way they do in the real router.
func newEnvelopeMux(repo repository.IEnvelopeRepository) *http.ServeMux {
	h := NewEnvelopeHandler(service.NewEnvelopeService(repo))

	mux := http.NewServeMux()
	mux.Handle("POST /envelope", ErrorHandlingMiddleware(h.CreateEnvelope))
	mux.Handle("GET /envelope", ErrorHandlingMiddleware(h.ListEnvelopes))
	mux.Handle("GET /envelope/{id}", ErrorHandlingMiddleware(h.GetEnvelope))
	mux.Handle("PUT /envelope/{id}", ErrorHandlingMiddleware(h.UpdateEnvelope))
	mux.Handle("DELETE /envelope/{id}", ErrorHandlingMiddleware(h.DeleteEnvelope))
	return mux
}

func TestEnvelopeHandler_CreateEnvelope(t *testing.T) {
	t.Run("binds owner from token and zeroes funds", func(t *testing.T) {
		mockRepo := new(mockEnvelopeRepo)
		mux := newEnvelopeMux(mockRepo)

		userID := uuid.New()
		envelopeID := uuid.New()

		mockRepo.On("Create", mock.MatchedBy(func(e *model.Envelope) bool {
			return e.UserID == userID && e.TotalFunds == 0
		})).Return(&model.Envelope{ID: envelopeID, Name: "envelope", TotalFunds: 0, UserID: userID}, nil).Once()

		// A spoofed user_id and non-zero funds in the body must be ignored.
		body := `{"name": "envelope", "user_id": "` + uuid.NewString() + `", "total_funds": 9000}`
		req := authenticated(httptest.NewRequest("POST", "/envelope", strings.NewReader(body)), userID)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var response model.Envelope
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, envelopeID, response.ID)
		assert.Equal(t, "envelope", response.Name)
		assert.Equal(t, userID, response.UserID)
		assert.Zero(t, response.TotalFunds)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing name is a 400", func(t *testing.T) {
		mockRepo := new(mockEnvelopeRepo)
		mux := newEnvelopeMux(mockRepo)

		req := authenticated(httptest.NewRequest("POST", "/envelope", strings.NewReader(`{}`)), uuid.New())
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("no user in context is a 401", func(t *testing.T) {
		mockRepo := new(mockEnvelopeRepo)
		mux := newEnvelopeMux(mockRepo)

		req := httptest.NewRequest("POST", "/envelope", strings.NewReader(`{"name": "envelope"}`))
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestEnvelopeHandler_ListEnvelopes(t *testing.T) {
	mockRepo := new(mockEnvelopeRepo)
	mux := newEnvelopeMux(mockRepo)

	userID := uuid.New()
	owned := []*model.Envelope{
		{ID: uuid.New(), Name: "envelope", TotalFunds: 1, UserID: userID},
		{ID: uuid.New(), Name: "envelope", TotalFunds: 1, UserID: userID},
		{ID: uuid.New(), Name: "envelope", TotalFunds: 1, UserID: userID},
	}
	mockRepo.On("GetByUserID", userID).Return(owned, nil).Once()

	req := authenticated(httptest.NewRequest("GET", "/envelope", nil), userID)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response []model.Envelope
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Len(t, response, 3)
	for _, item := range response {
		assert.Equal(t, userID, item.UserID)
	}
	mockRepo.AssertExpectations(t)
}

func TestEnvelopeHandler_GetEnvelope(t *testing.T) {
	t.Run("owned envelope round-trips", func(t *testing.T) {
		mockRepo := new(mockEnvelopeRepo)
		mux := newEnvelopeMux(mockRepo)

		userID := uuid.New()
		envelope := &model.Envelope{ID: uuid.New(), Name: "envelope", TotalFunds: 1, UserID: userID}
		mockRepo.On("GetOwnedByID", envelope.ID, userID).Return(envelope, nil).Once()

		req := authenticated(httptest.NewRequest("GET", "/envelope/"+envelope.ID.String(), nil), userID)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response model.Envelope
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, envelope.ID, response.ID)
		assert.Equal(t, envelope.Name, response.Name)
		assert.Equal(t, envelope.UserID, response.UserID)
		assert.Equal(t, envelope.TotalFunds, response.TotalFunds)
	})

	t.Run("another user's envelope is a 404, not a 403", func(t *testing.T) {
		mockRepo := new(mockEnvelopeRepo)
		mux := newEnvelopeMux(mockRepo)

		envelopeID := uuid.New()
		requester := uuid.New()
		mockRepo.On("GetOwnedByID", envelopeID, requester).Return(nil, repository.ErrNotFound).Once()

		req := authenticated(httptest.NewRequest("GET", "/envelope/"+envelopeID.String(), nil), requester)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		mockRepo := new(mockEnvelopeRepo)
		mux := newEnvelopeMux(mockRepo)

		req := authenticated(httptest.NewRequest("GET", "/envelope/not-a-uuid", nil), uuid.New())
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockRepo.AssertNotCalled(t, "GetOwnedByID")
	})
}

func TestEnvelopeHandler_UpdateEnvelope(t *testing.T) {
	mockRepo := new(mockEnvelopeRepo)
	mux := newEnvelopeMux(mockRepo)

	userID := uuid.New()
	envelope := &model.Envelope{ID: uuid.New(), Name: "old", TotalFunds: 5, UserID: userID}
	updated := &model.Envelope{ID: envelope.ID, Name: "new", TotalFunds: 5, UserID: userID}

	mockRepo.On("GetOwnedByID", envelope.ID, userID).Return(envelope, nil).Once()
	mockRepo.On("Update", envelope.ID, map[string]any{"name": "new"}).Return(updated, nil).Once()

	req := authenticated(httptest.NewRequest("PUT", "/envelope/"+envelope.ID.String(), strings.NewReader(`{"name": "new"}`)), userID)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response model.Envelope
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "new", response.Name)
	mockRepo.AssertExpectations(t)
}

func TestEnvelopeHandler_DeleteEnvelope(t *testing.T) {
	t.Run("success is a 204", func(t *testing.T) {
		mockRepo := new(mockEnvelopeRepo)
		mux := newEnvelopeMux(mockRepo)

		userID := uuid.New()
		envelope := &model.Envelope{ID: uuid.New(), Name: "done", UserID: userID}
		mockRepo.On("GetOwnedByID", envelope.ID, userID).Return(envelope, nil).Once()
		mockRepo.On("Delete", envelope.ID).Return(nil).Once()

		req := authenticated(httptest.NewRequest("DELETE", "/envelope/"+envelope.ID.String(), nil), userID)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("foreign envelope is a 404", func(t *testing.T) {
		mockRepo := new(mockEnvelopeRepo)
		mux := newEnvelopeMux(mockRepo)

		envelopeID := uuid.New()
		requester := uuid.New()
		mockRepo.On("GetOwnedByID", envelopeID, requester).Return(nil, repository.ErrNotFound).Once()

		req := authenticated(httptest.NewRequest("DELETE", "/envelope/"+envelopeID.String(), nil), requester)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}
