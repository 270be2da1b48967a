package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kantorkita/presensi-backend-go/internal/domain/employee"
	"github.com/kantorkita/presensi-backend-go/internal/domain/presence"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/validator"
)

type fakePresenceService struct {
	doorResp  presence.DoorAccessResponse
	doorErr   error
	entryResp presence.ButtonStateResponse
	entryErr  error
	exitErr   error
	statResp  presence.StatisticResponse

	lastDoorReq presence.DoorAccessRequest
	lastMode    presence.StatisticMode
}

func (s *fakePresenceService) DoorAccess(ctx context.Context, req presence.DoorAccessRequest) (presence.DoorAccessResponse, error) {
	s.lastDoorReq = req
	return s.doorResp, s.doorErr
}

func (s *fakePresenceService) RecordEntry(ctx context.Context, req presence.EntryRequest) (presence.ButtonStateResponse, error) {
	return s.entryResp, s.entryErr
}

func (s *fakePresenceService) RecordExit(ctx context.Context, req presence.ExitRequest) (presence.ButtonStateResponse, error) {
	return presence.ButtonStateResponse{}, s.exitErr
}

func (s *fakePresenceService) History(ctx context.Context) (presence.HistoryResponse, error) {
	return presence.HistoryResponse{}, nil
}

func (s *fakePresenceService) Statistic(ctx context.Context, mode presence.StatisticMode) (presence.StatisticResponse, error) {
	s.lastMode = mode
	return s.statResp, nil
}

func (s *fakePresenceService) Dashboard(ctx context.Context) ([]presence.DashboardRow, error) {
	return nil, nil
}

func doorAccessRequest(t *testing.T, handler PresenceHandler, idCard string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/door_access/{id_card}", handler.DoorAccess)

	req := httptest.NewRequest(http.MethodPost, "/door_access/"+idCard, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestDoorAccessHandler_EntryOutcome(t *testing.T) {
	svc := &fakePresenceService{
		doorResp: presence.DoorAccessResponse{Outcome: presence.OutcomeEntry, Message: "entry recorded for Alice (OnTime)"},
	}
	rec := doorAccessRequest(t, NewPresenceHandler(svc), "42")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.lastDoorReq.CardNumber)
	assert.False(t, svc.lastDoorReq.At.IsZero())

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "entry recorded for Alice (OnTime)", body["message"])
}

func TestDoorAccessHandler_WaitOutcomeIsOK(t *testing.T) {
	svc := &fakePresenceService{
		doorResp: presence.DoorAccessResponse{Outcome: presence.OutcomeWait, Message: "expected exit for Alice is at 18:00:00"},
	}
	rec := doorAccessRequest(t, NewPresenceHandler(svc), "42")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDoorAccessHandler_AlreadyExitedConflicts(t *testing.T) {
	svc := &fakePresenceService{doorErr: presence.ErrAlreadyExited}
	rec := doorAccessRequest(t, NewPresenceHandler(svc), "42")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDoorAccessHandler_UnknownCardNotFound(t *testing.T) {
	svc := &fakePresenceService{doorErr: employee.ErrCardNotFound}
	rec := doorAccessRequest(t, NewPresenceHandler(svc), "42")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDoorAccessHandler_NonNumericCard(t *testing.T) {
	svc := &fakePresenceService{}
	rec := doorAccessRequest(t, NewPresenceHandler(svc), "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEntryHandler_ValidationFieldMap(t *testing.T) {
	svc := &fakePresenceService{
		entryErr: validator.ValidationErrors{
			{Field: "time", Message: "time is required"},
		},
	}
	handler := NewPresenceHandler(svc)

	body, _ := json.Marshal(presence.EntryRequest{Day: "Monday"})
	req := httptest.NewRequest(http.MethodPost, "/entry", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Entry(rec, req)

	assert.Equal(t, http.StatusNotAcceptable, rec.Code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Equal(t, "time is required", fields["time"])
}

func TestEntryHandler_MalformedJSON(t *testing.T) {
	handler := NewPresenceHandler(&fakePresenceService{})

	req := httptest.NewRequest(http.MethodPost, "/entry", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Entry(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExitHandler_NoOpenRecordConflicts(t *testing.T) {
	handler := NewPresenceHandler(&fakePresenceService{exitErr: presence.ErrNoOpenRecord})

	body, _ := json.Marshal(presence.ExitRequest{Date: 2, Month: 3, Year: 2026, Time: "18:00:00"})
	req := httptest.NewRequest(http.MethodPost, "/exit", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Exit(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStatisticHandler_ModeValidation(t *testing.T) {
	svc := &fakePresenceService{}
	handler := NewPresenceHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/statistic?mode=weekly", nil)
	rec := httptest.NewRecorder()
	handler.Statistic(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/statistic?mode=all", nil)
	rec = httptest.NewRecorder()
	handler.Statistic(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, presence.StatisticModeAll, svc.lastMode)
}
