// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package nasiface

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/omec-project/emm-codec/logger"
	"github.com/omec-project/emm-codec/nas/ie"
)

// EncodeResponse ... Result of an encode request.
type EncodeResponse struct {
	Message string `json:"message"`
	Length  int    `json:"length"`
	Hex     string `json:"hex"`
}

// DecodeRequest ... Body of a decode request.
type DecodeRequest struct {
	Hex string `json:"hex"`
}

// DecodeResponse ... Result of a decode request.
type DecodeResponse struct {
	Message  string      `json:"message"`
	Consumed int         `json:"consumed"`
	IEs      interface{} `json:"ies"`
}

// ErrorResponse ... Body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type CodecHandler struct {
	codec *CodecService
}

func setupCodecHandler(r *mux.Router, codec *CodecService) {
	h := &CodecHandler{codec: codec}

	r.HandleFunc("/v1/nas/emm", h.listMessages).Methods(http.MethodGet)
	r.HandleFunc("/v1/nas/emm/{message}/encode", h.encode).Methods(http.MethodPost)
	r.HandleFunc("/v1/nas/emm/{message}/decode", h.decode).Methods(http.MethodPost)
}

func (h *CodecHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	sendHTTPResp(http.StatusOK, w, h.codec.Messages())
}

func (h *CodecHandler) encode(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["message"]
	logger.HttpLog.Debugln("handle http request to encode", name)

	m, err := h.codec.New(name)
	if err != nil {
		sendHTTPError(http.StatusNotFound, w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		sendHTTPError(http.StatusBadRequest, w, err)
		return
	}

	if err := json.Unmarshal(body, m); err != nil {
		sendHTTPError(http.StatusBadRequest, w, err)
		return
	}

	b, err := h.codec.Encode(m)
	if err != nil {
		sendHTTPError(http.StatusUnprocessableEntity, w, err)
		return
	}

	sendHTTPResp(http.StatusOK, w, EncodeResponse{
		Message: name,
		Length:  len(b),
		Hex:     hex.EncodeToString(b),
	})
}

func (h *CodecHandler) decode(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["message"]
	logger.HttpLog.Debugln("handle http request to decode", name)

	if _, err := h.codec.New(name); err != nil {
		sendHTTPError(http.StatusNotFound, w, err)
		return
	}

	var req DecodeRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		sendHTTPError(http.StatusBadRequest, w, err)
		return
	}

	if err := json.Unmarshal(body, &req); err != nil {
		sendHTTPError(http.StatusBadRequest, w, err)
		return
	}

	b, err := hex.DecodeString(req.Hex)
	if err != nil {
		sendHTTPError(http.StatusBadRequest, w, ErrInvalidArgumentWithReason("hex", req.Hex, err.Error()))
		return
	}

	// an empty hex string is an empty buffer, not a missing one
	if b == nil {
		b = []byte{}
	}

	m, n, err := h.codec.Decode(name, b)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, errInvalidArgument) {
			status = http.StatusBadRequest
		}

		sendHTTPError(status, w, err)

		return
	}

	sendHTTPResp(http.StatusOK, w, DecodeResponse{
		Message:  name,
		Consumed: n,
		IEs:      m,
	})
}

func sendHTTPError(status int, w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: err.Error()}
	if kind := ie.Kind(err); kind != nil {
		resp.Kind = kind.Error()
	}

	logger.HttpLog.Infof("http request failed with status %d: %v", status, err)
	sendHTTPResp(status, w, resp)
}

func sendHTTPResp(status int, w http.ResponseWriter, resp interface{}) {
	jsonResp, err := json.Marshal(resp)
	if err != nil {
		logger.HttpLog.Errorln("Error happened in JSON marshal. Err: ", err)
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(jsonResp)
	if err != nil {
		logger.HttpLog.Errorln("http response write failed : ", err)
	}
}
