// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// maxBodySize bounds move request bodies. A 5x5 board is 25 bytes, anything
// near this limit is not a move request.
const maxBodySize = 64 << 10

// decodeEnvelope reads the raw move request from r. Form bodies yield the
// first value of every key as a string. JSON bodies must hold an object and
// keep numbers as [json.Number] so integral values survive unchanged.
//
// A request without a Content-Type is treated as an empty form: every field
// is absent and validation reports them.
func decodeEnvelope(w http.ResponseWriter, r *http.Request) (models.RequestEnvelope, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return models.RequestEnvelope{}, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
	}

	switch mediaType {
	case "application/json":
		return decodeJSONEnvelope(r.Body)
	case "multipart/form-data":
		if err = r.ParseMultipartForm(maxBodySize); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		return formEnvelope(r.MultipartForm.Value), nil
	case "application/x-www-form-urlencoded":
		if err = r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		return formEnvelope(r.PostForm), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}
}

func decodeJSONEnvelope(body io.Reader) (models.RequestEnvelope, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var envelope models.RequestEnvelope
	if err := dec.Decode(&envelope); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrInvalidBody)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	// a literal null decodes into a nil map
	if envelope == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidBody)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrInvalidBody)
	}

	return envelope, nil
}

func formEnvelope(values map[string][]string) models.RequestEnvelope {
	envelope := make(models.RequestEnvelope, len(values))
	for key, vs := range values {
		if len(vs) > 0 {
			envelope[key] = vs[0]
		}
	}
	return envelope
}
