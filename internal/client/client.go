// Package client holds the HTTP consumers of the three external
// collaborators: the identity provider, the identity/course service and
// the assessments/grading service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/visheshsahu1513/Smart-Learning/internal/errdefs"
)

// request is one outbound call. Token, when set, is presented as a
// bearer credential. ErrField names the JSON field the service uses for
// error messages ("detail" for the course service, "message" for the
// assessments service).
type request struct {
	method   string
	url      string
	token    string
	body     io.Reader
	bodyType string
	errField string
}

func doJSON(ctx context.Context, hc *http.Client, req request, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, req.method, req.url, req.body)
	if err != nil {
		return errdefs.Wrap(errdefs.KindUnavailable, err.Error(), err)
	}
	if req.bodyType != "" {
		httpReq.Header.Set("Content-Type", req.bodyType)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	resp, err := hc.Do(httpReq)
	if err != nil {
		return errdefs.Wrap(errdefs.KindUnavailable, err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errdefs.FromStatus(resp.StatusCode, errorMessage(resp.Body, req.errField))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errdefs.Wrap(errdefs.KindServer, "malformed response body", err)
	}
	return nil
}

func jsonBody(v any) (io.Reader, string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(data), "application/json", nil
}

// errorMessage extracts the named field from an error response body,
// falling back to the raw body text when it is not JSON.
func errorMessage(body io.Reader, field string) string {
	data, err := io.ReadAll(io.LimitReader(body, 8<<10))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return string(bytes.TrimSpace(data))
	}
	raw, ok := payload[field]
	if !ok {
		return string(bytes.TrimSpace(data))
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return string(raw)
	}
	return msg
}

// filePart and jsonPart describe multipart sections; buildMultipart
// assembles them into a request body.
type part struct {
	field    string
	filename string
	mime     string
	content  io.Reader
}

func fieldPart(field, value string) part {
	return part{field: field, content: bytes.NewReader([]byte(value))}
}

func filePart(field, filename string, content io.Reader) part {
	return part{field: field, filename: filename, content: content}
}

func jsonPart(field string, v any) (part, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return part{}, err
	}
	return part{field: field, filename: field + ".json", mime: "application/json", content: bytes.NewReader(data)}, nil
}

func buildMultipart(parts ...part) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		var (
			fw  io.Writer
			err error
		)
		switch {
		case p.filename == "":
			fw, err = w.CreateFormField(p.field)
		case p.mime != "":
			h := make(textproto.MIMEHeader)
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, p.field, p.filename))
			h.Set("Content-Type", p.mime)
			fw, err = w.CreatePart(h)
		default:
			fw, err = w.CreateFormFile(p.field, p.filename)
		}
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(fw, p.content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
