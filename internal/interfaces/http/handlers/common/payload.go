// Package common holds request helpers shared by the record handlers.
package common

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/constants"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
)

// Meta keys travel with an edit payload but never reach the allow-list.
const (
	MetaID                 = "id"
	MetaPendingAttachments = "pending_attachments"
	MetaComplaintID        = "complaint_id"
	MetaPoisonReportID     = "poison_report_id"
)

const maxPayloadBytes = 1 << 20

var metaKeys = []string{MetaID, MetaPendingAttachments, MetaComplaintID, MetaPoisonReportID}

// Payload is an edit request flattened into candidate columns plus the meta
// values extracted from it.
type Payload struct {
	Fields             map[string]any
	ID                 int64
	ComplaintID        int64
	PoisonReportID     int64
	PendingAttachments []string
}

// BindPayload reads a JSON object, urlencoded form or multipart form into a
// Payload. Array form keys ("name[]") keep every value; other form keys keep
// the first.
func BindPayload(c *gin.Context) (*Payload, error) {
	raw, err := readObject(c)
	if err != nil {
		return nil, err
	}

	p := &Payload{
		ID:                 metaInt(raw[MetaID]),
		ComplaintID:        metaInt(raw[MetaComplaintID]),
		PoisonReportID:     metaInt(raw[MetaPoisonReportID]),
		PendingAttachments: attachment.ParseNames(raw[MetaPendingAttachments]),
	}
	for _, key := range metaKeys {
		delete(raw, key)
	}
	p.Fields = raw
	return p, nil
}

// BindRows reads a bulk body: a JSON array of objects, or an object holding
// the array under rowsKey or "rows".
func BindRows(c *gin.Context, rowsKey string) ([]map[string]any, error) {
	body, err := readBody(c)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.NewValidationError("request body is required")
	}

	var rows []map[string]any
	if trimmed[0] == '[' {
		if err := decode(trimmed, &rows); err != nil {
			return nil, errors.NewValidationError("body must be a JSON array of objects")
		}
		return rows, nil
	}

	var envelope map[string]json.RawMessage
	if err := decode(trimmed, &envelope); err != nil {
		return nil, errors.NewValidationError("body must be JSON")
	}
	list, ok := envelope[rowsKey]
	if !ok {
		list, ok = envelope["rows"]
	}
	if !ok {
		return nil, errors.NewValidationError(rowsKey + " is required")
	}
	if err := decode(list, &rows); err != nil {
		return nil, errors.NewValidationError(rowsKey + " must be an array of objects")
	}
	return rows, nil
}

// ActorFromContext returns the employee set by the auth middleware. An
// anonymous request yields the zero Actor.
func ActorFromContext(c *gin.Context) record.Actor {
	var actor record.Actor
	if v, ok := c.Get(constants.ContextKeyEmpID); ok {
		if id, ok := v.(int64); ok {
			actor.EmpID = id
		}
	}
	actor.Role = c.GetString(constants.ContextKeyRole)
	return actor
}

func readObject(c *gin.Context) (map[string]any, error) {
	switch c.ContentType() {
	case gin.MIMEMultipartPOSTForm:
		form, err := c.MultipartForm()
		if err != nil {
			return nil, errors.NewValidationError("invalid multipart form")
		}
		return flattenForm(form.Value), nil
	case gin.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, errors.NewValidationError("invalid form body")
		}
		return flattenForm(c.Request.PostForm), nil
	}

	body, err := readBody(c)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}
	var obj map[string]any
	if err := decode(body, &obj); err != nil {
		return nil, errors.NewValidationError("body must be a JSON object")
	}
	if obj == nil {
		obj = map[string]any{}
	}
	return obj, nil
}

func readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPayloadBytes+1))
	if err != nil {
		return nil, errors.NewValidationError("failed to read request body")
	}
	if len(body) > maxPayloadBytes {
		return nil, errors.NewValidationError("request body is too large")
	}
	return body, nil
}

// decode keeps numbers as json.Number so integer columns survive intact.
func decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func flattenForm(values map[string][]string) map[string]any {
	out := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if name, ok := strings.CutSuffix(key, "[]"); ok {
			out[name] = append([]string(nil), vals...)
			continue
		}
		out[key] = vals[0]
	}
	return out
}

func metaInt(v any) int64 {
	switch n := v.(type) {
	case json.Number:
		id, _ := n.Int64()
		return id
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case string:
		id, _ := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return id
	}
	return 0
}
