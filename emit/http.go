package emit

import "goa.design/facet/model"

// SuccessStatus resolves the HTTP success status for a method: the explicit
// override when present, 201 for creations, 204 when nothing is returned,
// 200 otherwise.
func SuccessStatus(m *model.Method) int {
	if m.Response.StatusCode != 0 {
		return m.Response.StatusCode
	}
	switch {
	case m.Op.Kind == model.KindCreation:
		return 201
	case m.Return.Kind == model.ShapeUnit:
		return 204
	default:
		return 200
	}
}

// ContentType resolves the response content type, defaulting to JSON. A
// streaming method without an override serves an event stream.
func ContentType(m *model.Method) string {
	if m.Response.ContentType != "" {
		return m.Response.ContentType
	}
	if m.Streaming() {
		return "text/event-stream"
	}
	return "application/json"
}
