package errordata

import (
	"context"
)

type key struct{}

var errorDataKey key

// ErrorData is a per-request side channel for upstream failure detail. The
// user-facing payload stays generic; handlers read the detail from here when
// building the 500 response.
type ErrorData struct {
	Detail string
}

func WithErrorData(ctx context.Context) context.Context {
	ed := &ErrorData{Detail: ""}
	return context.WithValue(ctx, errorDataKey, ed)
}

func GetErrorData(ctx context.Context) *ErrorData {
	val := ctx.Value(errorDataKey)
	ed, ok := val.(*ErrorData)
	if !ok {
		return nil
	}
	return ed
}

func (ed *ErrorData) SetDetail(msg string) {
	ed.Detail = msg
}

func (ed *ErrorData) HasDetail() bool {
	return ed.Detail != ""
}
