package rest

import (
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/sirupsen/logrus"
	"net/http"
)

type SpanHandler func(l logrus.FieldLogger, span opentracing.Span) http.HandlerFunc

// RetrieveSpan continues the caller's trace when one is propagated in the request headers.
func RetrieveSpan(l logrus.FieldLogger, name string, next SpanHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var span opentracing.Span
		wireContext, err := opentracing.GlobalTracer().Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(r.Header))
		if err != nil {
			span = opentracing.StartSpan(name)
		} else {
			span = opentracing.StartSpan(name, ext.RPCServerOption(wireContext))
		}
		defer span.Finish()
		next(l, span)(w, r.WithContext(opentracing.ContextWithSpan(r.Context(), span)))
	}
}
