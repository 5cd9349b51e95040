package rest

import (
	"context"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"io"
	"net/http"
	"strconv"
)

type HandlerDependency struct {
	l    logrus.FieldLogger
	db   *gorm.DB
	ctx  context.Context
	span opentracing.Span
}

func (h HandlerDependency) Logger() logrus.FieldLogger {
	return h.l
}

func (h HandlerDependency) DB() *gorm.DB {
	return h.db
}

func (h HandlerDependency) Context() context.Context {
	return h.ctx
}

func (h HandlerDependency) Span() opentracing.Span {
	return h.span
}

type HandlerContext struct {
	si     jsonapi.ServerInformation
	userId uint32
}

func (h HandlerContext) ServerInformation() jsonapi.ServerInformation {
	return h.si
}

// UserId is the authenticated host platform user.
func (h HandlerContext) UserId() uint32 {
	return h.userId
}

type GetHandler func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc

type InputHandler[M any] func(d *HandlerDependency, c *HandlerContext, model M) http.HandlerFunc

func ParseInput[M any](d *HandlerDependency, c *HandlerContext, next InputHandler[M]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var model M

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		err = jsonapi.Unmarshal(body, &model)
		if err != nil {
			d.l.WithError(err).Errorln("Deserializing input", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(d, c, model)(w, r)
	}
}

func dependency(l logrus.FieldLogger, db *gorm.DB, r *http.Request, span opentracing.Span) *HandlerDependency {
	return &HandlerDependency{l: l, db: db, ctx: r.Context(), span: span}
}

func RegisterHandler(l logrus.FieldLogger) func(db *gorm.DB) func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
	return func(db *gorm.DB) func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
		return func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
			return func(handlerName string, handler GetHandler) http.HandlerFunc {
				return RetrieveSpan(l, handlerName, func(sl logrus.FieldLogger, span opentracing.Span) http.HandlerFunc {
					fl := sl.WithFields(logrus.Fields{"originator": handlerName, "type": "rest_handler"})
					return ParseUser(fl, func(userId uint32) http.HandlerFunc {
						return func(w http.ResponseWriter, r *http.Request) {
							handler(dependency(fl, db, r, span), &HandlerContext{si: si, userId: userId})(w, r)
						}
					})
				})
			}
		}
	}
}

func RegisterInputHandler[M any](l logrus.FieldLogger) func(db *gorm.DB) func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
	return func(db *gorm.DB) func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
		return func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
			return func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
				return RetrieveSpan(l, handlerName, func(sl logrus.FieldLogger, span opentracing.Span) http.HandlerFunc {
					fl := sl.WithFields(logrus.Fields{"originator": handlerName, "type": "rest_handler"})
					return ParseUser(fl, func(userId uint32) http.HandlerFunc {
						return func(w http.ResponseWriter, r *http.Request) {
							d := dependency(fl, db, r, span)
							c := &HandlerContext{si: si, userId: userId}
							ParseInput[M](d, c, handler)(w, r)
						}
					})
				})
			}
		}
	}
}

type IdHandler func(id uint32) http.HandlerFunc

func parseId(l logrus.FieldLogger, name string, next IdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse %s from path.", name)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(uint32(id))(w, r)
	}
}

func ParseOwnerId(l logrus.FieldLogger, next IdHandler) http.HandlerFunc {
	return parseId(l, "ownerId", next)
}

func ParseUserId(l logrus.FieldLogger, next IdHandler) http.HandlerFunc {
	return parseId(l, "userId", next)
}
