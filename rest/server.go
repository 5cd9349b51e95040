package rest

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

const EnvPort = "REST_PORT"

type RouteInitializer func(router *mux.Router, l logrus.FieldLogger)

// CreateService serves the routes under prefix until ctx is cancelled.
func CreateService(l logrus.FieldLogger, ctx context.Context, wg *sync.WaitGroup, prefix string, initializers ...RouteInitializer) {
	router := mux.NewRouter().PathPrefix(prefix).Subrouter().StrictSlash(true)
	router.Use(commonHeader)
	for _, initializer := range initializers {
		initializer(router, l)
	}

	port := os.Getenv(EnvPort)
	if port == "" {
		port = "8080"
	}
	hs := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  time.Minute,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Infof("Starting server on port [%s].", port)
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.WithError(err).Errorf("Error while serving.")
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		l.Infof("Shutting down server on port [%s].", port)
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(sctx); err != nil {
			l.WithError(err).Errorf("Error shutting down server.")
		}
	}()
}

func commonHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.api+json")
		next.ServeHTTP(w, r)
	})
}

// Marshal writes the JSON:API document for the model.
func Marshal[M any](l logrus.FieldLogger) func(w http.ResponseWriter) func(si jsonapi.ServerInformation) func(m M) {
	return func(w http.ResponseWriter) func(si jsonapi.ServerInformation) func(m M) {
		return func(si jsonapi.ServerInformation) func(m M) {
			return func(m M) {
				res, err := jsonapi.MarshalWithURLs(m, si)
				if err != nil {
					l.WithError(err).Errorf("Unable to marshal models.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				_, err = w.Write(res)
				if err != nil {
					l.WithError(err).Errorf("Unable to write response.")
				}
			}
		}
	}
}

type Server struct {
	baseUrl string
	prefix  string
}

func NewServer(baseUrl string, prefix string) Server {
	return Server{baseUrl: baseUrl, prefix: prefix}
}

func (s Server) GetBaseURL() string {
	return s.baseUrl
}

func (s Server) GetPrefix() string {
	return s.prefix
}

type errorObject struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// WriteError answers with a JSON:API error document carrying a user facing message.
func WriteError(l logrus.FieldLogger, w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(struct {
		Errors []errorObject `json:"errors"`
	}{Errors: []errorObject{{Status: strconv.Itoa(status), Detail: detail}}})
	if err != nil {
		l.WithError(err).Errorf("Unable to write error response.")
	}
}
