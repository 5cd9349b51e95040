package owner

import (
	"aa-wizard-industry/credential"
	"aa-wizard-industry/permission"
	"aa-wizard-industry/rest"
	"errors"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"net/http"
	"strconv"
)

const (
	GetOwners        = "get_owners"
	SetupCharacterOp = "setup_character"
	SetupCorpOp      = "setup_corporation"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB, s credential.Settings) rest.RouteInitializer {
	return func(db *gorm.DB, s credential.Settings) rest.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			r := router.PathPrefix("/owners").Subrouter()
			r.HandleFunc("", rest.RegisterHandler(l)(db)(si)(GetOwners, handleGetOwners)).Methods(http.MethodGet)
			r.HandleFunc("/characters", rest.RegisterInputHandler[RestModel](l)(db)(si)(SetupCharacterOp, handleSetup(permission.AddCharacter, func(d *rest.HandlerDependency) func(uint32, uint32) (Model, error) {
				return SetupCharacter(d.Logger(), d.DB(), s)
			}))).Methods(http.MethodPost)
			r.HandleFunc("/corporations", rest.RegisterInputHandler[RestModel](l)(db)(si)(SetupCorpOp, handleSetup(permission.AddCorporation, func(d *rest.HandlerDependency) func(uint32, uint32) (Model, error) {
				return SetupCorporation(d.Logger(), d.DB(), s)
			}))).Methods(http.MethodPost)
		}
	}
}

func handleGetOwners(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return permission.Require(d, c, permission.BasicAccess, func(w http.ResponseWriter, r *http.Request) {
		os, err := GetForUser(d.Logger(), d.DB())(c.UserId())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		rest.Marshal[[]RestModel](d.Logger())(w)(c.ServerInformation())(TransformAll(os))
	})
}

type setupFunc func(d *rest.HandlerDependency) func(userId uint32, characterId uint32) (Model, error)

func handleSetup(name string, setup setupFunc) rest.InputHandler[RestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
		return permission.Require(d, c, name, func(w http.ResponseWriter, r *http.Request) {
			m, err := setup(d)(c.UserId(), input.CharacterId)
			var notOwned NotOwnedError
			if errors.As(err, &notOwned) {
				rest.WriteError(d.Logger(), w, http.StatusForbidden, notOwned.Error())
				return
			}
			if errors.Is(err, ErrMissingScopes) {
				rest.WriteError(d.Logger(), w, http.StatusForbidden, err.Error())
				return
			}
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusCreated)
			rest.Marshal[RestModel](d.Logger())(w)(c.ServerInformation())(Transform(m))
		})
	}
}

// RequireOwned loads the owner named by the ownerId path variable or query parameter. Owners of other users answer
// 404 unless the acting user administrates.
func RequireOwned(d *rest.HandlerDependency, c *rest.HandlerContext, next func(o Model) http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := mux.Vars(r)["ownerId"]
		if !ok {
			raw = r.URL.Query().Get("ownerId")
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			d.Logger().WithError(err).Debugf("Unable to parse owner id [%s].", raw)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		o, err := GetById(d.Logger(), d.DB())(uint32(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if o.UserId() != c.UserId() {
			admin, err := permission.Has(d.DB())(c.UserId(), permission.Administrate)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !admin {
				w.WriteHeader(http.StatusNotFound)
				return
			}
		}
		next(o)(w, r)
	}
}
