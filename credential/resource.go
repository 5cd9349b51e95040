package credential

import (
	"aa-wizard-industry/character"
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
	CreateCredential = "create_credential"
	DeleteCredential = "delete_credential"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB, s Settings) rest.RouteInitializer {
	return func(db *gorm.DB, s Settings) rest.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			r := router.PathPrefix("/credentials").Subrouter()
			r.HandleFunc("", rest.RegisterInputHandler[RestModel](l)(db)(si)(CreateCredential, handleCreateCredential(s))).Methods(http.MethodPost)
			r.HandleFunc("/{credentialId}", rest.RegisterHandler(l)(db)(si)(DeleteCredential, handleDeleteCredential(s))).Methods(http.MethodDelete)
		}
	}
}

// ownCharacter answers 403 unless the character is linked to the acting user.
func ownCharacter(d *rest.HandlerDependency, c *rest.HandlerContext, characterId uint32, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ch, err := character.GetById(d.Logger(), d.DB())(characterId)
		if errors.Is(err, character.ErrNotFound) || (err == nil && ch.UserId() != c.UserId()) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		next(w, r)
	}
}

func handleCreateCredential(s Settings) rest.InputHandler[RestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
		return permission.Require(d, c, permission.BasicAccess, ownCharacter(d, c, input.CharacterId, func(w http.ResponseWriter, r *http.Request) {
			if input.RefreshToken == "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			m, err := Create(d.Logger(), d.DB(), s)(input.CharacterId, input.AccessToken, input.RefreshToken, input.ExpiresAt, input.Scopes)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusCreated)
			rest.Marshal[RestModel](d.Logger())(w)(c.ServerInformation())(Transform(m))
		}))
	}
}

func handleDeleteCredential(s Settings) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseUint(mux.Vars(r)["credentialId"], 10, 32)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			m, err := GetById(d.Logger(), d.DB(), s)(uint32(id))
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			permission.Require(d, c, permission.BasicAccess, ownCharacter(d, c, m.CharacterId(), func(w http.ResponseWriter, r *http.Request) {
				if err := Delete(d.Logger(), d.DB())(m.Id()); err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				w.WriteHeader(http.StatusNoContent)
			}))(w, r)
		}
	}
}
