package character

import (
	"aa-wizard-industry/permission"
	"aa-wizard-industry/rest"
	"errors"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"net/http"
)

const (
	GetCharacters = "get_characters"
	LinkCharacter = "link_character"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) rest.RouteInitializer {
	return func(db *gorm.DB) rest.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			r := router.PathPrefix("/characters").Subrouter()
			r.HandleFunc("", rest.RegisterHandler(l)(db)(si)(GetCharacters, handleGetCharacters)).Methods(http.MethodGet)
			r.HandleFunc("", rest.RegisterInputHandler[RestModel](l)(db)(si)(LinkCharacter, handleLinkCharacter)).Methods(http.MethodPost)
		}
	}
}

func handleGetCharacters(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return permission.Require(d, c, permission.BasicAccess, func(w http.ResponseWriter, r *http.Request) {
		cs, err := GetForUser(d.Logger(), d.DB())(c.UserId())
		if err != nil {
			d.Logger().WithError(err).Errorf("Unable to get characters for user [%d].", c.UserId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		rest.Marshal[[]RestModel](d.Logger())(w)(c.ServerInformation())(TransformAll(cs))
	})
}

// handleLinkCharacter is called by the host platform when a user adds a main or alt. Linking for another user, or
// moving a character another user holds, requires the administrate permission.
func handleLinkCharacter(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userId := input.UserId
		if userId == 0 {
			userId = c.UserId()
		}
		name := permission.BasicAccess
		if userId != c.UserId() {
			name = permission.Administrate
		}
		e, err := GetById(d.Logger(), d.DB())(input.Id)
		if err != nil && !errors.Is(err, ErrNotFound) {
			d.Logger().WithError(err).Errorf("Unable to get character [%d].", input.Id)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if err == nil && e.UserId() != userId {
			name = permission.Administrate
		}
		permission.Require(d, c, name, func(w http.ResponseWriter, r *http.Request) {
			m, err := Link(d.Logger(), d.DB())(input.Id, input.Name, input.CorporationId, userId)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusCreated)
			rest.Marshal[RestModel](d.Logger())(w)(c.ServerInformation())(Transform(m))
		})(w, r)
	}
}
