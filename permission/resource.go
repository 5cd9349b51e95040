package permission

import (
	"aa-wizard-industry/rest"
	"errors"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"net/http"
)

const (
	GetPermissions    = "get_permissions"
	AssignPermissions = "assign_permissions"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) rest.RouteInitializer {
	return func(db *gorm.DB) rest.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			r := router.PathPrefix("/users/{userId}/permissions").Subrouter()
			r.HandleFunc("", rest.RegisterHandler(l)(db)(si)(GetPermissions, handleGetPermissions)).Methods(http.MethodGet)
			r.HandleFunc("", rest.RegisterInputHandler[RestModel](l)(db)(si)(AssignPermissions, handleAssignPermissions)).Methods(http.MethodPut)
		}
	}
}

// Require answers 403 unless the acting user holds the permission.
func Require(d *rest.HandlerDependency, c *rest.HandlerContext, name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := Has(d.DB())(c.UserId(), name)
		if err != nil {
			d.Logger().WithError(err).Errorf("Unable to check permission [%s] of user [%d].", name, c.UserId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if !ok {
			d.Logger().Debugf("User [%d] lacks permission [%s].", c.UserId(), name)
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

func handleGetPermissions(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return rest.ParseUserId(d.Logger(), func(userId uint32) http.HandlerFunc {
		name := BasicAccess
		if userId != c.UserId() {
			name = Administrate
		}
		return Require(d, c, name, func(w http.ResponseWriter, r *http.Request) {
			ps, err := GetForUser(d.Logger(), d.DB())(userId)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			rest.Marshal[RestModel](d.Logger())(w)(c.ServerInformation())(Transform(userId, ps))
		})
	})
}

func handleAssignPermissions(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
	return rest.ParseUserId(d.Logger(), func(userId uint32) http.HandlerFunc {
		return Require(d, c, Administrate, func(w http.ResponseWriter, r *http.Request) {
			err := Assign(d.Logger(), d.DB())(userId, input.Permissions)
			if errors.Is(err, ErrUnknown) {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
}
