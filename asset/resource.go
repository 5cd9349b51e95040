package asset

import (
	"aa-wizard-industry/owner"
	"aa-wizard-industry/permission"
	"aa-wizard-industry/rest"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"net/http"
)

const GetAssets = "get_assets"

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) rest.RouteInitializer {
	return func(db *gorm.DB) rest.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			router.HandleFunc("/assets", rest.RegisterHandler(l)(db)(si)(GetAssets, handleGetAssets)).Methods(http.MethodGet).Queries("ownerId", "{ownerId}")
		}
	}
}

func handleGetAssets(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return permission.Require(d, c, permission.BasicAccess, owner.RequireOwned(d, c, func(o owner.Model) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ms, err := GetForScope(d.Logger(), d.DB())(o.Scope())
			if err != nil {
				d.Logger().WithError(err).Errorf("Unable to retrieve assets of [%s].", o.Scope())
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			rest.Marshal[[]RestModel](d.Logger())(w)(c.ServerInformation())(TransformAll(ms))
		}
	}))
}
