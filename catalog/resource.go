package catalog

import (
	"aa-wizard-industry/configuration"
	"aa-wizard-industry/permission"
	"aa-wizard-industry/rest"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"net/http"
)

const GetCatalog = "get_catalog"

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB, c configuration.Catalog) rest.RouteInitializer {
	return func(db *gorm.DB, c configuration.Catalog) rest.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			router.HandleFunc("/catalog", rest.RegisterHandler(l)(db)(si)(GetCatalog, handleGetCatalog(c))).Methods(http.MethodGet)
		}
	}
}

func handleGetCatalog(cfg configuration.Catalog) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return permission.Require(d, c, permission.BlueprintCatalog, func(w http.ResponseWriter, r *http.Request) {
			m, err := ForUser(d.Logger(), d.DB(), cfg)(c.UserId())
			if err != nil {
				d.Logger().WithError(err).Errorf("Unable to build catalog for user [%d].", c.UserId())
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			rest.Marshal[RestModel](d.Logger())(w)(c.ServerInformation())(Transform(c.UserId(), m))
		})
	}
}
