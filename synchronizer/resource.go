package synchronizer

import (
	"aa-wizard-industry/kafka/producer"
	"aa-wizard-industry/owner"
	"aa-wizard-industry/permission"
	"aa-wizard-industry/rest"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"net/http"
)

const RequestOwnerSync = "request_owner_sync"

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB, p producer.Provider) rest.RouteInitializer {
	return func(db *gorm.DB, p producer.Provider) rest.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			router.HandleFunc("/owners/{ownerId}/sync", rest.RegisterHandler(l)(db)(si)(RequestOwnerSync, handleRequestSync(p))).Methods(http.MethodPost)
		}
	}
}

// handleRequestSync queues the sync and answers 202. Targets come from repeated target query parameters, all when
// absent.
func handleRequestSync(p producer.Provider) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return permission.Require(d, c, permission.BasicAccess, owner.RequireOwned(d, c, func(o owner.Model) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				targets := make([]Target, 0)
				for _, v := range r.URL.Query()["target"] {
					t := Target(v)
					if !t.Valid() {
						rest.WriteError(d.Logger(), w, http.StatusBadRequest, "unknown sync target "+v)
						return
					}
					targets = append(targets, t)
				}
				if err := RequestSync(d.Logger(), p)(o.Id(), c.UserId(), targets...); err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				w.WriteHeader(http.StatusAccepted)
			}
		}))
	}
}
