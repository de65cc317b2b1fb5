package chi

import (
	"fmt"
	"net/http"

	"github.com/formvault/formvault/internal/domain"
)

// Entity-change alert headers. Write responses carry an
// X-<app>-alert header with the key "<app>.<entity>.<verb>" and an
// X-<app>-params header with the affected record ID, so UI clients
// can toast a translated notification without parsing the body.

func setCreationAlert(w http.ResponseWriter, appName string, id int64) {
	setAlert(w, appName, "created", id)
}

func setUpdateAlert(w http.ResponseWriter, appName string, id int64) {
	setAlert(w, appName, "updated", id)
}

func setDeletionAlert(w http.ResponseWriter, appName string, id int64) {
	setAlert(w, appName, "deleted", id)
}

func setAlert(w http.ResponseWriter, appName, verb string, id int64) {
	w.Header().Set(
		fmt.Sprintf("X-%s-alert", appName),
		fmt.Sprintf("%s.%s.%s", appName, domain.EntityName, verb),
	)
	w.Header().Set(fmt.Sprintf("X-%s-params", appName), fmt.Sprintf("%d", id))
}
