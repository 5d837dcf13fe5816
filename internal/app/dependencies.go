package app

import (
	"database/sql"

	"github.com/timekeeper/timekeeper/internal/event_bus"
	"github.com/timekeeper/timekeeper/internal/utils"
	"github.com/timekeeper/timekeeper/pkg/allotment"
	"github.com/timekeeper/timekeeper/pkg/auth"
	"github.com/timekeeper/timekeeper/pkg/entry"
	"github.com/timekeeper/timekeeper/pkg/project"
	"github.com/timekeeper/timekeeper/pkg/report"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	AuthService auth.Service
	AuthHandler *auth.Handler

	ProjectRepo    project.Repo
	ProjectService *project.ServiceImpl
	ProjectHandler *project.Handler

	AllotmentRepo    allotment.Repo
	AllotmentService *allotment.ServiceImpl
	AllotmentHandler *allotment.Handler

	EntryRepo    entry.Repo
	EntryService *entry.ServiceImpl
	EntryHandler *entry.Handler

	ReportService *report.ServiceImpl
	CsvRenderer   *report.CsvRendererImpl
	ReportHandler *report.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.AuthService = auth.NewService(auth.NewRepo(db), deps.Clock)
	deps.AuthHandler = auth.NewHandler(deps.AuthService)

	deps.ProjectRepo = project.NewRepo(db)
	deps.ProjectService = project.NewService(deps.ProjectRepo, deps.Bus)
	deps.ProjectHandler = project.NewHandler(deps.ProjectService)

	deps.AllotmentRepo = allotment.NewRepo(db)
	deps.AllotmentService = allotment.NewService(deps.AllotmentRepo, deps.ProjectRepo, deps.Bus)
	deps.AllotmentHandler = allotment.NewHandler(deps.AllotmentService)

	deps.EntryRepo = entry.NewRepo(db)
	deps.EntryService = entry.NewService(deps.EntryRepo, deps.ProjectRepo, deps.Bus)
	deps.EntryHandler = entry.NewHandler(deps.EntryService)

	deps.ReportService = report.NewService(deps.ProjectRepo, deps.EntryRepo)
	deps.CsvRenderer = report.NewCsvRenderer()
	deps.ReportHandler = report.NewHandler(deps.ReportService, deps.CsvRenderer)

	subscribeLedgerLogging(deps.Bus)

	return deps
}

// subscribeLedgerLogging attaches observers for ledger mutations. Reports are
// recomputed from storage per request, so nothing needs invalidation here;
// the subscribers only give the ledger a change log.
func subscribeLedgerLogging(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped(bus, event_bus.ProjectCreated, func(e event_bus.EventT[event_bus.ProjectCreatedData]) error {
		log.Infof("project %d created with code %s", e.Data.Id, e.Data.Code)
		return nil
	})
	event_bus.SubscribeTyped(bus, event_bus.ProjectDeleted, func(e event_bus.EventT[event_bus.ProjectDeletedData]) error {
		log.Infof("project %d deleted with its overrides and entries", e.Data.Id)
		return nil
	})
	event_bus.SubscribeTyped(bus, event_bus.EntryUpserted, func(e event_bus.EventT[event_bus.EntryUpsertedData]) error {
		log.Infof("entry set: project %d, %s, %.2fh", e.Data.ProjectId, e.Data.Date, e.Data.Hours)
		return nil
	})
	event_bus.SubscribeTyped(bus, event_bus.AllotmentOverridden, func(e event_bus.EventT[event_bus.AllotmentOverriddenData]) error {
		log.Infof("allotment override set: project %d, %s, %.2fh", e.Data.ProjectId, e.Data.Month, e.Data.Hours)
		return nil
	})
}
