package main

import (
	"aa-wizard-industry/asset"
	"aa-wizard-industry/blueprint"
	"aa-wizard-industry/catalog"
	"aa-wizard-industry/character"
	"aa-wizard-industry/configuration"
	"aa-wizard-industry/credential"
	"aa-wizard-industry/database"
	"aa-wizard-industry/esi"
	"aa-wizard-industry/job"
	"aa-wizard-industry/kafka/consumer"
	"aa-wizard-industry/kafka/producer"
	"aa-wizard-industry/location"
	"aa-wizard-industry/logger"
	"aa-wizard-industry/owner"
	"aa-wizard-industry/permission"
	"aa-wizard-industry/reference"
	"aa-wizard-industry/rest"
	"aa-wizard-industry/service"
	"aa-wizard-industry/synchronizer"
	"aa-wizard-industry/task"
	"aa-wizard-industry/tracing"
	"aa-wizard-industry/universe"
)
import _ "net/http/pprof"

const serviceName = "wizard-industry"
const consumerGroupId = "Wizard Industry Service"

func GetServer() rest.Server {
	return rest.NewServer("", "/api/wi/")
}

func main() {
	l := logger.CreateLogger(serviceName)
	l.Infoln("Starting main service.")

	tdm := service.GetTeardownManager()

	tc, err := tracing.InitTracer(l)(serviceName)
	if err != nil {
		l.WithError(err).Fatal("Unable to initialize tracer.")
	}

	config := configuration.Get(l)

	db := database.Connect(l, database.SetMigrations(
		universe.Migration,
		location.Migration,
		character.Migration,
		credential.Migration,
		permission.Migration,
		owner.Migration,
		asset.Migration,
		job.Migration,
		blueprint.Migration,
	))

	if err = permission.Bootstrap(l, db); err != nil {
		l.WithError(err).Fatal("Unable to bootstrap permissions.")
	}

	settings, err := credential.SettingsFromEnv()
	if err != nil {
		l.WithError(err).Fatal("Unable to initialize credential settings.")
	}

	p := producer.ProviderImpl(l)(tdm.Context())
	d := synchronizer.Dependencies{Db: db, Esi: esi.NewClientFromEnv(), Settings: settings, Producer: p}

	consumer.Start[synchronizer.Command](l, tdm.Context(), tdm.WaitGroup())(synchronizer.CommandConsumer(l)(consumerGroupId), synchronizer.HandleCommand(d))

	tr := task.Register(l, tdm.Context(), tdm.WaitGroup())
	tr(task.NewReferenceImport(db, reference.SourceFromEnv(), config.Tasks.ReferenceImport))
	tr(task.NewOwnerSync(d, config.Tasks.OwnerSync, config.Sync.Concurrency))
	tr(task.NewContainerUpkeep(db, config.Tasks.ContainerUpkeep))

	rest.CreateService(l, tdm.Context(), tdm.WaitGroup(), GetServer().GetPrefix(),
		character.InitResource(GetServer())(db),
		permission.InitResource(GetServer())(db),
		credential.InitResource(GetServer())(db, settings),
		owner.InitResource(GetServer())(db, settings),
		asset.InitResource(GetServer())(db),
		job.InitResource(GetServer())(db),
		blueprint.InitResource(GetServer())(db),
		catalog.InitResource(GetServer())(db, config.Catalog),
		synchronizer.InitResource(GetServer())(db, p),
	)

	tdm.TeardownFunc(producer.Close(l))
	tdm.TeardownFunc(tracing.Teardown(l)(tc))

	tdm.Wait()
	l.Infoln("Service shutdown.")
}
