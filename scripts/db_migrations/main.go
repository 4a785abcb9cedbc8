package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/budgettime-server/internal/config"
	"github.com/carson-networks/budgettime-server/internal/logging"
	"github.com/carson-networks/budgettime-server/internal/schema"
	"github.com/carson-networks/budgettime-server/internal/storage"
)

func main() {
	drop := flag.Bool("drop", false, "remove the ledger collections from the schema catalog instead of reconciling them; SQL tables and their rows are kept")
	flag.Parse()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	logger := logging.SetupLoggingWithLevel(logging.ParseLevel(env.LogLevel))

	db, err := storage.NewStorage(env)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer db.Close()

	if err := db.Migrate(logger); err != nil {
		logger.WithError(err).Fatal("storage.Migrate")
		return
	}

	ctx := context.Background()
	reconciler := schema.NewReconciler(db.Read().Catalog, logger)
	declarations := schema.Ledger()

	if *drop {
		dropped, err := reconciler.Drop(ctx, schema.DropOrder(declarations)...)
		if err != nil {
			logger.WithError(err).Fatal("Reconciler.Drop")
			return
		}
		logger.WithField("dropped", len(dropped)).Info("Drop status")
		return
	}

	changes, err := reconciler.ReconcileAll(ctx, declarations)
	if err != nil {
		logger.WithError(err).Fatal("Reconciler.ReconcileAll")
		return
	}

	changed := 0
	for _, change := range changes {
		if !change.Empty() {
			changed++
		}
	}
	logger.WithFields(logrus.Fields{
		"collections": len(changes),
		"changed":     changed,
	}).Info("Reconcile status")
}
