package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/direct-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/direct-dashboard-api/infrastructure/seed"
	"github.com/vfg2006/direct-dashboard-api/internal/api"
	"github.com/vfg2006/direct-dashboard-api/internal/config"
	"github.com/vfg2006/direct-dashboard-api/internal/scheduler"
	"github.com/vfg2006/direct-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/direct-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("log level set to %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	campaigns, err := seed.Load(cfg.Campaign.SeedFile)
	if err != nil {
		logrus.WithError(err).Fatal("error loading campaign seed")
	}
	logrus.WithField("campaigns", len(campaigns)).Info("campaign seed loaded")

	campaignRepo := repository.NewCampaignRepository(campaigns)

	// store único do processo, compartilhado pela API e pelo agendador
	store := campaigning.NewService(
		campaignRepo,
		campaigning.NewRandomGenerator(cfg.Campaign.RandomSeed),
		campaigning.LatencyFromConfig(cfg),
	)

	campaignSyncService := scheduler.NewCampaignSyncService(store, cfg)
	if err := campaignSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting campaign sync scheduler")
	}

	server := api.New(cfg, store, campaignSyncService)
	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
