package app

import (
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/fx"

	"github.com/cvlsoft/aios_backend/config"
	"github.com/cvlsoft/aios_backend/internal/repo"
	"github.com/cvlsoft/aios_backend/internal/service/content"
	"github.com/cvlsoft/aios_backend/internal/service/lead"
	"github.com/cvlsoft/aios_backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideLeadRepository,
		ProvideLeadService,
		ProvideContentService,
	),
)

func ProvideLeadRepository(db *mongo.Database) *repo.LeadRepository {
	return repo.NewLeadRepository(db)
}

func ProvideLeadService(leads *repo.LeadRepository, mailer *email.Client, cfg *config.Config) lead.Service {
	return lead.New(leads, mailer, cfg.Leads)
}

func ProvideContentService() content.Service {
	return content.New()
}
