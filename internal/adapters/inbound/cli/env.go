package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	configloader "github.com/menurota/menurota/internal/adapters/outbound/config"
	"github.com/menurota/menurota/internal/adapters/outbound/store"
	"github.com/menurota/menurota/internal/application"
	"github.com/menurota/menurota/internal/domain"
)

// env bundles the loaded config and the wired services for one command run.
type env struct {
	cfg       domain.Config
	log       zerolog.Logger
	catalogue *application.CatalogueService
	shortlist *application.ShortlistService
	planning  *application.PlanningService
	analysis  *application.AnalysisService
	shopping  *application.ShoppingService
}

// newEnv loads .menurota.yaml from the working directory, applies the
// persistent flag overrides, and wires the services against the file store.
func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := configloader.New().Load(".")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.DataDir = v
	}
	if v, _ := cmd.Flags().GetString("user"); v != "" {
		cfg.User = v
	}
	if cfg.DataDir == "" {
		cfg.DataDir = store.DefaultDir()
	}

	level := zerolog.WarnLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().Logger()

	blobs := store.New(cfg.DataDir)
	catalogue := application.NewCatalogueService(blobs, cfg.User, log)
	shortlist := application.NewShortlistService(blobs, cfg.User, log)
	planning := application.NewPlanningService(blobs, catalogue, shortlist, cfg.User, log)
	analysis := application.NewAnalysisService(blobs, catalogue, planning, cfg.User, log)
	shoppingSvc := application.NewShoppingService(catalogue, planning, log)

	return &env{
		cfg:       cfg,
		log:       log,
		catalogue: catalogue,
		shortlist: shortlist,
		planning:  planning,
		analysis:  analysis,
		shopping:  shoppingSvc,
	}, nil
}

// resolveDish accepts either a dish ID or a dish name.
func (e *env) resolveDish(ref string) (domain.Dish, error) {
	if d, err := e.catalogue.Get(ref); err == nil {
		return d, nil
	}
	return e.catalogue.GetByName(ref)
}
