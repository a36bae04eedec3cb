package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tcfw/docloader/internal/config"
	"github.com/tcfw/docloader/internal/contexts"
	"github.com/tcfw/docloader/internal/utils/logging"
	"github.com/tcfw/docloader/pkg/docloader"
)

var (
	resolveCmd = &cobra.Command{
		Use:   "resolve <reference>",
		Short: "resolve a DID or HTTP(S) reference to a document",
		Args:  cobra.ExactArgs(1),
		RunE:  runResolve,
	}
)

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	opts := []docloader.LoaderOption{
		docloader.WithLogger(logging.Entry()),
	}

	store, err := buildCache(cfg.Cache())
	if err != nil {
		return errors.Wrap(err, "initing cache")
	}
	if store != nil {
		logging.WithField("backend", cfg.Cache().Backend).Debug("cache configured")

		opts = append(opts,
			docloader.WithCache(store),
			docloader.WithCacheTTL(cfg.Cache().TTL),
		)
	}

	if manifest := cfg.ContextsManifest(); manifest != "" {
		pinned, err := contexts.Load(manifest)
		if err != nil {
			return errors.Wrap(err, "loading pinned contexts")
		}

		opts = append(opts, docloader.WithPinnedDocuments(pinned))
	}

	loader, err := docloader.NewLoader(opts...)
	if err != nil {
		return errors.Wrap(err, "initing loader")
	}
	defer loader.Close()

	doc, err := loader.Load(args[0], docloader.Options{})
	if err != nil {
		logging.WithError(err).Error("resolving reference")
		return err
	}

	s, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling document")
	}

	fmt.Printf("%s\n", s)

	return nil
}
