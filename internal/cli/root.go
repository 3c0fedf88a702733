// Package cli содержит команды утилиты slidectl.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/iwtcode/slideService/internal/adapters/repositories/database"
	"github.com/iwtcode/slideService/internal/config"
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"
)

// Deps открывает зависимости лениво, чтобы команды без БД не требовали ее.
type Deps struct {
	Config     func() (*config.AppConfig, error)
	Repository func(cfg *config.AppConfig) (interfaces.SettingsRepository, error)
	Logger     *logging.Logger
}

func defaultDeps() Deps {
	return Deps{
		Config: config.LoadConfiguration,
		Repository: func(cfg *config.AppConfig) (interfaces.SettingsRepository, error) {
			return database.NewRepository(cfg, logging.NewNopLogger())
		},
		Logger: logging.NewNopLogger(),
	}
}

// NewRootCommand собирает дерево команд slidectl.
func NewRootCommand(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "slidectl",
		Short: "slidectl manages the slide service from the command line.",
		Long: `slidectl manages the slide service from the command line. ` +
			`It resolves slide numbers, normalizes image references, ` +
			`edits the stored endpoint and runs one-shot fetches against it.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newResolveCommand(deps),
		newNormalizeCommand(),
		newEndpointCommand(deps),
		newFetchCommand(deps),
	)
	return root
}

// Execute запускает slidectl с зависимостями по умолчанию.
func Execute() {
	if err := NewRootCommand(defaultDeps()).Execute(); err != nil {
		os.Exit(1)
	}
}
