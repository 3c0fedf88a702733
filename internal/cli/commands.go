package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iwtcode/slideService/internal/config"
	"github.com/iwtcode/slideService/internal/services/slideshow"
	"github.com/iwtcode/slideService/internal/services/source"
	"github.com/iwtcode/slideService/internal/usecases"
)

func newResolveCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve VALUE",
		Short: "Print the slide number for a value.",
		Long: "Print the slide number for a value. Thresholds are taken from --thresholds " +
			"or, when omitted, loaded from the stored endpoint.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("некорректное значение '%s': %w", args[0], err)
			}

			thresholds, _ := cmd.Flags().GetFloat64Slice("thresholds")
			if !cmd.Flags().Changed("thresholds") {
				client, err := openSource(deps)
				if err != nil {
					return err
				}
				cfg, err := client.LoadConfig(cmd.Context())
				if err != nil {
					return fmt.Errorf("не удалось загрузить пороги: %w", err)
				}
				thresholds = cfg.Thresholds
			}

			fmt.Fprintln(cmd.OutOrStdout(), slideshow.Resolve(value, thresholds))
			return nil
		},
	}
	cmd.Flags().Float64Slice("thresholds", nil, "comma separated thresholds, e.g. 10,20,30")
	return cmd
}

func newNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize REF...",
		Short: "Print the display URL for image references.",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, ref := range args {
				fmt.Fprintln(cmd.OutOrStdout(), slideshow.NormalizeImageRef(ref))
			}
		},
	}
}

func newEndpointCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "endpoint",
		Short: "Show or change the stored data source URL.",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the stored URL.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				u, _, err := openUsecase(deps)
				if err != nil {
					return err
				}
				endpoint, err := u.GetEndpoint()
				if err != nil {
					return fmt.Errorf("адрес источника не сохранен: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), endpoint)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set URL",
			Short: "Store a new URL.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				u, _, err := openUsecase(deps)
				if err != nil {
					return err
				}
				if err := u.SetEndpoint(args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Endpoint saved.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete",
			Short: "Remove the stored URL.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				u, _, err := openUsecase(deps)
				if err != nil {
					return err
				}
				if err := u.DeleteEndpoint(); err != nil {
					return fmt.Errorf("не удалось удалить адрес источника: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Endpoint removed.")
				return nil
			},
		},
	)
	return cmd
}

func newFetchCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Load the configuration and current value once and print the resolved slide.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := openSource(deps)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			cfg, err := client.LoadConfig(ctx)
			if err != nil {
				return fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
			}
			total, err := client.FetchCurrentValue(ctx)
			if err != nil {
				return fmt.Errorf("не удалось получить данные: %w", err)
			}

			slide := slideshow.Resolve(total, cfg.Thresholds)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total:  %v\n", total)
			fmt.Fprintf(out, "slide:  %d\n", slide)
			if ref, ok := cfg.ImageFor(slide); ok {
				fmt.Fprintf(out, "image:  %s\n", slideshow.NormalizeImageRef(ref))
			} else {
				fmt.Fprintln(out, "image:  -")
			}
			return nil
		},
	}
}

// openUsecase дает доступ только к операциям с настройками: сервис слайд-шоу не создается.
func openUsecase(deps Deps) (*usecases.Usecase, *config.AppConfig, error) {
	cfg, err := deps.Config()
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	repo, err := deps.Repository(cfg)
	if err != nil {
		return nil, nil, err
	}
	return usecases.NewUsecase(nil, repo, deps.Logger).(*usecases.Usecase), cfg, nil
}

func openSource(deps Deps) (*source.Client, error) {
	u, cfg, err := openUsecase(deps)
	if err != nil {
		return nil, err
	}
	endpoint, err := u.GetEndpoint()
	if err != nil {
		return nil, fmt.Errorf("адрес источника не сохранен: %w", err)
	}
	return source.NewClient(endpoint, cfg.Slides.HTTPTimeout(), deps.Logger), nil
}
