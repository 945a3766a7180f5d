package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Wshid/effective-java/internal/config"
	"github.com/Wshid/effective-java/pkg/api"
	"github.com/Wshid/effective-java/pkg/builder"
	"github.com/Wshid/effective-java/pkg/log"
	"github.com/Wshid/effective-java/pkg/util"
)

type pizzaCmd struct {
	cfg      *config.Config
	logger   *slog.Logger
	envFiles []string
	toppings []string
}

var ErrTooManyToppings = errors.New("too many toppings")

func newRootCmd() *cobra.Command {
	p := &pizzaCmd{}

	root := &cobra.Command{
		Use:   Name,
		Short: "Build a pizza and print it as JSON",
		Long: `Build a New York pizza or a calzone from the given toppings ` +
			`and print the finished pizza as JSON on stdout.`,
		SilenceUsage:      true,
		PersistentPreRunE: p.setup,
	}

	root.PersistentFlags().StringSliceVar(&p.envFiles, "env-file", nil,
		"Load environment variables from the given files instead of .env")
	root.PersistentFlags().StringArrayVarP(&p.toppings, "topping", "t", nil,
		"Add a topping (repeatable): ham, mushroom, onion, pepper, sausage")

	root.AddCommand(p.nyCmd(), p.calzoneCmd())
	return root
}

func (p *pizzaCmd) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(p.envFiles...); err != nil {
		return err
	}

	cfg := config.NewDefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	p.cfg = cfg
	p.logger = log.NewWithWriter(
		cmd.ErrOrStderr(), Name, cfg.Env, Version, level,
	)
	return nil
}

func (p *pizzaCmd) nyCmd() *cobra.Command {
	var size string

	cmd := &cobra.Command{
		Use:   "ny",
		Short: "Build a New York pizza",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			toppings, err := p.parseToppings()
			if err != nil {
				return err
			}

			sz := p.cfg.DefaultSize
			if size != "" {
				if sz, err = api.ParseSize(size); err != nil {
					return err
				}
			}

			pizza, err := builder.NewNYPizza(sz).
				AddToppings(toppings...).
				Build()
			if err != nil {
				return err
			}
			return p.print(cmd, pizza)
		},
	}

	cmd.Flags().StringVarP(&size, "size", "s", "",
		"Pizza size: small, medium or large (default from config)")
	return cmd
}

func (p *pizzaCmd) calzoneCmd() *cobra.Command {
	var sauceInside bool

	cmd := &cobra.Command{
		Use:   "calzone",
		Short: "Build a calzone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			toppings, err := p.parseToppings()
			if err != nil {
				return err
			}

			b := builder.NewCalzone().AddToppings(toppings...)
			if sauceInside {
				b = b.SauceInside()
			}

			pizza, err := b.Build()
			if err != nil {
				return err
			}
			return p.print(cmd, pizza)
		},
	}

	cmd.Flags().BoolVar(&sauceInside, "sauce-inside", false,
		"Put the sauce inside the calzone")
	return cmd
}

func (p *pizzaCmd) parseToppings() ([]api.Topping, error) {
	res := make([]api.Topping, 0, len(p.toppings))
	distinct := util.Set[api.Topping]{}
	for _, name := range p.toppings {
		t, err := api.ParseTopping(name)
		if err != nil {
			return nil, err
		}
		distinct.Add(t)
		res = append(res, t)
	}

	if distinct.Len() > p.cfg.MaxToppings {
		return nil, fmt.Errorf("%w: %d requested, at most %d allowed",
			ErrTooManyToppings, distinct.Len(), p.cfg.MaxToppings)
	}
	return res, nil
}

func (p *pizzaCmd) print(cmd *cobra.Command, pizza api.Product) error {
	p.logger.Info("Pizza built",
		log.Kind(pizza.Kind()),
		log.Toppings(pizza.Toppings()))

	return json.NewEncoder(cmd.OutOrStdout()).Encode(pizza)
}
