package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/goliatone/go-countryselect/pkg/prompt"
	"github.com/goliatone/go-countryselect/pkg/selection"
)

// PickCmd implements the 'pick' command: it prompts for countries and prints
// the storable value.
type PickCmd struct {
	FieldSelector `embed:""`

	Value    string `arg:"" optional:"" help:"Current stored value"`
	PageSize int    `help:"Number of options shown per page" default:"15"`

	Driver prompt.Driver `kong:"-"`
}

func (p *PickCmd) Run(g *Global) error {
	f, err := p.Resolve(g)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := p.Driver
	if driver == nil {
		driver = prompt.NewSurveyDriver()
	}
	picker := prompt.NewPicker(
		prompt.WithDriver(driver),
		prompt.WithPageSize(p.PageSize),
		prompt.WithLogger(g.Logger),
	)

	cat := g.Catalog()
	value, err := picker.Pick(ctx, f, cat, selection.Normalize(p.Value, cat, f.Multi()))
	if err != nil {
		return err
	}
	stored, err := f.Serialize(value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.Out, stored)
	return err
}
