package commands

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-countryselect/pkg/selection"
)

// NormalizeCmd implements the 'normalize' command. It prints the normalized
// value as JSON, or only its storable form with --stored.
type NormalizeCmd struct {
	FieldSelector `embed:""`

	Value  string `arg:"" optional:"" help:"Stored value: a code, a JSON array, or empty"`
	Strict bool   `help:"Fail on codes missing from the catalog"`
	Stored bool   `help:"Print only the storable form of the value"`
}

func (n *NormalizeCmd) Run(g *Global) error {
	f, err := n.Resolve(g)
	if err != nil {
		return err
	}
	cat := g.Catalog()
	value := selection.Normalize(n.Value, cat, f.Multi())

	if n.Strict || g.Config.Strict {
		if err := f.ValidateStrict(value, cat); err != nil {
			return err
		}
	}

	g.Logger.WithFields(logrus.Fields{
		"field": f.Handle,
		"kind":  f.Kind.String(),
		"raw":   selection.DecodeRaw(n.Value).Kind().String(),
	}).Debug("normalized value")

	if n.Stored {
		stored, err := f.Serialize(value)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(g.Out, stored)
		return err
	}

	enc := json.NewEncoder(g.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
