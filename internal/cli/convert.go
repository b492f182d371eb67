package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingrea/tenth-to-inch/internal/locale"
	"github.com/kingrea/tenth-to-inch/internal/measure"
)

const convertExample = `  # decimal feet to everything
  tenth convert feet 5.25

  # architectural notation; quote it for the shell
  tenth convert arch "5'-3 8/16\""

  # decimal inches, Spanish labels
  tenth convert inches 63 --lang es`

func (c Commands) newConvertCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <feet|arch|inches> <value>",
		Short:   "Convert a single measurement and print all three representations",
		Example: convertExample,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(*flags)
			if err != nil {
				return err
			}
			source, err := measure.ParseSource(strings.ToLower(args[0]))
			if err != nil {
				return err
			}
			value := strings.Join(args[1:], " ")
			t := cfg.Locale
			lb := openLogbook(cmd, cfg)

			req, err := buildRequest(source, value)
			if err != nil {
				lb.Error("convert: rejected %s input %q: %v", source, value, err)
				return fmt.Errorf("%s: %w", t.Text(locale.InvalidNumber), err)
			}
			res, err := measure.Converter{Mode: cfg.ParseMode}.Convert(req)
			if err != nil {
				lb.Error("convert: conversion from %s failed: %v", source, err)
				if errors.Is(err, measure.ErrInvalidFormat) {
					return fmt.Errorf("%s: %w", t.Text(locale.InvalidArch), err)
				}
				return fmt.Errorf("%s: %w", t.Text(locale.InvalidNumber), err)
			}
			lb.Info("convert: from %s: %s | %s | %s", res.Source, res.FeetText(), res.Architectural, res.InchesText())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-26s %s\n", t.Text(locale.DecimalFeet), res.FeetText())
			fmt.Fprintf(out, "%-26s %s\n", t.Text(locale.ArchNotation), res.Architectural)
			fmt.Fprintf(out, "%-26s %s\n", t.Text(locale.DecimalInches), res.InchesText())
			return nil
		},
	}
}

func buildRequest(source measure.Source, value string) (measure.Request, error) {
	if source == measure.SourceArchitectural {
		return measure.NewRequest(source, 0, value, 0), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return measure.Request{}, err
	}
	return measure.NewRequest(source, v, "", v), nil
}
