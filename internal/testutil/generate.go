// SPDX-License-Identifier: MIT

package testutil

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/albertocavalcante/clientgen/generator"
	"github.com/albertocavalcante/clientgen/model"
)

// ParseFlags turns the flags of a case into a generator configuration. It
// accepts the generate command's naming: --namespace, --client, --base,
// -t/--types, --resolve-deps, --strict, --opt key=value and -o FILE.
func ParseFlags(flags []string) (generator.Config, error) {
	fs := pflag.NewFlagSet("case", pflag.ContinueOnError)
	namespace := fs.String("namespace", "Acme.Api", "")
	client := fs.String("client", "Client", "")
	base := fs.String("base", "ClientObject", "")
	types := fs.StringSliceP("types", "t", nil, "")
	resolve := fs.Bool("resolve-deps", true, "")
	strict := fs.Bool("strict", true, "")
	opts := fs.StringToString("opt", nil, "")
	output := fs.StringP("output", "o", "", "")
	if err := fs.Parse(flags); err != nil {
		return generator.Config{}, err
	}
	return generator.Config{
		OutputFile:  *output,
		Types:       *types,
		ResolveDeps: *resolve,
		Namespace:   *namespace,
		ClientName:  *client,
		BaseType:    *base,
		Strict:      *strict,
		Source:      InputFile,
		Options:     *opts,
	}, nil
}

// Generate returns a GenerateFunc running g on the case's catalog.
func Generate(g generator.Generator) GenerateFunc {
	return func(input []byte, flags []string) (map[string][]byte, error) {
		cfg, err := ParseFlags(flags)
		if err != nil {
			return nil, err
		}
		regFn, err := model.LoadYAML(input)
		if err != nil {
			return nil, err
		}
		reg, err := model.Build(regFn)
		if err != nil {
			return nil, err
		}
		out, err := g.Generate(context.Background(), reg, cfg)
		if err != nil {
			return nil, err
		}
		return out.Files, nil
	}
}
