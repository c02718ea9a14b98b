// Package parser puts raw launch arguments into SearchConfig/NodeInit structures and validates them
package parser

import (
	"errors"
	"flag"

	"github.com/UnendingLoop/MiniGrep/internal/model"
)

// EnvLookup - reports value of an environment variable and whether it is set at all (os.LookupEnv)
type EnvLookup func(key string) (string, bool)

// BuildConfig consumes raw arguments positionally: [0] invocation name, [1] query, [2] file path.
// Extra arguments are ignored. Nil lookup is treated as an empty environment.
func BuildConfig(rawArgs []string, lookup EnvLookup) (*model.SearchConfig, error) {
	switch {
	case len(rawArgs) < 2:
		return nil, &model.ArgumentError{Err: model.ErrMissingQuery}
	case len(rawArgs) < 3:
		return nil, &model.ArgumentError{Err: model.ErrMissingFilePath}
	}

	// проверяем только наличие переменной, значение не важно
	ignoreCase := false
	if lookup != nil {
		_, ignoreCase = lookup(model.IgnoreCaseEnv)
	}

	return &model.SearchConfig{
		Query:      rawArgs[1],
		FilePath:   rawArgs[2],
		IgnoreCase: ignoreCase,
	}, nil
}

// InitNodeParam parses search-node flags (without the invocation name)
func InitNodeParam(args []string) (*model.NodeInit, error) {
	flagParser := flag.NewFlagSet("minigrep-node", flag.ContinueOnError)
	addr := flagParser.String("address", "", "specify search-node address, e.g. ':8080'")

	if err := flagParser.Parse(args); err != nil {
		return nil, err
	}

	if *addr == "" {
		return nil, errors.New("empty search-node address")
	}

	return &model.NodeInit{Address: *addr}, nil
}
