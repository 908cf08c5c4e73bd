package main

import (
	"fmt"
	"strings"

	"github.com/ukaji3/offergen-go/pkg/offergen"
	"github.com/ukaji3/offergen-go/pkg/offergen/config"
)

func parseMode(s string) (offergen.Mode, error) {
	switch m := offergen.Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", offergen.ModeProcedure:
		return offergen.ModeProcedure, nil
	case offergen.ModeOffers:
		return m, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be procedura or offerte)", s)
	}
}

// parseFieldFlags turns name=value arguments into a map. Later arguments win.
func parseFieldFlags(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid field %q (want name=value)", arg)
		}
		values[name] = value
	}
	return values, nil
}

// newSession seeds a session with the configured fields and the fields file,
// then applies --field flags on top.
func newSession(configured map[string]string, path string, args []string) (*offergen.Session, error) {
	sess := offergen.NewSession(configured)
	if path != "" {
		fromFile, err := config.LoadFields(path)
		if err != nil {
			return nil, err
		}
		for k, v := range fromFile {
			sess.Set(k, v)
		}
	}
	flags, err := parseFieldFlags(args)
	if err != nil {
		return nil, err
	}
	for k, v := range flags {
		sess.Set(k, v)
	}
	return sess, nil
}
