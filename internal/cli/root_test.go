package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestPersistentFlagsRegistered(t *testing.T) {
	want := map[string]struct{}{
		"site":      {},
		"site-path": {},
		"config":    {},
		"json":      {},
	}

	got := make(map[string]struct{})
	rootCmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		got[flag.Name] = struct{}{}
	})

	for name := range want {
		if _, ok := got[name]; !ok {
			t.Errorf("persistent flag %q is not registered", name)
		}
	}
}

func TestEveryCommandRegistered(t *testing.T) {
	want := []string{
		"init", "build", "list", "read", "render", "search",
		"related", "tags", "categories", "toc", "watch", "version",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q is not registered on root", name)
		}
	}
}
