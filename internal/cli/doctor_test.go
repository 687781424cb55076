package cli

import (
	"testing"

	"github.com/rileyhilliard/jobdash/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestUniqueHosts(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Targets = []config.TargetConfig{
		{Name: "a", Host: "zeus", Path: "~/a.log", Kind: "pbqff"},
		{Name: "b", Host: "eland", Path: "~/b.log", Kind: "semp"},
		{Name: "c", Host: "zeus", Path: "~/c.log", Kind: "pbqff"},
	}

	hosts := uniqueHosts(cfg)

	assert.Equal(t, []string{"eland", "zeus"}, hosts, "hosts should be deduplicated and sorted")
}

func TestUniqueHostsEmpty(t *testing.T) {
	assert.Empty(t, uniqueHosts(config.DefaultConfig()))
}
