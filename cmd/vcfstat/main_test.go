package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitViper_EnvOverridesNestedKeys(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("VCFSTAT_SERVER_ADDR", ":9000")
	t.Setenv("VCFSTAT_SERVER_TMPDIR", "/tmp/uploads")

	initViper()

	// Env overrides win over any config file viper may have found
	assert.Equal(t, ":9000", viper.GetString("server.addr"))
	assert.Equal(t, "/tmp/uploads", viper.GetString("server.tmpdir"))
}
