package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cotizador-api/pkg/config"
)

func TestCheckDriver(t *testing.T) {
	assert.NoError(t, checkDriver(config.StorePostgres))
	assert.NoError(t, checkDriver(config.StoreRedis))

	err := checkDriver(config.StoreMemory)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "no persiste")
	}
	assert.Error(t, checkDriver(""))
	assert.Error(t, checkDriver("sqlite"))
}
