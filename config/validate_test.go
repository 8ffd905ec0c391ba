package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenAddrRule(t *testing.T) {
	validate := NewValidator()

	tests := map[string]bool{
		"0.0.0.0:3000":        true,
		":3000":               true,
		"[::]:3000":           true,
		"[::1]:3000":          true,
		"[fe80::1%eth0]:3000": true,
		"localhost:3000":      true,
		"::1:3000":            false,
		"[::]":                false,
		"[::]:0":              false,
		"[::]:65536":          false,
		"localhost:http":      false,
		"bad_host!:3000":      false,
		"":                    false,
	}
	for addr, valid := range tests {
		err := validate.Var(addr, "listen_addr")
		assert.Equal(t, valid, err == nil, "%q: %v", addr, err)
	}
}
