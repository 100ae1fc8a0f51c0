package jsconsole

import (
	"testing"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"

	"github.com/stretchr/testify/assert"
	trequire "github.com/stretchr/testify/require"
)

func TestRequireModule(t *testing.T) {
	bridge, stdout, stderr := newTestBridge(FlagToStderr)

	registry := require.NewRegistry()
	bridge.Register(registry)

	vm := goja.New()
	registry.Enable(vm)

	_, err := vm.RunString(`
		var c = require("console");
		c.log("via require");
	`)
	trequire.NoError(t, err)

	assert.Equal(t, "via require\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestRequireModuleMatchesInstalledGlobal(t *testing.T) {
	bridge, stdout, _ := newTestBridge(FlagToStdout)

	registry := require.NewRegistry()
	bridge.Register(registry)

	vm := goja.New()
	registry.Enable(vm)
	trequire.NoError(t, bridge.Install(vm))

	_, err := vm.RunString(`
		var c = require("console");
		c.info("one");
		console.info("two");
	`)
	trequire.NoError(t, err)

	assert.Equal(t, "one\ntwo\n", stdout.String())
}
