package jsconsole

import (
	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"
)

// ModuleName is the identifier the bridge registers under in a
// goja_nodejs require registry.
const ModuleName = "console"

// Register exposes the bridge as a native module so require("console")
// resolves to the same dispatch as the installed global. This is how
// eventloop/require based embeddings pick up the bridge without
// touching global scope.
func (b *Bridge) Register(registry *require.Registry) {
	registry.RegisterNativeModule(ModuleName, b.requireModule)
}

func (b *Bridge) requireModule(vm *goja.Runtime, module *goja.Object) {
	exports := module.Get("exports").(*goja.Object)
	for _, name := range b.methods {
		exports.Set(name, b.boundMethod(vm, name))
	}
}
