package jsconsole

import (
	"strings"

	"github.com/dop251/goja"
	"github.com/goliatone/go-errors"
)

// GlobalName is the identifier Install binds the console object under.
const GlobalName = "console"

// Install binds the console object into the runtime's global scope. The
// bound methods capture the bridge's flag word and sinks, so every
// subsequent script-invoked call uses this configuration. Installing
// again (from this or another bridge) replaces the binding wholesale;
// nothing stacks. Installation either completes or leaves no partial
// state behind.
func (b *Bridge) Install(vm *goja.Runtime) error {
	if vm == nil {
		return errors.New("cannot install console into a nil runtime", errors.CategoryInternal).
			WithTextCode("CONSOLE_NIL_RUNTIME").
			WithMetadata(map[string]any{
				"operation": "install",
			})
	}

	obj := vm.NewObject()
	for _, name := range b.methods {
		if err := obj.Set(name, b.boundMethod(vm, name)); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to bind console method").
				WithTextCode("CONSOLE_INSTALL_ERROR").
				WithMetadata(map[string]any{
					"operation": "bind_method",
					"method":    name,
				})
		}
	}

	var global any = obj
	if b.flags.Has(FlagProxyWrapper) {
		global = b.wrapProxy(vm, obj)
	}

	if err := vm.Set(GlobalName, global); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to install console global").
			WithTextCode("CONSOLE_INSTALL_ERROR").
			WithMetadata(map[string]any{
				"operation": "set_global",
				"global":    GlobalName,
			})
	}

	return nil
}

// wrapProxy returns a proxy whose get trap supplies a shared no-op
// callable for any property the console object does not define, so
// console.anything() stays a silent no-op.
func (b *Bridge) wrapProxy(vm *goja.Runtime, target *goja.Object) goja.Proxy {
	noop := vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return goja.Undefined()
	})

	return vm.NewProxy(target, &goja.ProxyTrapConfig{
		Get: func(target *goja.Object, property string, receiver goja.Value) goja.Value {
			if v := target.Get(property); v != nil && !goja.IsUndefined(v) {
				return v
			}
			return noop
		},
	})
}

func (b *Bridge) boundMethod(vm *goja.Runtime, name string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		// Logging must never raise into the calling script.
		defer b.panicHandler("console."+name, map[string]any{
			"method": name,
		})
		b.dispatch(vm, name, call.Arguments)
		return goja.Undefined()
	}
}

func (b *Bridge) dispatch(vm *goja.Runtime, method string, args []goja.Value) {
	if method == "assert" {
		if len(args) > 0 && args[0].ToBoolean() {
			return
		}
		line := "Assertion failed"
		if len(args) > 1 {
			line += ": " + strings.Join(b.displayAll(vm, args[1:]), " ")
		}
		b.emitLine(vm, method, line)
		return
	}

	b.emitLine(vm, method, strings.Join(b.displayAll(vm, args), " "))
}

func (b *Bridge) emitLine(vm *goja.Runtime, method, line string) {
	b.writeLine(b.flags, line)

	if b.callback != nil {
		b.callback(method, line)
	}
	if b.logger != nil {
		logByMethod(b.logger, method, line)
	}
	b.invokeScriptCallback(vm, method, line)
}

func (b *Bridge) invokeScriptCallback(vm *goja.Runtime, method, line string) {
	if b.scriptCallback == "" || vm == nil {
		return
	}

	value := vm.GlobalObject().Get(b.scriptCallback)
	if value == nil {
		return
	}

	fn, ok := goja.AssertFunction(value)
	if !ok {
		return
	}

	// A misbehaving callback must not surface into the console caller.
	fn(goja.Undefined(), vm.ToValue(method), vm.ToValue(line))
}
