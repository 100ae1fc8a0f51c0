package jsconsole

import "github.com/dop251/goja"

// unserializable is the fixed placeholder used when a value's display
// conversion throws. Degrading beats letting a toString or toJSON throw
// propagate out of a log call.
const unserializable = "[unserializable]"

func (b *Bridge) displayAll(vm *goja.Runtime, args []goja.Value) []string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = display(vm, arg)
	}
	return parts
}

// display converts a script value to its log form: primitives and
// functions through their standard string conversion, plain objects
// through the runtime's own JSON.stringify.
func display(vm *goja.Runtime, v goja.Value) (out string) {
	defer func() {
		if recover() != nil {
			out = unserializable
		}
	}()

	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	if goja.IsNull(v) {
		return "null"
	}

	obj, isObject := v.(*goja.Object)
	if !isObject {
		return v.String()
	}
	if _, isFunc := goja.AssertFunction(v); isFunc {
		return v.String()
	}

	if s, ok := jsonDisplay(vm, obj); ok {
		return s
	}
	return v.String()
}

func jsonDisplay(vm *goja.Runtime, obj *goja.Object) (string, bool) {
	jsonValue := vm.Get("JSON")
	if jsonValue == nil || goja.IsUndefined(jsonValue) {
		return "", false
	}

	stringify, ok := goja.AssertFunction(jsonValue.ToObject(vm).Get("stringify"))
	if !ok {
		return "", false
	}

	res, err := stringify(jsonValue, obj)
	if err != nil {
		// Cyclic structures and throwing toJSON hooks end up here.
		return unserializable, true
	}
	if res == nil || goja.IsUndefined(res) {
		return "", false
	}
	return res.String(), true
}
