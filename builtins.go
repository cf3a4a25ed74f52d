package charm

// registerBuiltins populates the fixed built-in table once, at construction.
// Grouped exactly as PredefinedFunctions.cpp groups its addBuiltinFunction
// calls, by comment banner: I/O, debugging, comparisons, stack juggling,
// collections, strings, control flow, booleans, arithmetic, stack
// management, references.
func (rt *Runtime) registerBuiltins() {
	rt.registerIOBuiltins()
	rt.registerCompareBuiltins()
	rt.registerStackBuiltins()
	rt.registerCollectionBuiltins()
	rt.registerStringBuiltins()
	rt.registerControlBuiltins()
	rt.registerBoolBuiltins()
	rt.registerArithBuiltins()
	rt.registerStackMgmtBuiltins()
	rt.registerRefBuiltins()
}
