package shell

// ResolveEnvironment is exported for white-box tests.
var ResolveEnvironment = resolveEnvironment
