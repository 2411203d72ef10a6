package stdlib

import (
	"github.com/burningli/bxscript/eventloop"
	"github.com/burningli/bxscript/value"
)

// Install binds every domain module's native functions into env as
// `__native_<module>` namespaces (plus a couple of bare constants like
// `__native_math_PI`). The accompanying lib/<module>.bx scripts, loaded
// through modloader on `import std.<module> as x`, are the only things
// that reference these identifiers — script code reaches them exclusively
// through `std.*` imports, never directly.
func Install(env value.Env, loop *eventloop.Loop) {
	installMath(env)
	installJSON(env)
	installHTTP(env, loop)
	installFS(env)
	installDate(env)
	installRegex(env)
	installOS(env)
	installCrypto(env)
	installThread(env)
}
