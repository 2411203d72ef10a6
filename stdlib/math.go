package stdlib

import (
	"math"
	"math/rand"

	"github.com/burningli/bxscript/value"
)

// installMath binds __native_math, the raw math surface lib/math.bx
// re-exports as std.math.*, per SPEC_FULL.md §3's math row.
//
// Grounded on std/math.go's abs/ceil/floor/round/sqrt/pow/trig table
// (teacher), widened with cbrt/asinh-family omitted as the teacher
// itself omits them, and min/max/random kept as the teacher's rand/min/max.
func installMath(env value.Env) {
	unary := func(name string, f func(float64) float64) *value.NativeFunction {
		return native(name, 1, func(args []value.Value) (value.Value, error) {
			x, err := wantNumber(args, 0, name, "a number")
			if err != nil {
				return nil, err
			}
			return value.Number(f(x)), nil
		})
	}

	fns := map[string]*value.NativeFunction{
		"abs":   unary("abs", math.Abs),
		"ceil":  unary("ceil", math.Ceil),
		"floor": unary("floor", math.Floor),
		"round": unary("round", math.Round),
		"trunc": unary("trunc", math.Trunc),
		"sqrt":  unary("sqrt", math.Sqrt),
		"cbrt":  unary("cbrt", math.Cbrt),
		"exp":   unary("exp", math.Exp),
		"log":   unary("log", math.Log),
		"sin":   unary("sin", math.Sin),
		"cos":   unary("cos", math.Cos),
		"tan":   unary("tan", math.Tan),
		"asin":  unary("asin", math.Asin),
		"acos":  unary("acos", math.Acos),
		"atan":  unary("atan", math.Atan),
		"sinh":  unary("sinh", math.Sinh),
		"cosh":  unary("cosh", math.Cosh),
		"tanh":  unary("tanh", math.Tanh),
		"pow": native("pow", 2, func(args []value.Value) (value.Value, error) {
			x, err := wantNumber(args, 0, "pow", "two numbers")
			if err != nil {
				return nil, err
			}
			y, err := wantNumber(args, 1, "pow", "two numbers")
			if err != nil {
				return nil, err
			}
			return value.Number(math.Pow(x, y)), nil
		}),
		"min": native("min", 2, func(args []value.Value) (value.Value, error) {
			x, err := wantNumber(args, 0, "min", "two numbers")
			if err != nil {
				return nil, err
			}
			y, err := wantNumber(args, 1, "min", "two numbers")
			if err != nil {
				return nil, err
			}
			return value.Number(math.Min(x, y)), nil
		}),
		"max": native("max", 2, func(args []value.Value) (value.Value, error) {
			x, err := wantNumber(args, 0, "max", "two numbers")
			if err != nil {
				return nil, err
			}
			y, err := wantNumber(args, 1, "max", "two numbers")
			if err != nil {
				return nil, err
			}
			return value.Number(math.Max(x, y)), nil
		}),
		"random": native("random", 0, func(args []value.Value) (value.Value, error) {
			return value.Number(rand.Float64()), nil
		}),
	}

	nativeNamespace(env, "__native_math", fns)
	_ = env.Declare("__native_math_PI", value.Number(math.Pi))
}
