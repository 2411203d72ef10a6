package stdlib

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/burningli/bxscript/value"
)

// installOS binds __native_os.getEnv/platform/exec.
//
// Grounded on std/os.go (teacher, os.Getenv/runtime.GOOS) widened with
// original_source/stdlib/OsModule.h's exec(cmd), run synchronously via
// os/exec and reporting {stdout, stderr, exitCode} the way the teacher's
// own std/os.go surfaces process results.
func installOS(env value.Env) {
	fns := map[string]*value.NativeFunction{
		"getEnv": native("getEnv", 1, func(args []value.Value) (value.Value, error) {
			name, err := wantString(args, 0, "getEnv", "a variable name")
			if err != nil {
				return nil, err
			}
			v, ok := os.LookupEnv(name)
			if !ok {
				return value.Null{}, nil
			}
			return value.String(v), nil
		}),
		"platform": native("platform", 0, func(args []value.Value) (value.Value, error) {
			return value.String(runtime.GOOS), nil
		}),
		"exec": native("exec", 1, func(args []value.Value) (value.Value, error) {
			cmdLine, err := wantString(args, 0, "exec", "a command string")
			if err != nil {
				return nil, err
			}
			shell, flag := "/bin/sh", "-c"
			if runtime.GOOS == "windows" {
				shell, flag = "cmd", "/C"
			}
			cmd := exec.Command(shell, flag, cmdLine)
			var stdout, stderr strings.Builder
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
			runErr := cmd.Run()

			result := value.NewObject()
			result.SetOwn("stdout", value.String(stdout.String()))
			result.SetOwn("stderr", value.String(stderr.String()))
			exitCode := 0
			if exitErr, ok := runErr.(*exec.ExitError); ok {
				exitCode = exitErr.ExitCode()
			} else if runErr != nil {
				exitCode = -1
			}
			result.SetOwn("exitCode", value.Number(float64(exitCode)))
			return result, nil
		}),
	}
	nativeNamespace(env, "__native_os", fns)
}
