package stdlib

import (
	"os"

	"github.com/burningli/bxscript/value"
)

// installFS binds __native_fs.readFile/writeFile/exists/listDir,
// synchronous per SPEC_FULL.md §3 (file I/O is treated as cheap/local,
// unlike std.http).
//
// Grounded on std/file_io.go and file/file.go's os.ReadFile/os.WriteFile
// usage (teacher).
func installFS(env value.Env) {
	fns := map[string]*value.NativeFunction{
		"readFile": native("readFile", 1, func(args []value.Value) (value.Value, error) {
			path, err := wantString(args, 0, "readFile", "a path string")
			if err != nil {
				return nil, err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, &value.RuntimeError{Message: "readFile: " + err.Error()}
			}
			return value.String(data), nil
		}),
		"writeFile": native("writeFile", 2, func(args []value.Value) (value.Value, error) {
			path, err := wantString(args, 0, "writeFile", "(path, data)")
			if err != nil {
				return nil, err
			}
			data, err := wantString(args, 1, "writeFile", "(path, data)")
			if err != nil {
				return nil, err
			}
			if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
				return nil, &value.RuntimeError{Message: "writeFile: " + err.Error()}
			}
			return value.Null{}, nil
		}),
		"exists": native("exists", 1, func(args []value.Value) (value.Value, error) {
			path, err := wantString(args, 0, "exists", "a path string")
			if err != nil {
				return nil, err
			}
			_, statErr := os.Stat(path)
			return value.Bool(statErr == nil), nil
		}),
		"listDir": native("listDir", 1, func(args []value.Value) (value.Value, error) {
			path, err := wantString(args, 0, "listDir", "a path string")
			if err != nil {
				return nil, err
			}
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, &value.RuntimeError{Message: "listDir: " + err.Error()}
			}
			names := make([]value.Value, len(entries))
			for i, e := range entries {
				names[i] = value.String(e.Name())
			}
			return value.NewArray(names...), nil
		}),
	}
	nativeNamespace(env, "__native_fs", fns)
}
