package stdlib

import (
	"io"
	"net/http"
	"strings"

	"github.com/burningli/bxscript/eventloop"
	"github.com/burningli/bxscript/value"
)

// installHTTP binds __native_http.get/post/put/delete/request, every one
// asynchronous: the round trip runs on its own goroutine and the result
// is delivered to the script callback through loop, never by blocking the
// calling (interpreter) goroutine — the async contract SPEC_FULL.md §3
// requires for std.http.
//
// Grounded on std/http.go's net/http-backed get/post (teacher), widened
// to put/delete/request and made asynchronous via the bridge pattern
// spec.md §4.8/§5 describes (add_active/enqueue/remove_active around a
// worker goroutine).
func installHTTP(env value.Env, loop *eventloop.Loop) {
	do := func(fnName, method string) *value.NativeFunction {
		return native(fnName, 3, func(args []value.Value) (value.Value, error) {
			url, err := wantString(args, 0, fnName, "(url, body, callback)")
			if err != nil {
				return nil, err
			}
			var body value.String
			if len(args) > 1 {
				body, _ = args[1].(value.String)
			}
			var cb value.Value
			if len(args) > 2 {
				cb = args[2]
			}
			if cb == nil {
				return nil, argErr(fnName, "a callback as the last argument")
			}

			loop.AddActiveTask()
			go func() {
				defer loop.RemoveActiveTask()
				result := performRequest(method, url, string(body), nil)
				loop.Enqueue(cb, []value.Value{result})
			}()
			return value.Null{}, nil
		})
	}

	request := native("request", 3, func(args []value.Value) (value.Value, error) {
		method, err := wantString(args, 0, "request", "(method, url, opts, callback)")
		if err != nil {
			return nil, err
		}
		url, err := wantString(args, 1, "request", "(method, url, opts, callback)")
		if err != nil {
			return nil, err
		}
		var opts *value.Object
		if len(args) > 2 {
			opts, _ = args[2].(*value.Object)
		}
		var cb value.Value
		if len(args) > 3 {
			cb = args[3]
		}
		if cb == nil {
			return nil, argErr("request", "a callback as the last argument")
		}

		body := ""
		headers := map[string]string{}
		if opts != nil {
			if b, ok := opts.GetOwn("body"); ok {
				if s, ok := b.(value.String); ok {
					body = string(s)
				}
			}
			if h, ok := opts.GetOwn("headers"); ok {
				if ho, ok := h.(*value.Object); ok {
					for _, k := range ho.OwnKeys() {
						v, _ := ho.GetOwn(k)
						if s, ok := v.(value.String); ok {
							headers[k] = string(s)
						}
					}
				}
			}
		}

		loop.AddActiveTask()
		go func() {
			defer loop.RemoveActiveTask()
			result := performRequest(method, url, body, headers)
			loop.Enqueue(cb, []value.Value{result})
		}()
		return value.Null{}, nil
	})

	nativeNamespace(env, "__native_http", map[string]*value.NativeFunction{
		"get":     do("get", http.MethodGet),
		"post":    do("post", http.MethodPost),
		"put":     do("put", http.MethodPut),
		"delete":  do("delete", http.MethodDelete),
		"request": request,
	})
}

// performRequest always returns a {status, body, error} Object rather
// than returning a Go error, since it runs on a worker goroutine and its
// only channel back to script is the result delivered through the event
// loop (spec.md §4.8: a thrown Go error here has no catch frame to reach).
func performRequest(method, url, body string, headers map[string]string) *value.Object {
	result := value.NewObject()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		result.SetOwn("status", value.Number(0))
		result.SetOwn("body", value.String(""))
		result.SetOwn("error", value.String(err.Error()))
		return result
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		result.SetOwn("status", value.Number(0))
		result.SetOwn("body", value.String(""))
		result.SetOwn("error", value.String(err.Error()))
		return result
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		result.SetOwn("status", value.Number(float64(resp.StatusCode)))
		result.SetOwn("body", value.String(""))
		result.SetOwn("error", value.String(err.Error()))
		return result
	}

	result.SetOwn("status", value.Number(float64(resp.StatusCode)))
	result.SetOwn("body", value.String(data))
	result.SetOwn("error", value.Null{})
	return result
}
