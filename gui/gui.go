/*
Package gui implements only the external registration contract spec.md
§6 requires of the GUI subsystem ("if the GUI subsystem registered any
form, the GUI runtime runs") — not the retained-mode widget toolkit
itself, which is out of scope. A script calls the bound `form(id)` host
function once per top-level form it wants rendered; the CLI entry point
then checks HasRegisteredForm after running the script to decide whether
to hand off to a GUI runtime.

Grounded on original_source/gui/GuiRenderer.h and
original_source/stdlib/GuiModule.h's widget object shape (`_type`, `id`,
`children`, `onclick`) for field naming only — no Nuklear-equivalent
rendering is implemented, exactly as spec.md's Non-goals direct.
*/
package gui

import (
	"sync"

	"github.com/burningli/bxscript/value"
)

// Registry tracks forms registered by a single script run. The zero
// value is usable; NewRegistry is provided for symmetry with the rest of
// the codebase's constructor style.
type Registry struct {
	mu    sync.Mutex
	forms []*value.Object
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterForm records a form object (shape: `{_type: "form", id, children,
// ...}`, per GuiModule.h). It is the Go side of the `form(id)` host
// function; stdlib is not the owner of this binding because the GUI
// surface is intentionally separate from the domain-module bridge.
func (r *Registry) RegisterForm(form *value.Object) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms = append(r.forms, form)
}

// HasRegisteredForm reports whether any form was registered during the
// run, the signal spec.md §6 uses to decide whether the GUI runtime
// should start after the script finishes.
func (r *Registry) HasRegisteredForm() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms) > 0
}

// Forms returns the registered forms in registration order, for a future
// GUI runtime to render.
func (r *Registry) Forms() []*value.Object {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*value.Object, len(r.forms))
	copy(out, r.forms)
	return out
}

// NativeForm returns the `form(id)` NativeFunction bound into the global
// environment: a thin constructor that builds the widget object GuiModule.h
// describes and registers it with r.
func (r *Registry) NativeForm() *value.NativeFunction {
	return &value.NativeFunction{Name: "form", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		form := value.NewObject()
		form.SetOwn("_type", value.String("form"))
		if len(args) > 0 {
			form.SetOwn("id", args[0])
		}
		form.SetOwn("children", value.NewArray())
		r.RegisterForm(form)
		return form, nil
	}}
}
