package repl

import (
	"bytes"
	"testing"

	"github.com/burningli/bxscript/eval"
	"github.com/burningli/bxscript/eventloop"
	"github.com/stretchr/testify/assert"
)

func newTestRepl() *Repl {
	return NewRepl("BANNER", "v0.0.0", "tester", "----", "MIT", "bx >>> ")
}

func TestPrintBannerInfoWritesWelcomeText(t *testing.T) {
	r := newTestRepl()
	var buf bytes.Buffer

	r.PrintBannerInfo(&buf)

	out := buf.String()
	assert.Contains(t, out, "BANNER")
	assert.Contains(t, out, "v0.0.0")
	assert.Contains(t, out, "tester")
	assert.Contains(t, out, "Welcome to BxScript!")
	assert.Contains(t, out, "Type 'exit' or 'quit' to quit")
}

func TestExecuteWithRecoveryPrintsResult(t *testing.T) {
	r := newTestRepl()
	it := eval.New()
	loop := eventloop.New()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "1 + 2;", it, loop)

	assert.Contains(t, buf.String(), "3")
}

func TestExecuteWithRecoveryPersistsBindingsAcrossLines(t *testing.T) {
	r := newTestRepl()
	it := eval.New()
	loop := eventloop.New()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "let x = 40;", it, loop)
	buf.Reset()
	r.executeWithRecovery(&buf, "x + 2;", it, loop)

	assert.Contains(t, buf.String(), "42")
}

func TestExecuteWithRecoveryReportsParseErrors(t *testing.T) {
	r := newTestRepl()
	it := eval.New()
	loop := eventloop.New()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "let = ", it, loop)

	assert.Contains(t, buf.String(), "PARSE ERROR")
}

func TestExecuteWithRecoveryReportsRuntimeErrors(t *testing.T) {
	r := newTestRepl()
	it := eval.New()
	loop := eventloop.New()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "undefinedName;", it, loop)

	assert.NotEmpty(t, buf.String())
}
