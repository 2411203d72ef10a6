package ast_test

import (
	"testing"

	"github.com/burningli/bxscript/ast"
	"github.com/burningli/bxscript/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain lets go-snaps prune obsolete snapshots after the package's tests
// finish, matching the usage convention of snaps.MatchSnapshot below.
func TestMain(m *testing.M) {
	snaps.TestMain(m)
}

func dumpSource(t *testing.T, source string) string {
	t.Helper()
	p, err := parser.New(source)
	if err != nil {
		t.Fatalf("parser.New: %v", err)
	}
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	return ast.Dump(prog)
}

func TestDumpSnapshotFunctionWithControlFlow(t *testing.T) {
	source := `
import std.math as math;

function classify(n) {
	if (n < 0) {
		return "negative";
	} else if (n == 0) {
		return "zero";
	} else {
		return "positive";
	}
}

let results = [];
for (let i = -1; i <= 1; i = i + 1) {
	results.push(classify(i));
}
`
	snaps.MatchSnapshot(t, dumpSource(t, source))
}

func TestDumpSnapshotTryCatchFinally(t *testing.T) {
	source := `
try {
	throw "boom";
} catch (err) {
	print(err);
} finally {
	print("done");
}
`
	snaps.MatchSnapshot(t, dumpSource(t, source))
}
