package translate

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bytescript/internal/bytecode"
)

const subgraphStrategy = "org.apache.tinkerpop.gremlin.process.traversal.strategy.decoration.SubgraphStrategy"

// modernQueries covers the kinds most often seen in real traversals over the
// "modern" toy graph.
func modernQueries() []struct {
	name string
	bc   *bytecode.Bytecode
} {
	return []struct {
		name string
		bc   *bytecode.Bytecode
	}{
		{"names", bytecode.G().Step("V").Step("hasLabel", "person").Step("values", "name").Bytecode()},
		{"heavy_knows", bytecode.G().
			Step("V", bytecode.Long(1)).
			Step("outE", "knows").
			Step("has", "weight", bytecode.Gt(bytecode.Double(0.5))).
			Step("inV").
			Bytecode()},
		{"sack_product", bytecode.G().
			Source("withSack", bytecode.Double(1.0), bytecode.Lambda{Script: "a,b -> a*b", Arguments: 2}).
			Step("V").
			Step("sack", bytecode.Operator("mult")).
			Step("by", "weight").
			Bytecode()},
		{"group_count", bytecode.G().
			Step("V").
			Step("group").
			Step("by", bytecode.T("label")).
			Step("by", bytecode.Anon().Step("count")).
			Bytecode()},
		{"quoted_property", bytecode.G().
			Step("addV", "person").
			Step("property", bytecode.Cardinality("list"), "nick", `the "kid" $1`).
			Bytecode()},
		{"subgraph", bytecode.G().
			Source("withStrategies", bytecode.Strategy{
				Class: subgraphStrategy,
				Configuration: bytecode.Map{
					{Key: bytecode.String("edges"), Value: bytecode.Anon().Step("has", "weight", bytecode.Gte(bytecode.Double(0.4)))},
				},
			}).
			Step("E").
			Bytecode()},
		{"inject_collections", bytecode.G().
			Step("inject",
				bytecode.Set{bytecode.String("a"), bytecode.String("b")},
				bytecode.Map{{Key: bytecode.String("k"), Value: bytecode.Long(1)}}).
			Bytecode()},
		{"choose_option", bytecode.G().
			Step("V").
			Step("choose", bytecode.Anon().Step("values", "age")).
			Step("option", bytecode.Pick("none"), bytecode.Anon().Step("constant", "n/a")).
			Bytecode()},
	}
}

func TestAssemble_Golden(t *testing.T) {
	var b strings.Builder
	for _, q := range modernQueries() {
		script, err := Assemble(q.bc, RootSource)
		require.NoError(t, err, q.name)
		b.WriteString(q.name)
		b.WriteString(": ")
		b.WriteString(script)
		b.WriteByte('\n')
	}

	// Regenerate with: go test ./internal/translate -run TestAssemble_Golden -update
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "modern_queries", []byte(b.String()))
}
