// Package harness runs translation scenarios: YAML files pairing bytecode
// with the script it must translate to.
//
// # Scenario Format
//
//	name: modern_queries
//	description: "Queries over the modern toy graph"
//	cases:
//	  - name: names
//	    bytecode:
//	      step: [[V], [hasLabel, person], [values, name]]
//	    expect: 'g.V().hasLabel("person").values("name")'
//	  - name: anonymous
//	    root: __
//	    bytecode:
//	      step: [[out, knows]]
//	    expect: '__.out("knows")'
//
// Bytecode uses the loader's document encoding, so typed GraphSON values
// ({"@type": "g:Int64", "@value": 1}) work inside scenarios. A case expects
// either a script (expect) or a substring of the translation error (error),
// never both.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/modern.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
//
// RunWithGolden additionally snapshots every rendered script under
// testdata/golden/<name>.golden.
package harness
