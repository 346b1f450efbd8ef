// Package loader reads bytecode documents from disk.
//
// Three encodings share one document shape:
//
//	.json        GraphSON-style typed JSON
//	.yaml/.yml   the same structure written as YAML
//	.cue         a CUE file that evaluates to the same structure
//
// A document is either a single bytecode object or a list of named queries:
//
//	{"queries": [{"name": "names", "bytecode": {"step": [["V"], ["values", "name"]]}}]}
//
// Bytecode is {"source": [...], "step": [...]}, optionally wrapped as
// {"@type": "g:Bytecode", "@value": {...}}. Each instruction is an array whose
// first element is the operator name. Arguments are plain JSON values or typed
// values {"@type": "g:Int64", "@value": 5}.
//
// Object key order is preserved from the file, so maps render in the order
// they were written. Unknown @type names are rejected rather than guessed.
package loader
