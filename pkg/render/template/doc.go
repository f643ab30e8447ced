// Package template defines the engine-agnostic template seam the output
// generators render through, plus adapters for concrete engines. The page
// chrome of a generated contract (doctype, head, stylesheet) lives in engine
// templates; the contract text itself is substituted upstream by
// pkg/placeholder and arrives here as plain data.
package template
