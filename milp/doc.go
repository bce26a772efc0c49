// Package milp defines the contract the branch-and-cut controller expects
// from a mixed-integer engine, and provides two engines behind it.
//
// The contract (see Engine) is intentionally narrow: binary columns with
// objective costs, unit-coefficient equality rows, an integral-candidate
// callback that may submit lazy cutset cuts, and phase-checked value reads.
// Engine internals — node selection, relaxation, presolve — are none of the
// caller's business; anything that can express this surface (Gurobi-style
// lazy-constraint callbacks, a SAT/PB optimizer, the in-tree branch-and-
// bound) can be substituted.
//
// Phase discipline: the mid-search and post-solve readings of a column are
// distinguished by an explicit Phase argument on every query, never by
// probing the engine and catching an error. A query outside its valid phase
// returns ErrWrongPhase.
//
// Both in-tree engines run single-threaded and therefore trivially satisfy
// the integration contract that candidate callbacks are serialized. An
// external engine invoking callbacks concurrently must be wrapped before
// being handed to the controller.
package milp
