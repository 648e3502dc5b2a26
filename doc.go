// Package caja provides the core logic of a small, local-first point of
// sale: a product catalog with stock levels, a transient sale cart, an
// append-only sales ledger and a daily cash summary.
//
// The package is designed around a single [Register] that owns the whole
// application state (catalog and ledger) and writes it through to a
// key-value [store.Store] on every committed mutation. There is no server
// and no concurrency: one logical actor mutates the state, every operation
// is synchronous and deterministic.
//
// The main entry points are:
//   - [Open] to load a register from a store,
//   - [Register.Commit] to turn a [Cart] into a [Sale] and decrement stock,
//   - [NewDayReport] to compute the daily count/revenue/profit summary.
//
// This package serves as the foundational logic for the `caja` command-line
// tool.
package caja
