// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kvstore is the storage port for journal state.

# Interface

Store has three operations over string slots:

	value, ok, err := s.Get(ctx, key)
	err := s.Set(ctx, key, value)
	err := s.Remove(ctx, key)

An absent key is ok=false with a nil error. Errors mean the backend failed.

# Backends

  - Memory: map guarded by a RWMutex
  - SQL: kv_slot table on sqlite or postgres (NewSQL(conn, DialectSQLite))
  - Redis: plain string keys under "neurocare:"

# Scoping

WithPrefix wraps any Store so every key lands under a fixed prefix:

	profileStore := kvstore.WithPrefix(base, "profile:"+hash+":")

There is no multi-key transaction. Callers writing several slots in a row
accept that a failure between writes leaves them out of step.
*/
package kvstore
