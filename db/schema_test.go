// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "testing"

func TestCreateSchema_Idempotent(t *testing.T) {
	conn, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema() call %d error = %v", i+1, err)
		}
	}

	if _, err := conn.Exec(`INSERT INTO kv_slot (key, value) VALUES ('k', 'v')`); err != nil {
		t.Fatalf("insert into kv_slot failed: %v", err)
	}

	var value string
	if err := conn.QueryRow(`SELECT value FROM kv_slot WHERE key = 'k'`).Scan(&value); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if value != "v" {
		t.Errorf("Expected value 'v', got '%s'", value)
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}
