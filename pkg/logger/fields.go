package logger

import "time"

// Common field constructors for structured logging

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration creates a duration field in milliseconds
func Duration(key string, d time.Duration) Field {
	return Field{Key: key, Value: d.Milliseconds()}
}

// Any creates a field with any value
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// --- Domain-specific field helpers ---

// UserID creates a user_id field
func UserID(id int64) Field {
	return Field{Key: "user_id", Value: id}
}

// Email creates an email field
func Email(email string) Field {
	return Field{Key: "email", Value: email}
}

// Section creates a section field (hero, mission, products, ...)
func Section(name string) Field {
	return Field{Key: "section", Value: name}
}

// Table creates a table field
func Table(name string) Field {
	return Field{Key: "table", Value: name}
}

// Lang creates a lang field
func Lang(code string) Field {
	return Field{Key: "lang", Value: code}
}

// ItemID creates an item_id field
func ItemID(id int64) Field {
	return Field{Key: "item_id", Value: id}
}

// Component creates a component field
func Component(name string) Field {
	return Field{Key: "component", Value: name}
}

// Status creates a status field
func Status(status int) Field {
	return Field{Key: "status", Value: status}
}

// Method creates an HTTP method field
func Method(method string) Field {
	return Field{Key: "method", Value: method}
}

// Path creates an HTTP path field
func Path(path string) Field {
	return Field{Key: "path", Value: path}
}

// RemoteIP creates a remote_ip field
func RemoteIP(ip string) Field {
	return Field{Key: "remote_ip", Value: ip}
}

// Operation creates an operation field
func Operation(op string) Field {
	return Field{Key: "operation", Value: op}
}

// Count creates a count field
func Count(count int) Field {
	return Field{Key: "count", Value: count}
}

// Kept creates a kept field (retained row count during reconciliation)
func Kept(count int) Field {
	return Field{Key: "kept", Value: count}
}

// Inserted creates an inserted field
func Inserted(count int) Field {
	return Field{Key: "inserted", Value: count}
}

// Deleted creates a deleted field
func Deleted(count int) Field {
	return Field{Key: "deleted", Value: count}
}
