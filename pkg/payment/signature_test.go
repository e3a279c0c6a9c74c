package payment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign_SortsFieldsAndBlanksNulls(t *testing.T) {
	a := Sign("key", map[string]any{"b": "2", "a": int64(1), "c": nil})
	b := Sign("key", map[string]any{"c": "", "a": "1", "b": "2"})

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, Sign("other", map[string]any{"a": "1", "b": "2", "c": ""}))
}

func TestVerify(t *testing.T) {
	fields := map[string]any{
		"orderCode":   int64(123),
		"amount":      int64(125000),
		"description": "CINEMABKQWERTY23",
		"reference":   nil,
	}
	data, err := json.Marshal(fields)
	assert.NoError(t, err)
	signature := Sign("key", fields)

	tests := []struct {
		name      string
		data      json.RawMessage
		signature string
		want      bool
	}{
		{"valid", data, signature, true},
		{"upper case hex", data, toUpper(signature), true},
		{"tampered amount", json.RawMessage(`{"orderCode":123,"amount":1,"description":"CINEMABKQWERTY23","reference":null}`), signature, false},
		{"empty signature", data, "", false},
		{"not an object", json.RawMessage(`[1,2]`), signature, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Verify("key", tt.data, tt.signature))
		})
	}
}

func toUpper(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'a' && c <= 'f' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}
