package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "already e164", raw: "5511999991234", want: "5511999991234"},
		{name: "formatted mobile", raw: "(11) 99999-1234", want: "5511999991234"},
		{name: "bare ddd and mobile", raw: "85987654321", want: "5585987654321"},
		{name: "eight digit local gains nine", raw: "(85) 8765-4321", want: "5585987654321"},
		{name: "country code without nine", raw: "558587654321", want: "5585987654321"},
		{name: "international prefix", raw: "005511999991234", want: "5511999991234"},
		{name: "too short", raw: "99991234", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "letters only", raw: "sem telefone", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
