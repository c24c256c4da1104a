package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseUsername(t *testing.T) {
	tests := []struct {
		firstName, lastName string
		want                string
	}{
		{"Duy", "Nguyen Huu", "duynh"},
		{"Binh", "Nguyen Van", "binhnv"},
		{"An", "Tran", "ant"},
		{"Đức", "Nguyễn Thị", "ducnt"},
		{"  Thanh  ", "  Le   Minh ", "thanhlm"},
		{"Mary Ann", "Smith", "maryanns"},
		{"Duy2", "Nguyen-Huu", "duyn"},
		{"123", "456", ""},
		{"   ", "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.firstName+"/"+tt.lastName, func(t *testing.T) {
			assert.Equal(t, tt.want, baseUsername(tt.firstName, tt.lastName))
		})
	}
}

func TestNextUsername(t *testing.T) {
	tests := []struct {
		name  string
		taken []string
		want  string
	}{
		{name: "free", taken: nil, want: "duynh"},
		{name: "only longer names taken", taken: []string{"duynha", "duynhat"}, want: "duynh"},
		{name: "base taken", taken: []string{"duynh"}, want: "duynh1"},
		{name: "suffixes taken", taken: []string{"duynh", "duynh1", "duynh2"}, want: "duynh3"},
		{name: "gap keeps counting from highest", taken: []string{"duynh", "duynh5"}, want: "duynh6"},
		{name: "suffix without base", taken: []string{"duynh1"}, want: "duynh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextUsername("duynh", tt.taken))
		})
	}
}

func TestStripMarks(t *testing.T) {
	assert.Equal(t, "Duc Nguyen", stripMarks("Đức Nguyễn"))
	assert.Equal(t, "Hoang Pham", stripMarks("Hoàng Phạm"))
	assert.Equal(t, "plain", stripMarks("plain"))
}
