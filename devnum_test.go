package ttyfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeDeviceNumber(t *testing.T) {
	tests := []struct {
		name   string
		packed int32
		want   DeviceNumber
	}{
		{
			name:   "console",
			packed: 1280,
			want:   DeviceNumber{Major: 5, Minor: 0},
		},
		{
			name:   "pts slave",
			packed: 136<<8 | 3,
			want:   DeviceNumber{Major: 136, Minor: 3},
		},
		{
			name:   "serial",
			packed: 4<<8 | 64,
			want:   DeviceNumber{Major: 4, Minor: 64},
		},
		{
			name:   "detached process",
			packed: 0,
			want:   DeviceNumber{Major: 0, Minor: 0},
		},
		{
			name:   "minor saturates low byte",
			packed: 0x1FF,
			want:   DeviceNumber{Major: 1, Minor: 255},
		},
		{
			name:   "negative packed keeps sign on major",
			packed: -1,
			want:   DeviceNumber{Major: -1, Minor: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeDeviceNumber(tt.packed))
		})
	}
}

func TestDeviceNumberString(t *testing.T) {
	assert.Equal(t, "136:3", DeviceNumber{Major: 136, Minor: 3}.String())
	assert.Equal(t, "0:0", DeviceNumber{}.String())
}
