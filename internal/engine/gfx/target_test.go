package gfx

import "testing"

func TestTargetClampSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int32
	}{
		{640, 480, 640, 480},
		{0, 480, 1, 480},
		{-5, -1, 1, 1},
	}
	for _, tt := range tests {
		if w, h := clampSize(tt.w, tt.h); w != tt.wantW || h != tt.wantH {
			t.Errorf("clampSize(%d, %d) = %d, %d, want %d, %d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}
