package drone

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuadCopter(t *testing.T) {
	q, err := NewQuadCopter("Bravo-1")
	assert.NoError(t, err)
	assert.Equal(t, "Bravo-1", q.Callsign())
}

func TestNewQuadCopterEmptyCallsign(t *testing.T) {
	_, err := NewQuadCopter("")
	if !errors.Is(err, ErrEmptyCallsign) {
		t.Fatalf("expected ErrEmptyCallsign, got %v", err)
	}
}

func TestQuadCopterBehaviors(t *testing.T) {
	tests := []struct {
		name   string
		invoke func(q *QuadCopter)
		want   string
	}{
		{
			name:   "take off",
			invoke: func(q *QuadCopter) { q.TakeOff() },
			want:   "Bravo-1 is taking off.\n",
		},
		{
			name:   "fly hovers with four rotors",
			invoke: func(q *QuadCopter) { q.Fly() },
			want:   "Bravo-1 is hovering with four rotors.\n",
		},
		{
			name:   "take picture references the sensor type",
			invoke: func(q *QuadCopter) { q.TakePicture() },
			want:   "Bravo-1 takes a picture with its High-Resolution Optical Camera\n",
		},
		{
			name:   "record 4k video uses the stock body",
			invoke: func(q *QuadCopter) { q.Record4KVideo() },
			want:   "Recording 4K video using default settings.\n",
		},
		{
			name:   "land",
			invoke: func(q *QuadCopter) { q.Land() },
			want:   "Bravo-1 is landing.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuadCopter("Bravo-1")
			if err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
			var buf bytes.Buffer
			q.SetOutput(&buf)

			tt.invoke(q)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
