package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeLines(t *testing.T) {
	base := "a\nb\nc\nd\ne\nf\ng\nh\n"

	tests := []struct {
		name   string
		ours   string
		theirs string
		want   string
		clean  bool
	}{
		{
			name:   "disjoint edits",
			ours:   "A\nb\nc\nd\ne\nf\ng\nh\n",
			theirs: "a\nb\nc\nd\ne\nf\ng\nH\n",
			want:   "A\nb\nc\nd\ne\nf\ng\nH\n",
			clean:  true,
		},
		{
			name:   "insert and delete",
			ours:   "a\nb\nc\nnew\nd\ne\nf\ng\nh\n",
			theirs: "a\nb\nc\nd\ne\nf\nh\n",
			want:   "a\nb\nc\nnew\nd\ne\nf\nh\n",
			clean:  true,
		},
		{
			name:   "identical change",
			ours:   "a\nB\nc\nd\ne\nf\ng\nh\n",
			theirs: "a\nB\nc\nd\ne\nf\ng\nh\n",
			want:   "a\nB\nc\nd\ne\nf\ng\nh\n",
			clean:  true,
		},
		{
			name:   "same line",
			ours:   "a\nb\nc\nours\ne\nf\ng\nh\n",
			theirs: "a\nb\nc\ntheirs\ne\nf\ng\nh\n",
			clean:  false,
		},
		{
			name:   "adjacent lines",
			ours:   "a\nb\nC\nd\ne\nf\ng\nh\n",
			theirs: "a\nb\nc\nD\ne\nf\ng\nh\n",
			clean:  false,
		},
		{
			name:   "one side only",
			ours:   base,
			theirs: "a\nb\nc\nd\ne\nf\ng\nh\ni\n",
			want:   "a\nb\nc\nd\ne\nf\ng\nh\ni\n",
			clean:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clean := mergeLines([]byte(base), []byte(tt.ours), []byte(tt.theirs))
			assert.Equal(t, tt.clean, clean)
			if tt.clean {
				assert.Equal(t, tt.want, string(got))
			}
		})
	}
}

func TestMergeLines_Binary(t *testing.T) {
	_, clean := mergeLines([]byte("a\x00"), []byte("b\x00"), []byte("c\x00"))
	assert.False(t, clean)
}

func TestMergeLines_BothAdded(t *testing.T) {
	_, clean := mergeLines(nil, []byte("ours\n"), []byte("theirs\n"))
	assert.False(t, clean)
}
